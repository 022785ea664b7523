// internal/services/robot_service_test.go
package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/repository"
)

func newRobotService(t *testing.T) (*RobotService, *events.Bus) {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "robot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	bus := events.NewBus()
	repos := repository.New(nil, store)
	return NewRobotService(repos.Robot, bus), bus
}

func TestTickReplacesStatusSnapshot(t *testing.T) {
	robot, bus := newRobotService(t)

	var notified int
	bus.Subscribe(events.TopicRobot, func(events.Notification) { notified++ })

	robot.Tick("agribot-01")
	robot.Tick("agribot-01")

	status, err := robot.Status("agribot-01")
	require.NoError(t, err)
	assert.Equal(t, "agribot-01", status.RobotID)
	assert.GreaterOrEqual(t, status.Battery, 20)
	assert.LessOrEqual(t, status.Battery, 100)
	assert.Equal(t, 2, notified)
}

func TestUnknownRobotIsNotFound(t *testing.T) {
	robot, _ := newRobotService(t)

	_, err := robot.Status("agribot-99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivitiesHonorLimit(t *testing.T) {
	robot, _ := newRobotService(t)

	for i := 0; i < 30; i++ {
		robot.Tick("agribot-01")
	}

	activities, err := robot.Activities("agribot-01", 5)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(activities), 5)
}

func TestSimulatorStartStopIsIdempotent(t *testing.T) {
	robot, _ := newRobotService(t)

	robot.StartSimulator(50 * time.Millisecond)
	robot.StartSimulator(50 * time.Millisecond)
	robot.StopSimulator()
	robot.StopSimulator()
}
