// internal/services/robot_service.go
package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/repository"
)

const defaultRobotID = "agribot-01"

var robotModes = []string{"patrol", "seeding", "watering", "charging", "idle"}

var robotActivities = []string{
	"Scanning soil moisture on plot A",
	"Watering seedlings on plot B",
	"Returning to charging dock",
	"Dispensing compost on plot C",
	"Patrolling perimeter",
	"Collecting temperature readings",
}

// RobotService exposes the simulated robot telemetry and runs the
// background simulator that produces it.
type RobotService struct {
	robot repository.RobotRepository
	bus   *events.Bus

	mu     sync.Mutex
	rng    *rand.Rand
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRobotService(robot repository.RobotRepository, bus *events.Bus) *RobotService {
	return &RobotService{
		robot: robot,
		bus:   bus,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartSimulator launches the telemetry tick loop. It is a no-op when
// already running.
func (s *RobotService) StartSimulator(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done

	go s.run(ctx, interval, done)
	logrus.WithField("interval", interval).Info("robot: simulator started")
}

// StopSimulator cancels the tick loop and waits for it to exit.
func (s *RobotService) StopSimulator() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logrus.Info("robot: simulator stopped")
}

// done is passed in rather than read from s.done: StopSimulator nils the
// field, which could race with this goroutine's deferred close.
func (s *RobotService) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(defaultRobotID)
		}
	}
}

// Tick produces one round of telemetry: a replaced status row, sometimes a
// new activity, sometimes a log line.
func (s *RobotService) Tick(robotID string) {
	s.mu.Lock()
	battery := 20 + s.rng.Intn(80)
	temperature := 22 + s.rng.Float64()*12
	humidity := 40 + s.rng.Float64()*45
	posX := s.rng.Float64() * 100
	posY := s.rng.Float64() * 100
	mode := robotModes[s.rng.Intn(len(robotModes))]
	activity := robotActivities[s.rng.Intn(len(robotActivities))]
	logActivity := s.rng.Intn(3) == 0
	s.mu.Unlock()

	now := time.Now()
	status := &models.RobotStatus{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RobotID:     robotID,
		Battery:     battery,
		Temperature: temperature,
		Humidity:    humidity,
		PositionX:   posX,
		PositionY:   posY,
		Mode:        mode,
	}
	if err := s.robot.SaveStatus(status); err != nil {
		logrus.WithError(err).Warn("robot: status save failed")
	}

	if logActivity {
		act := &models.RobotActivity{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			RobotID:  robotID,
			Activity: activity,
		}
		if err := s.robot.AppendActivity(act); err != nil {
			logrus.WithError(err).Warn("robot: activity append failed")
		}
	}

	if battery < 25 {
		s.appendLog(robotID, "warn", fmt.Sprintf("Battery low: %d%%", battery))
	}

	s.bus.Publish(events.TopicRobot, robotID)
}

func (s *RobotService) appendLog(robotID, level, message string) {
	now := time.Now()
	entry := &models.RobotLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RobotID: robotID,
		Level:   level,
		Message: message,
	}
	if err := s.robot.AppendLog(entry); err != nil {
		logrus.WithError(err).Warn("robot: log append failed")
	}
}

func (s *RobotService) Status(robotID string) (*models.RobotStatus, error) {
	status, err := s.robot.Status(robotID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch robot status: %w", err)
	}
	if status == nil {
		return nil, ErrNotFound
	}
	return status, nil
}

func (s *RobotService) Activities(robotID string, limit int) ([]models.RobotActivity, error) {
	return s.robot.Activities(robotID, limit)
}

func (s *RobotService) Logs(robotID string, limit int) ([]models.RobotLog, error) {
	return s.robot.Logs(robotID, limit)
}
