// internal/repository/local_robot.go
package repository

import (
	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/models"
)

// LocalRobot stores one telemetry snapshot per robot and bounded
// activity/log rings. Dashboards poll these; unbounded growth in a
// browser-profile-sized store is not acceptable.
const robotRingSize = 200

type LocalRobot struct {
	store *localstore.Store
}

func NewLocalRobot(store *localstore.Store) *LocalRobot {
	return &LocalRobot{store: store}
}

func (r *LocalRobot) SaveStatus(s *models.RobotStatus) error {
	r.store.Write(localstore.KeyRobotStatus+s.RobotID, s)
	return nil
}

func (r *LocalRobot) Status(robotID string) (*models.RobotStatus, error) {
	var s models.RobotStatus
	if !r.store.Read(localstore.KeyRobotStatus+robotID, &s) {
		return nil, nil
	}
	return &s, nil
}

func (r *LocalRobot) AppendActivity(a *models.RobotActivity) error {
	key := localstore.KeyRobotActs + a.RobotID
	var list []models.RobotActivity
	r.store.Read(key, &list)
	list = append(list, *a)
	if len(list) > robotRingSize {
		list = list[len(list)-robotRingSize:]
	}
	r.store.Write(key, list)
	return nil
}

func (r *LocalRobot) Activities(robotID string, limit int) ([]models.RobotActivity, error) {
	var list []models.RobotActivity
	r.store.Read(localstore.KeyRobotActs+robotID, &list)
	return tail(list, limit), nil
}

func (r *LocalRobot) AppendLog(l *models.RobotLog) error {
	key := localstore.KeyRobotLogs + l.RobotID
	var list []models.RobotLog
	r.store.Read(key, &list)
	list = append(list, *l)
	if len(list) > robotRingSize {
		list = list[len(list)-robotRingSize:]
	}
	r.store.Write(key, list)
	return nil
}

func (r *LocalRobot) Logs(robotID string, limit int) ([]models.RobotLog, error) {
	var list []models.RobotLog
	r.store.Read(localstore.KeyRobotLogs+robotID, &list)
	return tail(list, limit), nil
}

func tail[T any](list []T, limit int) []T {
	if limit <= 0 || len(list) <= limit {
		return list
	}
	return list[len(list)-limit:]
}
