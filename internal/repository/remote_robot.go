// internal/repository/remote_robot.go
package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agrikom/agrimarket-backend/internal/models"
)

type RemoteRobot struct {
	db *gorm.DB
}

func NewRemoteRobot(db *gorm.DB) *RemoteRobot {
	return &RemoteRobot{db: db}
}

func (r *RemoteRobot) SaveStatus(s *models.RobotStatus) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "robot_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"battery", "temperature", "humidity", "position_x", "position_y", "mode", "updated_at",
		}),
	}).Create(s).Error
	if err != nil {
		return fmt.Errorf("failed to save robot status: %w", err)
	}
	return nil
}

func (r *RemoteRobot) Status(robotID string) (*models.RobotStatus, error) {
	var s models.RobotStatus
	if err := r.db.First(&s, "robot_id = ?", robotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch robot status: %w", err)
	}
	return &s, nil
}

func (r *RemoteRobot) AppendActivity(a *models.RobotActivity) error {
	if err := r.db.Create(a).Error; err != nil {
		return fmt.Errorf("failed to append robot activity: %w", err)
	}
	return nil
}

func (r *RemoteRobot) Activities(robotID string, limit int) ([]models.RobotActivity, error) {
	var activities []models.RobotActivity
	q := r.db.Where("robot_id = ?", robotID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("failed to list robot activities: %w", err)
	}
	reverse(activities)
	return activities, nil
}

func (r *RemoteRobot) AppendLog(l *models.RobotLog) error {
	if err := r.db.Create(l).Error; err != nil {
		return fmt.Errorf("failed to append robot log: %w", err)
	}
	return nil
}

func (r *RemoteRobot) Logs(robotID string, limit int) ([]models.RobotLog, error) {
	var logs []models.RobotLog
	q := r.db.Where("robot_id = ?", robotID).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list robot logs: %w", err)
	}
	reverse(logs)
	return logs, nil
}

// reverse flips a DESC-limited page back into chronological order.
func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
