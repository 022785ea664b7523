// internal/models/robot.go
package models

// Simulated IoT robot telemetry shown on the dashboard. The snapshot is a
// single row per robot, replaced on every tick; activities and logs are
// append-only.

type RobotStatus struct {
	BaseModel
	RobotID     string  `json:"robot_id" gorm:"size:60;not null;uniqueIndex"`
	Battery     int     `json:"battery"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PositionX   float64 `json:"position_x"`
	PositionY   float64 `json:"position_y"`
	Mode        string  `json:"mode" gorm:"size:30"`
}

func (RobotStatus) TableName() string { return "robot_status" }

type RobotActivity struct {
	BaseModel
	RobotID  string `json:"robot_id" gorm:"size:60;not null;index"`
	Activity string `json:"activity" gorm:"size:255"`
}

func (RobotActivity) TableName() string { return "robot_activities" }

type RobotLog struct {
	BaseModel
	RobotID string `json:"robot_id" gorm:"size:60;not null;index"`
	Level   string `json:"level" gorm:"size:10"`
	Message string `json:"message" gorm:"type:text"`
}

func (RobotLog) TableName() string { return "robot_logs" }
