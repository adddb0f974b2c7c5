package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceInjured = "injured"
	AttendanceExcused = "excused"
)

type TrainingSession struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	TeamID          *uuid.UUID     `gorm:"type:uuid;index" json:"team_id"`
	Title           string         `gorm:"not null;size:150" json:"title"`
	SessionDate     string         `gorm:"not null;size:10;index" json:"session_date"`
	StartTime       string         `gorm:"size:8" json:"start_time"`
	DurationMinutes int            `json:"duration_minutes"`
	Location        string         `gorm:"size:150" json:"location"`
	FocusArea       string         `gorm:"size:100" json:"focus_area"`
	Notes           string         `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *TrainingSession) OwnedBy() uuid.UUID { return s.OwnerID }

// SessionTask is a drill scheduled within a session. Authorization runs
// against the parent session's owner; rows are hard-deleted.
type SessionTask struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"session_id"`
	TaskID          *uuid.UUID `gorm:"type:uuid" json:"task_id"`
	Title           string     `gorm:"not null;size:150" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	DurationMinutes int        `json:"duration_minutes"`
	OrderNumber     int        `gorm:"not null;default:0" json:"order_number"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Attendance records one goalkeeper's presence at one session.
// Rows are hard-deleted; bulk registration is all-or-nothing.
type Attendance struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_session_gk" json:"session_id"`
	GoalkeeperID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_session_gk" json:"goalkeeper_id"`
	Status       string    `gorm:"size:20;not null" json:"status"`
	Notes        string    `gorm:"size:500" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
