package dto

import "github.com/google/uuid"

type CreateSessionRequest struct {
	TeamID          *uuid.UUID `json:"team_id"`
	Title           string     `json:"title" validate:"required,min=2,max=150"`
	SessionDate     string     `json:"session_date" validate:"required,datetime=2006-01-02"`
	StartTime       string     `json:"start_time" validate:"omitempty,timestr"`
	DurationMinutes int        `json:"duration_minutes" validate:"omitempty,min=1,max=480"`
	Location        string     `json:"location" validate:"max=150"`
	FocusArea       string     `json:"focus_area" validate:"max=100"`
	Notes           string     `json:"notes" validate:"max=5000"`
}

type UpdateSessionRequest struct {
	TeamID          *uuid.UUID `json:"team_id"`
	Title           *string    `json:"title" validate:"omitempty,min=2,max=150"`
	SessionDate     *string    `json:"session_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime       *string    `json:"start_time" validate:"omitempty,timestr"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,min=1,max=480"`
	Location        *string    `json:"location" validate:"omitempty,max=150"`
	FocusArea       *string    `json:"focus_area" validate:"omitempty,max=100"`
	Notes           *string    `json:"notes" validate:"omitempty,max=5000"`
}

type CreateSessionTaskRequest struct {
	TaskID          *uuid.UUID `json:"task_id"`
	Title           string     `json:"title" validate:"required,min=2,max=150"`
	Description     string     `json:"description" validate:"max=5000"`
	DurationMinutes int        `json:"duration_minutes" validate:"omitempty,min=1,max=240"`
	OrderNumber     int        `json:"order_number" validate:"min=0"`
}

type UpdateSessionTaskRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=2,max=150"`
	Description     *string `json:"description" validate:"omitempty,max=5000"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=1,max=240"`
	OrderNumber     *int    `json:"order_number" validate:"omitempty,min=0"`
}

type ReorderItem struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	OrderNumber int       `json:"order_number" validate:"min=0"`
}

type ReorderTasksRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

type AttendanceEntry struct {
	GoalkeeperID uuid.UUID `json:"goalkeeper_id" validate:"required"`
	Status       string    `json:"status" validate:"required,oneof=present absent injured excused"`
	Notes        string    `json:"notes" validate:"max=500"`
}

type BulkAttendanceRequest struct {
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}
