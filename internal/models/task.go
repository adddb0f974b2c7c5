package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a reusable exercise from the drill library. Public tasks are
// readable by every authenticated coach; only the owner may modify them.
type Task struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title           string         `gorm:"not null;size:150" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Category        string         `gorm:"size:30;not null;index" json:"category"`
	Difficulty      int            `gorm:"default:1" json:"difficulty"`
	DurationMinutes int            `json:"duration_minutes"`
	Equipment       string         `gorm:"size:500" json:"equipment"`
	IsPublic        bool           `gorm:"default:false;index" json:"is_public"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Task) OwnedBy() uuid.UUID     { return t.OwnerID }
func (t *Task) PubliclyReadable() bool { return t.IsPublic }
