package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string         `gorm:"not null;size:100" json:"name"`
	Club      string         `gorm:"size:100" json:"club"`
	AgeGroup  string         `gorm:"size:50" json:"age_group"`
	Season    string         `gorm:"size:20" json:"season"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *Team) OwnedBy() uuid.UUID { return t.OwnerID }
