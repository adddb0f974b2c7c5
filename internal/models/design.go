package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TrainingDesign is a tactical diagram. The canvas holds the editor's
// element tree as JSON; the rendered PNG lives on disk under an opaque
// server-generated filename.
type TrainingDesign struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title         string         `gorm:"not null;size:150" json:"title"`
	Description   string         `gorm:"size:2000" json:"description"`
	Canvas        datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"canvas"`
	ImageFilename string         `gorm:"size:50" json:"image_filename"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (d *TrainingDesign) OwnedBy() uuid.UUID { return d.OwnerID }
