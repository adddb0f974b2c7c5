package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goalkeeper belongs to a coach and optionally to one of the coach's teams.
// Dates are stored as YYYY-MM-DD strings so they validate and compare
// lexicographically across database dialects.
type Goalkeeper struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	TeamID       *uuid.UUID     `gorm:"type:uuid;index" json:"team_id"`
	Name         string         `gorm:"not null;size:100" json:"name"`
	BirthDate    string         `gorm:"size:10" json:"birth_date"`
	HeightCm     int            `json:"height_cm"`
	WeightKg     int            `json:"weight_kg"`
	DominantHand string         `gorm:"size:10" json:"dominant_hand"`
	JerseyNumber int            `json:"jersey_number"`
	Notes        string         `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (g *Goalkeeper) OwnedBy() uuid.UUID { return g.OwnerID }
