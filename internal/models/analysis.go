package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchAnalysis struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	GoalkeeperID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"goalkeeper_id"`
	MatchDate     string         `gorm:"not null;size:10;index" json:"match_date"`
	Opponent      string         `gorm:"not null;size:100" json:"opponent"`
	Result        string         `gorm:"size:20" json:"result"`
	MinutesPlayed int            `json:"minutes_played"`
	GoalsConceded int            `json:"goals_conceded"`
	Saves         int            `json:"saves"`
	Rating        int            `json:"rating"`
	Notes         string         `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *MatchAnalysis) OwnedBy() uuid.UUID { return a.OwnerID }
