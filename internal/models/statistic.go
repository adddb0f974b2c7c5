package models

import (
	"time"

	"github.com/google/uuid"
)

// Statistic aggregates one goalkeeper's numbers for one season.
// At most one row may exist per (goalkeeper_id, season).
type Statistic struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	GoalkeeperID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_statistics_gk_season" json:"goalkeeper_id"`
	Season         string    `gorm:"size:20;not null;uniqueIndex:idx_statistics_gk_season" json:"season"`
	MatchesPlayed  int       `gorm:"default:0" json:"matches_played"`
	CleanSheets    int       `gorm:"default:0" json:"clean_sheets"`
	GoalsConceded  int       `gorm:"default:0" json:"goals_conceded"`
	Saves          int       `gorm:"default:0" json:"saves"`
	PenaltiesFaced int       `gorm:"default:0" json:"penalties_faced"`
	PenaltiesSaved int       `gorm:"default:0" json:"penalties_saved"`
	MinutesPlayed  int       `gorm:"default:0" json:"minutes_played"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s *Statistic) OwnedBy() uuid.UUID { return s.OwnerID }
