package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PenaltyOutcomeSaved  = "saved"
	PenaltyOutcomeGoal   = "goal"
	PenaltyOutcomeMissed = "missed"
	PenaltyOutcomePost   = "post"
)

// Penalty is a single faced penalty kick. Rows are immutable event records
// and are hard-deleted.
type Penalty struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	GoalkeeperID uuid.UUID `gorm:"type:uuid;not null;index" json:"goalkeeper_id"`
	MatchDate    string    `gorm:"size:10" json:"match_date"`
	Opponent     string    `gorm:"size:100" json:"opponent"`
	Direction    string    `gorm:"size:10;not null" json:"direction"`
	Height       string    `gorm:"size:10" json:"height"`
	Outcome      string    `gorm:"size:10;not null" json:"outcome"`
	Notes        string    `gorm:"size:500" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Penalty) OwnedBy() uuid.UUID { return p.OwnerID }
