package dto

import "github.com/google/uuid"

type CreatePenaltyRequest struct {
	GoalkeeperID uuid.UUID `json:"goalkeeper_id" validate:"required"`
	MatchDate    string    `json:"match_date" validate:"omitempty,datetime=2006-01-02"`
	Opponent     string    `json:"opponent" validate:"max=100"`
	Direction    string    `json:"direction" validate:"required,oneof=left center right"`
	Height       string    `json:"height" validate:"omitempty,oneof=low mid high"`
	Outcome      string    `json:"outcome" validate:"required,oneof=saved goal missed post"`
	Notes        string    `json:"notes" validate:"max=500"`
}

// PenaltySummary aggregates a goalkeeper's penalty record by outcome and
// shot placement.
type PenaltySummary struct {
	GoalkeeperID uuid.UUID        `json:"goalkeeper_id"`
	Total        int64            `json:"total"`
	Saved        int64            `json:"saved"`
	Conceded     int64            `json:"conceded"`
	ByDirection  map[string]int64 `json:"by_direction"`
	ByOutcome    map[string]int64 `json:"by_outcome"`
	SaveRate     float64          `json:"save_rate"`
}
