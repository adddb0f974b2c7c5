package dto

import "github.com/google/uuid"

// CreateStatisticRequest carries one goalkeeper's season totals. Cross-field
// rules (clean sheets vs matches, penalties saved vs faced) are enforced as
// struct-level validations registered in the validation package.
type CreateStatisticRequest struct {
	GoalkeeperID   uuid.UUID `json:"goalkeeper_id" validate:"required"`
	Season         string    `json:"season" validate:"required,min=4,max=20"`
	MatchesPlayed  int       `json:"matches_played" validate:"min=0"`
	CleanSheets    int       `json:"clean_sheets" validate:"min=0"`
	GoalsConceded  int       `json:"goals_conceded" validate:"min=0"`
	Saves          int       `json:"saves" validate:"min=0"`
	PenaltiesFaced int       `json:"penalties_faced" validate:"min=0"`
	PenaltiesSaved int       `json:"penalties_saved" validate:"min=0"`
	MinutesPlayed  int       `json:"minutes_played" validate:"min=0"`
}

type UpdateStatisticRequest struct {
	MatchesPlayed  *int `json:"matches_played" validate:"omitempty,min=0"`
	CleanSheets    *int `json:"clean_sheets" validate:"omitempty,min=0"`
	GoalsConceded  *int `json:"goals_conceded" validate:"omitempty,min=0"`
	Saves          *int `json:"saves" validate:"omitempty,min=0"`
	PenaltiesFaced *int `json:"penalties_faced" validate:"omitempty,min=0"`
	PenaltiesSaved *int `json:"penalties_saved" validate:"omitempty,min=0"`
	MinutesPlayed  *int `json:"minutes_played" validate:"omitempty,min=0"`
}
