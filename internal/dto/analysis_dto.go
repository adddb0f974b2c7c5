package dto

import "github.com/google/uuid"

type CreateAnalysisRequest struct {
	GoalkeeperID  uuid.UUID `json:"goalkeeper_id" validate:"required"`
	MatchDate     string    `json:"match_date" validate:"required,datetime=2006-01-02"`
	Opponent      string    `json:"opponent" validate:"required,min=2,max=100"`
	Result        string    `json:"result" validate:"max=20"`
	MinutesPlayed int       `json:"minutes_played" validate:"omitempty,min=0,max=150"`
	GoalsConceded int       `json:"goals_conceded" validate:"min=0"`
	Saves         int       `json:"saves" validate:"min=0"`
	Rating        int       `json:"rating" validate:"omitempty,min=1,max=10"`
	Notes         string    `json:"notes" validate:"max=5000"`
}

type UpdateAnalysisRequest struct {
	MatchDate     *string `json:"match_date" validate:"omitempty,datetime=2006-01-02"`
	Opponent      *string `json:"opponent" validate:"omitempty,min=2,max=100"`
	Result        *string `json:"result" validate:"omitempty,max=20"`
	MinutesPlayed *int    `json:"minutes_played" validate:"omitempty,min=0,max=150"`
	GoalsConceded *int    `json:"goals_conceded" validate:"omitempty,min=0"`
	Saves         *int    `json:"saves" validate:"omitempty,min=0"`
	Rating        *int    `json:"rating" validate:"omitempty,min=1,max=10"`
	Notes         *string `json:"notes" validate:"omitempty,max=5000"`
}
