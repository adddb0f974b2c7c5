package dto

import "github.com/google/uuid"

type CreateGoalkeeperRequest struct {
	TeamID       *uuid.UUID `json:"team_id"`
	Name         string     `json:"name" validate:"required,min=2,max=100"`
	BirthDate    string     `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	HeightCm     int        `json:"height_cm" validate:"omitempty,min=100,max=230"`
	WeightKg     int        `json:"weight_kg" validate:"omitempty,min=30,max=150"`
	DominantHand string     `json:"dominant_hand" validate:"omitempty,oneof=left right both"`
	JerseyNumber int        `json:"jersey_number" validate:"omitempty,min=1,max=99"`
	Notes        string     `json:"notes" validate:"max=2000"`
}

type UpdateGoalkeeperRequest struct {
	TeamID       *uuid.UUID `json:"team_id"`
	Name         *string    `json:"name" validate:"omitempty,min=2,max=100"`
	BirthDate    *string    `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	HeightCm     *int       `json:"height_cm" validate:"omitempty,min=100,max=230"`
	WeightKg     *int       `json:"weight_kg" validate:"omitempty,min=30,max=150"`
	DominantHand *string    `json:"dominant_hand" validate:"omitempty,oneof=left right both"`
	JerseyNumber *int       `json:"jersey_number" validate:"omitempty,min=1,max=99"`
	Notes        *string    `json:"notes" validate:"omitempty,max=2000"`
}
