package dto

type CreateTeamRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Club     string `json:"club" validate:"max=100"`
	AgeGroup string `json:"age_group" validate:"max=50"`
	Season   string `json:"season" validate:"max=20"`
	Notes    string `json:"notes" validate:"max=2000"`
}

type UpdateTeamRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Club     *string `json:"club" validate:"omitempty,max=100"`
	AgeGroup *string `json:"age_group" validate:"omitempty,max=50"`
	Season   *string `json:"season" validate:"omitempty,max=20"`
	Notes    *string `json:"notes" validate:"omitempty,max=2000"`
}
