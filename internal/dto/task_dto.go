package dto

type CreateTaskRequest struct {
	Title           string `json:"title" validate:"required,min=2,max=150"`
	Description     string `json:"description" validate:"max=5000"`
	Category        string `json:"category" validate:"required,oneof=technique tactics physical mental game"`
	Difficulty      int    `json:"difficulty" validate:"omitempty,min=1,max=5"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,min=1,max=240"`
	Equipment       string `json:"equipment" validate:"max=500"`
	IsPublic        bool   `json:"is_public"`
}

type UpdateTaskRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=2,max=150"`
	Description     *string `json:"description" validate:"omitempty,max=5000"`
	Category        *string `json:"category" validate:"omitempty,oneof=technique tactics physical mental game"`
	Difficulty      *int    `json:"difficulty" validate:"omitempty,min=1,max=5"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,min=1,max=240"`
	Equipment       *string `json:"equipment" validate:"omitempty,max=500"`
	IsPublic        *bool   `json:"is_public"`
}
