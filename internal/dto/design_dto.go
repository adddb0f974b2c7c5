package dto

import "encoding/json"

type CreateDesignRequest struct {
	Title       string          `json:"title" validate:"required,min=2,max=150"`
	Description string          `json:"description" validate:"max=2000"`
	Canvas      json.RawMessage `json:"canvas"`
	// Image is an optional data-URL-encoded PNG rendered by the editor.
	Image string `json:"image"`
}

type UpdateDesignRequest struct {
	Title       *string         `json:"title" validate:"omitempty,min=2,max=150"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	Canvas      json.RawMessage `json:"canvas"`
	Image       *string         `json:"image"`
}
