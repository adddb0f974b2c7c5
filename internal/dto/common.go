package dto

// Issue points at one offending field in a rejected payload.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   bool    `json:"error"`
	Message string  `json:"message"`
	Issues  []Issue `json:"issues,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
