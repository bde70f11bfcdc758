package dto

type ErrorResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// MessageResponse acknowledges a write that has no resource to return.
type MessageResponse struct {
	Message string `json:"message"`
}
