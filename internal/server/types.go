package server

// GenerateRequest is the payload for POST /api/roadmap
type GenerateRequest struct {
	Topic string `json:"topic"`
}

// ErrorResponse is returned for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// HealthResponse is the response for GET /api/health
type HealthResponse struct {
	Status string `json:"status"`
}

// InfoResponse is the response for GET /api/info
type InfoResponse struct {
	Version  string `json:"version"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}
