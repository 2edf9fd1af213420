package dto

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Details any    `json:"details,omitempty"`
}

// BannerResponse is returned by the root endpoint
type BannerResponse struct {
	Message       string `json:"message"`
	Version       string `json:"version"`
	Documentation string `json:"documentation"`
}
