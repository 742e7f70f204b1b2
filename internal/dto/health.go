package dto

// HealthQuery is the schema-validated query string of GET /health.
type HealthQuery struct {
	Detail string `form:"detail" binding:"omitempty,oneof=true false"`
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Time       string            `json:"time"`
	Components map[string]string `json:"components,omitempty"`
}
