package api

// Pagination reports the page window of a list response.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

// ListResponse wraps paginated list results.
type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the per-butler health report.
type HealthResponse struct {
	Status  string                            `json:"status"`
	Version string                            `json:"version"`
	Butlers map[string]map[string]HealthCheck `json:"butlers"`
}
