package requests

// UpdateOptionsRequest represents the request body for writing store options
type UpdateOptionsRequest struct {
	Values map[string]interface{} `json:"values" binding:"required"`
}

// NavigateRequest represents the request body for moving the dashboard location
type NavigateRequest struct {
	Path  string            `json:"path" binding:"required"`
	Query map[string]string `json:"query,omitempty"`
}
