package rest

// ErrorResponse is the JSON envelope returned by handlers on client errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
