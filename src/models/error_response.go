package models

// ErrorResponse is the uniform failure envelope: {success:false, error,
// details?}. Details carries field-tagged validation failures.
type ErrorResponse struct {
	Success bool         `json:"success" example:"false"`
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}
