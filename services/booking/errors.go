package booking

// ValidationError is returned when a reservation form fails a pre-submit
// check. Title and Message are safe to surface to the customer as-is.
type ValidationError struct {
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Title + ": " + e.Message
}

// NewValidationError creates a customer-facing validation failure.
func NewValidationError(title, message string) *ValidationError {
	return &ValidationError{Title: title, Message: message}
}
