package agreement

// SignError is a customer-facing signing failure.
type SignError struct {
	Title   string
	Message string
}

func (e *SignError) Error() string {
	return e.Title + ": " + e.Message
}

// NewSignError creates a customer-facing signing failure.
func NewSignError(title, message string) *SignError {
	return &SignError{Title: title, Message: message}
}
