package model

// ValidationError reports a required field that was absent from a request
// body. Handlers translate it to a 400.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}
