package response

// Body is the wire format the admin front end consumes on mutation routes.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Success returns the plain success body
func Success() Body {
	return Body{Success: true}
}

// SuccessMessage returns a success body with a human-readable note
func SuccessMessage(msg string) Body {
	return Body{Success: true, Message: msg}
}

// Fail returns a failure body wrapping the error message
func Fail(msg string) Body {
	return Body{Success: false, Message: msg}
}
