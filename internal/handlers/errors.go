package handlers

import "github.com/danielgtaylor/huma/v2"

// apiError is the error body for all API responses: a single "error"
// field, machine-readable and stable.
type apiError struct {
	status  int
	Message string `json:"error"`
}

func (e *apiError) Error() string {
	return e.Message
}

func (e *apiError) GetStatus() int {
	return e.status
}

// ContentType forces plain application/json instead of the RFC 7807
// problem media type.
func (e *apiError) ContentType(string) string {
	return "application/json"
}

func init() {
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		if msg == "" && len(errs) > 0 {
			msg = errs[0].Error()
		}

		return &apiError{status: status, Message: msg}
	}
}
