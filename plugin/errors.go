package plugin

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Error type identifiers.
const (
	ErrValidation = "VALIDATION_ERROR"
	ErrNotFound   = "NOT_FOUND"
	ErrRequest    = "REQUEST_FAILED"
	ErrInternal   = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON error returned to the host instead of a result.
type ErrorResponse struct {
	// Error is a machine readable type such as NOT_FOUND.
	Error string `json:"error"`
	// Message is human readable and may span lines.
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ToJSON serializes e.
func (e ErrorResponse) ToJSON() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		return nil
	}
	return data
}

// NewValidationError reports malformed input.
func NewValidationError(message string) ErrorResponse {
	return ErrorResponse{Error: ErrValidation, Message: message, Code: 400}
}

// NewNotFoundError reports an unknown command name.
func NewNotFoundError(name string) ErrorResponse {
	return ErrorResponse{Error: ErrNotFound, Message: "unknown command: " + name, Code: 404}
}

// NewRequestError reports a permission request that could not be dispatched.
func NewRequestError(err error) ErrorResponse {
	return ErrorResponse{Error: ErrRequest, Message: err.Error(), Code: 500}
}

// NewPanicError reports a recovered handler panic.
func NewPanicError(v any) ErrorResponse {
	var msg string
	switch v := v.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		msg = fmt.Sprint(v)
	}
	return ErrorResponse{Error: ErrInternal, Message: "panic: " + msg, Code: 500}
}

// AsError decodes resp as an ErrorResponse. It reports false for plain
// results such as true, false or null.
func AsError(resp []byte) (ErrorResponse, bool) {
	trimmed := bytes.TrimSpace(resp)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return ErrorResponse{}, false
	}
	var e ErrorResponse
	if err := json.Unmarshal(trimmed, &e); err != nil || e.Error == "" {
		return ErrorResponse{}, false
	}
	return e, true
}
