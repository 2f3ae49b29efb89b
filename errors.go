package macperms

import (
	"errors"
	"fmt"
)

// ErrUnknownPermission is returned when a permission name is not recognised.
var ErrUnknownPermission = errors.New("unknown permission")

// Error describes a failed request with context and guidance for the user.
type Error struct {
	Op         string     // operation that failed, e.g. "open settings pane"
	Permission Permission // permission being requested
	Err        error      // underlying error
	Help       string     // actionable guidance
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("macperms: %s %s: %v", e.Op, e.Permission, e.Err)
	if e.Help != "" {
		msg += "\n  hint: " + e.Help
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
