//go:build !darwin

package macperms

// NewDefault returns AlwaysGranted: TCC only exists on macOS. Options are
// ignored.
func NewDefault(opts ...Option) Checker {
	return AlwaysGranted{}
}
