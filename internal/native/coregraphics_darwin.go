//go:build darwin

package native

var (
	fnCGPreflightScreenCaptureAccess func() bool
	fnCGRequestScreenCaptureAccess   func() bool
)

var coreGraphics = &framework{
	path: coreGraphicsPath,
	register: func(lib uintptr) error {
		if err := registerFunc(&fnCGPreflightScreenCaptureAccess, lib, "CGPreflightScreenCaptureAccess"); err != nil {
			return err
		}
		return registerFunc(&fnCGRequestScreenCaptureAccess, lib, "CGRequestScreenCaptureAccess")
	},
}

// PreflightScreenCaptureAccess calls CGPreflightScreenCaptureAccess.
func PreflightScreenCaptureAccess() (bool, error) {
	if _, err := coreGraphics.load(); err != nil {
		return false, err
	}
	return fnCGPreflightScreenCaptureAccess(), nil
}

// RequestScreenCaptureAccess calls CGRequestScreenCaptureAccess, which may
// show the system prompt.
func RequestScreenCaptureAccess() (bool, error) {
	if _, err := coreGraphics.load(); err != nil {
		return false, err
	}
	return fnCGRequestScreenCaptureAccess(), nil
}
