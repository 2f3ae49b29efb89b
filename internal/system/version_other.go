//go:build !darwin

package system

// ProductVersion is only available on macOS.
func ProductVersion() (Version, error) {
	return Version{}, ErrNotDarwin
}
