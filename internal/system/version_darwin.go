//go:build darwin

package system

import (
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// ProductVersion returns the running macOS version. It reads the
// kern.osproductversion sysctl and falls back to sw_vers.
func ProductVersion() (Version, error) {
	if s, err := unix.Sysctl("kern.osproductversion"); err == nil && s != "" {
		return ParseVersion(s)
	}
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return Version{}, fmt.Errorf("failed to run sw_vers: %w", err)
	}
	return ParseVersion(strings.TrimSpace(string(out)))
}
