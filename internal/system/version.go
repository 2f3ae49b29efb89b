// Package system reports facts about the running macOS installation.
package system

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotDarwin is returned by ProductVersion on other platforms.
var ErrNotDarwin = errors.New("not running on macOS")

// Version is a parsed macOS product version such as 14.2.1.
type Version struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

// String returns the version without trailing zero components.
func (v Version) String() string {
	if v.Patch > 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Minor > 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return strconv.Itoa(v.Major)
}

// ReleaseName returns the marketing name for the version.
func (v Version) ReleaseName() string {
	switch v.Major {
	case 26:
		return "Tahoe"
	case 15:
		return "Sequoia"
	case 14:
		return "Sonoma"
	case 13:
		return "Ventura"
	case 12:
		return "Monterey"
	case 11:
		return "Big Sur"
	case 10:
		if v.Minor >= 15 {
			return "Catalina"
		}
		return "Mojave or earlier"
	default:
		if v.Major > 26 {
			return "Future macOS"
		}
		return "Unknown"
	}
}

// IsAtLeast reports whether v is at least major.minor.patch.
func (v Version) IsAtLeast(major, minor, patch int) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

// SettingsAppName returns "System Settings" on Ventura and later and
// "System Preferences" before. A zero Version is treated as current.
func (v Version) SettingsAppName() string {
	if v.Major == 0 || v.IsAtLeast(13, 0, 0) {
		return "System Settings"
	}
	return "System Preferences"
}

// ParseVersion parses a version string like "14.2.1" or "15.0".
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimSpace(s)
	v := Version{Raw: raw}
	if raw == "" {
		return v, fmt.Errorf("empty version string")
	}

	parts := strings.Split(raw, ".")
	if len(parts) > 3 {
		return v, fmt.Errorf("invalid version format: %s", raw)
	}
	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("invalid version component %q in %s", part, raw)
		}
		*fields[i] = n
	}
	return v, nil
}

// SettingsAppName returns the settings application name for the running
// system, falling back to "System Settings" when the version is unknown.
func SettingsAppName() string {
	v, err := ProductVersion()
	if err != nil {
		return Version{}.SettingsAppName()
	}
	return v.SettingsAppName()
}
