//go:build darwin

package native

import (
	"fmt"

	"github.com/ebitengine/purego/objc"
)

var (
	fnAXIsProcessTrusted            func() bool
	fnAXIsProcessTrustedWithOptions func(options uintptr) bool

	axTrustedCheckOptionPrompt uintptr
)

var applicationServices = &framework{
	path: applicationServicesPath,
	register: func(lib uintptr) error {
		if err := registerFunc(&fnAXIsProcessTrusted, lib, "AXIsProcessTrusted"); err != nil {
			return err
		}
		if err := registerFunc(&fnAXIsProcessTrustedWithOptions, lib, "AXIsProcessTrustedWithOptions"); err != nil {
			return err
		}
		key, err := globalPtr(lib, "kAXTrustedCheckOptionPrompt")
		if err != nil {
			return err
		}
		axTrustedCheckOptionPrompt = key
		return nil
	},
}

var kCFBooleanTrue uintptr

var coreFoundation = &framework{
	path: coreFoundationPath,
	register: func(lib uintptr) error {
		v, err := globalPtr(lib, "kCFBooleanTrue")
		if err != nil {
			return err
		}
		kCFBooleanTrue = v
		return nil
	},
}

var selDictionaryWithObjectForKey = objc.RegisterName("dictionaryWithObject:forKey:")

// IsProcessTrusted calls AXIsProcessTrusted.
func IsProcessTrusted() (bool, error) {
	if _, err := applicationServices.load(); err != nil {
		return false, err
	}
	return fnAXIsProcessTrusted(), nil
}

// PromptProcessTrusted calls AXIsProcessTrustedWithOptions with
// kAXTrustedCheckOptionPrompt set, which shows the accessibility prompt if
// the process is not yet trusted. It returns without waiting for the user.
func PromptProcessTrusted() (bool, error) {
	if _, err := applicationServices.load(); err != nil {
		return false, err
	}
	if _, err := coreFoundation.load(); err != nil {
		return false, err
	}
	if _, err := foundation.load(); err != nil {
		return false, err
	}
	cls := objc.GetClass("NSDictionary")
	if cls == 0 {
		return false, fmt.Errorf("NSDictionary class not found")
	}
	// NSDictionary is toll-free bridged to CFDictionaryRef.
	opts := objc.ID(cls).Send(selDictionaryWithObjectForKey,
		objc.ID(kCFBooleanTrue), objc.ID(axTrustedCheckOptionPrompt))
	if opts == 0 {
		return false, fmt.Errorf("create accessibility options dictionary")
	}
	return fnAXIsProcessTrustedWithOptions(uintptr(opts)), nil
}
