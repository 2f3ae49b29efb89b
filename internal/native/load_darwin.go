//go:build darwin

package native

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/ebitengine/purego/objc"
)

const (
	foundationPath          = "/System/Library/Frameworks/Foundation.framework/Foundation"
	avFoundationPath        = "/System/Library/Frameworks/AVFoundation.framework/AVFoundation"
	ioKitPath               = "/System/Library/Frameworks/IOKit.framework/IOKit"
	coreGraphicsPath        = "/System/Library/Frameworks/CoreGraphics.framework/CoreGraphics"
	applicationServicesPath = "/System/Library/Frameworks/ApplicationServices.framework/ApplicationServices"
	coreFoundationPath      = "/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation"
)

// framework lazily dlopens one framework and registers its functions.
type framework struct {
	path     string
	register func(lib uintptr) error

	once sync.Once
	lib  uintptr
	err  error
}

func (f *framework) load() (uintptr, error) {
	f.once.Do(func() {
		lib, err := purego.Dlopen(f.path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			f.err = fmt.Errorf("load %s: %w", f.path, err)
			return
		}
		f.lib = lib
		if f.register != nil {
			f.err = f.register(lib)
		}
	})
	return f.lib, f.err
}

// registerFunc binds fptr to symbol in lib, turning a missing symbol into
// an error instead of the panic purego.RegisterLibFunc would raise.
func registerFunc(fptr any, lib uintptr, symbol string) error {
	sym, err := purego.Dlsym(lib, symbol)
	if err != nil {
		return fmt.Errorf("dlsym %s: %w", symbol, err)
	}
	purego.RegisterFunc(fptr, sym)
	return nil
}

// globalPtr reads the object pointer stored in a global variable such as
// kCFBooleanTrue or kAXTrustedCheckOptionPrompt.
func globalPtr(lib uintptr, symbol string) (uintptr, error) {
	sym, err := purego.Dlsym(lib, symbol)
	if err != nil {
		return 0, fmt.Errorf("dlsym %s: %w", symbol, err)
	}
	return derefGlobalPtr(sym), nil
}

//go:nocheckptr
func derefGlobalPtr(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr)) //nolint:govet
}

var foundation = &framework{path: foundationPath}

var selStringWithUTF8 = objc.RegisterName("stringWithUTF8String:")

// nsString creates an autoreleased NSString from a Go string.
func nsString(s string) (objc.ID, error) {
	if _, err := foundation.load(); err != nil {
		return 0, err
	}
	cls := objc.GetClass("NSString")
	if cls == 0 {
		return 0, fmt.Errorf("NSString class not found")
	}
	b := append([]byte(s), 0)
	id := objc.ID(cls).Send(selStringWithUTF8, uintptr(unsafe.Pointer(&b[0])))
	if id == 0 {
		return 0, fmt.Errorf("create NSString %q", s)
	}
	return id, nil
}
