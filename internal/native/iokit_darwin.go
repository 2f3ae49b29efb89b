//go:build darwin

package native

// IOHIDRequestType and IOHIDAccessType values.
const (
	HIDRequestTypePostEvent   = 0
	HIDRequestTypeListenEvent = 1

	HIDAccessTypeGranted = 0
	HIDAccessTypeDenied  = 1
	HIDAccessTypeUnknown = 2
)

var fnIOHIDCheckAccess func(request uint32) uint32

var ioKit = &framework{
	path: ioKitPath,
	register: func(lib uintptr) error {
		return registerFunc(&fnIOHIDCheckAccess, lib, "IOHIDCheckAccess")
	},
}

// HIDCheckAccess calls IOHIDCheckAccess.
func HIDCheckAccess(request uint32) (uint32, error) {
	if _, err := ioKit.load(); err != nil {
		return HIDAccessTypeUnknown, err
	}
	return fnIOHIDCheckAccess(request), nil
}
