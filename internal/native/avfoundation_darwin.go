//go:build darwin

package native

import (
	"fmt"

	"github.com/ebitengine/purego/objc"
)

// AVMediaType values as four character codes.
const (
	MediaTypeVideo = "vide"
	MediaTypeAudio = "soun"
)

// AVAuthorizationStatus values.
const (
	AuthorizationNotDetermined = 0
	AuthorizationRestricted    = 1
	AuthorizationDenied        = 2
	AuthorizationAuthorized    = 3
)

var avFoundation = &framework{path: avFoundationPath}

var (
	selAuthorizationStatus = objc.RegisterName("authorizationStatusForMediaType:")
	selRequestAccess       = objc.RegisterName("requestAccessForMediaType:completionHandler:")
)

func captureDevice() (objc.ID, error) {
	if _, err := avFoundation.load(); err != nil {
		return 0, err
	}
	cls := objc.GetClass("AVCaptureDevice")
	if cls == 0 {
		return 0, fmt.Errorf("AVCaptureDevice class not found")
	}
	return objc.ID(cls), nil
}

// AuthorizationStatus calls
// +[AVCaptureDevice authorizationStatusForMediaType:].
func AuthorizationStatus(mediaType string) (int, error) {
	dev, err := captureDevice()
	if err != nil {
		return AuthorizationNotDetermined, err
	}
	mt, err := nsString(mediaType)
	if err != nil {
		return AuthorizationNotDetermined, err
	}
	return objc.Send[int](dev, selAuthorizationStatus, mt), nil
}

// RequestAccess calls
// +[AVCaptureDevice requestAccessForMediaType:completionHandler:] with a nil
// completion handler. The user's answer is only visible through a later
// AuthorizationStatus call.
func RequestAccess(mediaType string) error {
	dev, err := captureDevice()
	if err != nil {
		return err
	}
	mt, err := nsString(mediaType)
	if err != nil {
		return err
	}
	dev.Send(selRequestAccess, mt, objc.Block(0))
	return nil
}
