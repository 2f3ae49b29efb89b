package macperms

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Report is a snapshot of every permission check.
type Report struct {
	Accessibility   bool      `json:"accessibility"`
	Camera          bool      `json:"camera"`
	Microphone      bool      `json:"microphone"`
	ScreenRecording bool      `json:"screen_recording"`
	InputMonitoring bool      `json:"input_monitoring"`
	FullDiskAccess  bool      `json:"full_disk_access"`
	CheckedAt       time.Time `json:"checked_at"`
}

// Get returns the recorded result for p.
func (r Report) Get(p Permission) bool {
	switch p {
	case Accessibility:
		return r.Accessibility
	case Camera:
		return r.Camera
	case Microphone:
		return r.Microphone
	case ScreenRecording:
		return r.ScreenRecording
	case InputMonitoring:
		return r.InputMonitoring
	case FullDiskAccess:
		return r.FullDiskAccess
	}
	return false
}

// AllGranted reports whether every permission in the report is granted.
func (r Report) AllGranted() bool {
	for _, p := range allPermissions {
		if !r.Get(p) {
			return false
		}
	}
	return true
}

// Missing returns the permissions that are not granted, in All order.
func (r Report) Missing() []Permission {
	var missing []Permission
	for _, p := range allPermissions {
		if !r.Get(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// CheckAll runs every check concurrently. The checks are independent, so
// this only saves the latency of the slower native calls. It returns early
// with ctx's error if ctx is cancelled before all checks finish.
func CheckAll(ctx context.Context, c Checker, env HostEnv) (Report, error) {
	results := make([]bool, len(allPermissions))
	var g errgroup.Group
	for i, p := range allPermissions {
		i, p := i, p
		g.Go(func() error {
			ok, err := Check(c, p, env)
			if err != nil {
				return err
			}
			results[i] = ok
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	select {
	case <-ctx.Done():
		return Report{}, ctx.Err()
	case err := <-done:
		if err != nil {
			return Report{}, err
		}
	}

	return Report{
		Accessibility:   results[0],
		Camera:          results[1],
		Microphone:      results[2],
		ScreenRecording: results[3],
		InputMonitoring: results[4],
		FullDiskAccess:  results[5],
		CheckedAt:       time.Now(),
	}, nil
}
