package macperms

import (
	"context"
	"errors"
	"sync"
)

var errUnavailable = errors.New("framework unavailable")

type fakeMedia struct {
	mu        sync.Mutex
	status    map[MediaType]AuthorizationStatus
	err       error
	requested []MediaType
	reqErr    error
}

func (f *fakeMedia) AuthorizationStatus(m MediaType) (AuthorizationStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return Authorized, f.err
	}
	return f.status[m], nil
}

func (f *fakeMedia) RequestAccess(m MediaType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requested = append(f.requested, m)
	return f.reqErr
}

type fakeHID struct {
	mu       sync.Mutex
	access   uint32
	err      error
	requests []uint32
}

func (f *fakeHID) CheckAccess(request uint32) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, request)
	return f.access, f.err
}

type fakeScreen struct {
	granted   bool
	err       error
	requested int
}

func (f *fakeScreen) Preflight() (bool, error) { return f.granted, f.err }

func (f *fakeScreen) Request() (bool, error) {
	f.requested++
	return f.granted, f.err
}

type fakeAX struct {
	trusted  bool
	err      error
	prompted int
}

func (f *fakeAX) IsTrusted() (bool, error) { return f.trusted, f.err }

func (f *fakeAX) Prompt() (bool, error) {
	f.prompted++
	return f.trusted, f.err
}

type fakeOpener struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (f *fakeOpener) Open(ctx context.Context, url string) error {
	f.mu.Lock()
	f.urls = append(f.urls, url)
	f.mu.Unlock()
	return f.err
}

func home(dir string) HostEnv {
	return HomeDirFunc(func() (string, error) { return dir, nil })
}

var noHome = HomeDirFunc(func() (string, error) { return "", errors.New("no home") })
