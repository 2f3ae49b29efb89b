// Package fulldisk infers whether the current process holds Full Disk Access.
//
// macOS has no API that reports Full Disk Access directly. A Prober instead
// tries to list directories that TCC keeps unreadable without it; if any
// listing succeeds the permission is assumed granted. The technique follows
// https://github.com/inket/FullDiskAccess.
//
// The result is only as good as the probe list. If a macOS release stops
// protecting one of the paths, or removes the app that owns it, the heuristic
// silently drifts. Keep DefaultPaths current rather than layering workarounds
// on top of it.
package fulldisk

import (
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPaths are the probe directories, relative to the user's home,
// in the order they are tried.
var DefaultPaths = []string{
	"Library/Containers/com.apple.stocks",
	"Library/Safari",
}

// ReadDirFunc lists a directory. os.ReadDir satisfies it.
type ReadDirFunc func(name string) ([]fs.DirEntry, error)

// Prober checks an ordered list of protected directories.
type Prober struct {
	paths   []string
	readDir ReadDirFunc
}

// Option configures a Prober.
type Option func(*Prober)

// WithPaths replaces the probe list. Relative paths are resolved against
// the home directory passed to Probe; absolute paths are used as is.
func WithPaths(paths ...string) Option {
	return func(p *Prober) {
		p.paths = append([]string(nil), paths...)
	}
}

// WithReadDir replaces the directory listing function.
func WithReadDir(fn ReadDirFunc) Option {
	return func(p *Prober) {
		if fn != nil {
			p.readDir = fn
		}
	}
}

// New returns a Prober using DefaultPaths and os.ReadDir unless overridden.
func New(opts ...Option) *Prober {
	p := &Prober{
		paths:   append([]string(nil), DefaultPaths...),
		readDir: os.ReadDir,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Paths returns the probe paths resolved against home.
func (p *Prober) Paths(home string) []string {
	out := make([]string, 0, len(p.paths))
	for _, rel := range p.paths {
		out = append(out, resolve(home, rel))
	}
	return out
}

// Probe reports whether any probe directory under home can be listed.
// It stops at the first success. An empty home resolves nothing and reports
// false unless the probe list holds absolute paths.
func (p *Prober) Probe(home string) bool {
	for _, rel := range p.paths {
		path := resolve(home, rel)
		if path == "" {
			continue
		}
		if _, err := p.readDir(path); err == nil {
			return true
		}
	}
	return false
}

// Result is the outcome of probing one path.
type Result struct {
	Path string `json:"path" yaml:"path"`
	OK   bool   `json:"ok" yaml:"ok"`
	Err  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Results probes every path without stopping early. Used for diagnostics.
func (p *Prober) Results(home string) []Result {
	results := make([]Result, 0, len(p.paths))
	for _, rel := range p.paths {
		path := resolve(home, rel)
		r := Result{Path: path}
		if path == "" {
			r.Err = "home directory unknown"
			results = append(results, r)
			continue
		}
		if _, err := p.readDir(path); err != nil {
			r.Err = err.Error()
		} else {
			r.OK = true
		}
		results = append(results, r)
	}
	return results
}

func resolve(home, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, path)
}
