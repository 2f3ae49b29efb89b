package plugin

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tmc/macperms"
)

// Handler answers one command. payload is the raw JSON sent by the host and
// may be empty; the permission commands ignore it.
type Handler func(ctx context.Context, payload []byte) ([]byte, error)

// Registry is an immutable set of named commands. It is safe for concurrent
// use.
type Registry struct {
	handlers map[string]Handler
	names    []string
}

type builder struct {
	handlers   map[string]Handler
	middleware []Middleware
	errs       []error
}

// Option configures a Registry under construction.
type Option func(*builder)

// WithMiddleware appends middleware. RecoverMiddleware always runs outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(b *builder) { b.middleware = append(b.middleware, mw...) }
}

// WithHandler registers an extra command. Reusing a name is an error.
func WithHandler(name string, h Handler) Option {
	return func(b *builder) {
		if err := b.add(name, h); err != nil {
			b.errs = append(b.errs, err)
		}
	}
}

func (b *builder) add(name string, h Handler) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if h == nil {
		return fmt.Errorf("command %q: nil handler", name)
	}
	if _, exists := b.handlers[name]; exists {
		return fmt.Errorf("duplicate command name: %q", name)
	}
	b.handlers[name] = h
	return nil
}

// New returns a Registry holding the check and request command for every
// permission, answered by c. env resolves the home directory for the Full
// Disk Access check.
func New(c macperms.Checker, env macperms.HostEnv, opts ...Option) (*Registry, error) {
	if c == nil {
		return nil, fmt.Errorf("plugin: nil checker")
	}
	b := &builder{handlers: make(map[string]Handler)}
	for _, p := range macperms.All() {
		check, request := p.Command()
		if err := b.add(check, checkHandler(c, p, env)); err != nil {
			return nil, err
		}
		if err := b.add(request, requestHandler(c, p)); err != nil {
			return nil, err
		}
	}
	for _, opt := range opts {
		opt(b)
	}
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	chain := append([]Middleware{RecoverMiddleware()}, b.middleware...)
	r := &Registry{
		handlers: make(map[string]Handler, len(b.handlers)),
		names:    make([]string, 0, len(b.handlers)),
	}
	for name, h := range b.handlers {
		for i := len(chain) - 1; i >= 0; i-- {
			h = chain[i](h)
		}
		r.handlers[name] = h
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Invoke runs the named command. Unknown names answer a NOT_FOUND
// ErrorResponse rather than a Go error.
func (r *Registry) Invoke(ctx context.Context, name string, payload []byte) ([]byte, error) {
	h, ok := r.handlers[name]
	if !ok {
		return NewNotFoundError(name).ToJSON(), nil
	}
	return h(withCommandName(ctx, name), payload)
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Commands returns the registered command names, sorted.
func (r *Registry) Commands() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func checkHandler(c macperms.Checker, p macperms.Permission, env macperms.HostEnv) Handler {
	return func(ctx context.Context, _ []byte) ([]byte, error) {
		ok, err := macperms.Check(c, p, env)
		if err != nil {
			return nil, err
		}
		return json.Marshal(ok)
	}
}

func requestHandler(c macperms.Checker, p macperms.Permission) Handler {
	return func(ctx context.Context, _ []byte) ([]byte, error) {
		if err := macperms.Request(ctx, c, p); err != nil {
			return NewRequestError(err).ToJSON(), nil
		}
		return []byte("null"), nil
	}
}
