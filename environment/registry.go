// Package environment declares typed environment variables.
//
// A Registry resolves every variable once, when it is declared: the raw
// text is converted with a cast function, or a Default is used when the
// variable is absent. Resolved values can later be looked up with or
// without the registry prefix.
//
//	env, err := environment.New("APP_")
//	port, err := environment.Declare(env, "DB_PORT", cast.Int, environment.Value(5432))
//	user, err := environment.Require(env, "DB_USER", cast.String)
//
// A Registry is meant to be populated during process start up and is not
// safe for concurrent declaration.
package environment

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/scheerer/dotenvironment/internal/logging"
)

type Registry struct {
	prefix  string
	source  Source
	logger  *zap.SugaredLogger
	entries map[string]Entry
	order   []string
}

type Option func(*Registry)

// WithSource replaces the process environment as the variable source.
func WithSource(src Source) Option {
	return func(r *Registry) {
		if src != nil {
			r.source = src
		}
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty registry. prefix is prepended to every declared name
// and must be upper case; the empty prefix is allowed.
func New(prefix string, opts ...Option) (*Registry, error) {
	if !validName(prefix) {
		return nil, fmt.Errorf("environment: %w: %q", ErrInvalidPrefix, prefix)
	}

	r := &Registry{
		prefix:  prefix,
		source:  OSSource{},
		entries: make(map[string]Entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.New("environment")
	}
	return r, nil
}

func (r *Registry) Prefix() string {
	return r.prefix
}

// Declare resolves prefix+name from the registry source and records the
// result. Errors from cast are returned unchanged. A failed declaration
// leaves the registry as it was.
func Declare[T any](r *Registry, name string, cast func(string) (T, error), def Default[T]) (T, error) {
	v, entry, err := resolve(r.source, r.prefix, name, cast, def)
	if err != nil {
		return v, err
	}
	r.store(entry)
	return v, nil
}

// Require declares a variable that has no fallback.
func Require[T any](r *Registry, name string, cast func(string) (T, error)) (T, error) {
	return Declare(r, name, cast, Required[T]())
}

// MustDeclare is like Declare but panics on error.
func MustDeclare[T any](r *Registry, name string, cast func(string) (T, error), def Default[T]) T {
	v, err := Declare(r, name, cast, def)
	if err != nil {
		panic(err)
	}
	return v
}

func (r *Registry) store(entry Entry) {
	if _, ok := r.entries[entry.Name]; !ok {
		r.order = append(r.order, entry.Name)
	}
	r.entries[entry.Name] = entry
	r.logger.With(
		zap.String("name", entry.Name),
		zap.Bool("default", entry.UsedDefault)).
		Debug("Declared environment variable")
}

func (r *Registry) find(key string) (Entry, bool) {
	if e, ok := r.entries[key]; ok {
		return e, true
	}
	e, ok := r.entries[r.prefix+key]
	return e, ok
}

// Entry returns the entry for key, tried first as a qualified name and then
// with the prefix prepended.
func (r *Registry) Entry(key string) (Entry, bool) {
	return r.find(key)
}

// Lookup returns the resolved value of key. Unknown keys yield an error
// matching ErrUndeclared.
func (r *Registry) Lookup(key string) (any, error) {
	e, ok := r.find(key)
	if !ok {
		return nil, keyError(key, ErrUndeclared)
	}
	return e.Value, nil
}

// Get is Lookup with the value asserted to T.
func Get[T any](r *Registry, key string) (T, error) {
	var zero T
	e, ok := r.find(key)
	if !ok {
		return zero, keyError(key, ErrUndeclared)
	}
	v, ok := e.Value.(T)
	if !ok {
		return zero, &Error{Key: e.Name, Err: fmt.Errorf("%w: have %T, want %T", ErrTypeMismatch, e.Value, zero)}
	}
	return v, nil
}

func (r *Registry) Contains(key string) bool {
	_, ok := r.find(key)
	return ok
}

// Entries lists entries in the order their names were first declared.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Describe renders every entry for debugging. The format is not stable.
func (r *Registry) Describe() string {
	parts := make([]string, 0, len(r.order))
	for _, e := range r.Entries() {
		parts = append(parts, e.String())
	}
	return "Registry([" + strings.Join(parts, ", ") + "])"
}

func (r *Registry) String() string {
	return r.Describe()
}
