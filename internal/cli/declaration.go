// Package cli turns command line arguments into registry declarations.
package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/scheerer/dotenvironment/cast"
	"github.com/scheerer/dotenvironment/environment"
)

var ErrUnknownType = errors.New("unknown variable type")

// Declaration is one "NAME[:type][=default]" argument.
type Declaration struct {
	Name       string
	Type       string
	Default    string
	HasDefault bool
}

type declarer func(r *environment.Registry, d Declaration) error

var declarers = map[string]declarer{
	"string":   func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.String) },
	"int":      func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.Int) },
	"int64":    func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.Int64) },
	"uint":     func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.Uint) },
	"float":    func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.Float64) },
	"bool":     func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.Bool) },
	"duration": func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.Duration) },
	"time":     func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.AnyTime) },
	"decimal":  func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.Decimal) },
	"uuid":     func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.UUID) },
	"list":     func(r *environment.Registry, d Declaration) error { return declare(r, d, cast.Strings) },
}

// Types lists the accepted type names.
func Types() []string {
	names := make([]string, 0, len(declarers))
	for name := range declarers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse reads "NAME", "NAME:type", "NAME=default" or "NAME:type=default".
// The type defaults to string. Everything after the first "=" is the default.
func Parse(arg string) (Declaration, error) {
	spec, def, hasDefault := strings.Cut(arg, "=")
	name, typ, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	typ = strings.ToLower(strings.TrimSpace(typ))
	if name == "" {
		return Declaration{}, fmt.Errorf("declaration %q: missing variable name", arg)
	}
	if typ == "" {
		typ = "string"
	}
	if _, ok := declarers[typ]; !ok {
		return Declaration{}, fmt.Errorf("declaration %q: %w %q (want one of %s)", arg, ErrUnknownType, typ, strings.Join(Types(), ", "))
	}
	return Declaration{Name: name, Type: typ, Default: def, HasDefault: hasDefault}, nil
}

// Declare resolves d in r. The default text, if any, is cast like an
// environment value before it is used.
func (d Declaration) Declare(r *environment.Registry) error {
	fn, ok := declarers[d.Type]
	if !ok {
		return fmt.Errorf("%s: %w %q", d.Name, ErrUnknownType, d.Type)
	}
	return fn(r, d)
}

func declare[T any](r *environment.Registry, d Declaration, fn func(string) (T, error)) error {
	def := environment.Required[T]()
	if d.HasDefault {
		v, err := fn(d.Default)
		if err != nil {
			return fmt.Errorf("default for %s: %w", d.Name, err)
		}
		def = environment.Value(v)
	}
	_, err := environment.Declare(r, d.Name, fn, def)
	return err
}
