package environment

import (
	"maps"
	"os"
	"strings"
)

// Source is the flat key/value namespace variables are resolved from.
type Source interface {
	LookupEnv(key string) (string, bool)
	// Environ returns a snapshot of every key. Callers may modify it.
	Environ() map[string]string
}

// OSSource reads the process environment.
type OSSource struct{}

var _ Source = OSSource{}

func (OSSource) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSSource) Environ() map[string]string {
	vars := os.Environ()
	m := make(map[string]string, len(vars))
	for _, kv := range vars {
		k, v, _ := strings.Cut(kv, "=")
		m[k] = v
	}
	return m
}

// MapSource is a fixed set of variables, typically used in tests or built
// with ReadDotenv.
type MapSource map[string]string

var _ Source = MapSource(nil)

func (m MapSource) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Environ never returns nil, so an empty MapSource stays empty instead of
// falling back to the process environment in env.ParseWithOptions.
func (m MapSource) Environ() map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}
