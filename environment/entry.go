package environment

import (
	"fmt"
	"strings"
)

// Entry is one resolved declaration. It never changes after resolution.
type Entry struct {
	Name        string
	Value       any
	UsedDefault bool
}

func (e Entry) String() string {
	var value string
	switch v := e.Value.(type) {
	case string:
		value = fmt.Sprintf("%q", v)
	default:
		value = fmt.Sprintf("%v", v)
	}
	marker := ""
	if e.UsedDefault {
		marker = " (default)"
	}
	return fmt.Sprintf("<%s[%T]= %s%s>", e.Name, e.Value, value, marker)
}

func validName(s string) bool {
	return s == strings.ToUpper(s)
}

// resolve reads prefix+name from src and applies cast or the fallback.
func resolve[T any](src Source, prefix, name string, cast func(string) (T, error), def Default[T]) (T, Entry, error) {
	var zero T
	if !validName(name) {
		return zero, Entry{}, keyError(name, ErrInvalidName)
	}

	key := prefix + name
	raw, ok := src.LookupEnv(key)
	if ok {
		v, err := cast(raw)
		if err != nil {
			return zero, Entry{}, err
		}
		return v, Entry{Name: key, Value: v}, nil
	}

	if def.IsRequired() {
		return zero, Entry{}, keyError(key, ErrMissing)
	}
	v := def.value
	if def.kind == producer {
		v = def.produce()
	}
	return v, Entry{Name: key, Value: v, UsedDefault: true}, nil
}
