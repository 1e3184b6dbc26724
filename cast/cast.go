// Package cast provides ready-made cast functions for environment.Declare.
//
// Every function here has the shape func(string) (T, error) and never
// substitutes a fallback on malformed input; the error is returned as is.
package cast

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	spfcast "github.com/spf13/cast"
)

const defaultTimestampLayout = time.RFC3339

// Func converts the raw text of an environment variable into a T.
type Func[T any] func(raw string) (T, error)

func String(s string) (string, error) {
	return s, nil
}

// Int, Int64 and Uint read base 10 only, so zero padded values such as
// "010" keep their decimal meaning.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func Int64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func Uint(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	return uint(v), err
}

func Float64(s string) (float64, error) {
	return spfcast.ToFloat64E(strings.TrimSpace(s))
}

// Bool accepts the forms understood by strconv.ParseBool.
func Bool(s string) (bool, error) {
	return spfcast.ToBoolE(strings.TrimSpace(s))
}

// Duration parses Go duration strings. A bare number is read as nanoseconds.
func Duration(s string) (time.Duration, error) {
	return spfcast.ToDurationE(strings.TrimSpace(s))
}

// Time parses an RFC3339 timestamp.
func Time(s string) (time.Time, error) {
	return time.Parse(defaultTimestampLayout, strings.TrimSpace(s))
}

func TimeLayout(layout string) Func[time.Time] {
	return func(s string) (time.Time, error) {
		return time.Parse(layout, strings.TrimSpace(s))
	}
}

// AnyTime tries a long list of common timestamp layouts.
func AnyTime(s string) (time.Time, error) {
	return spfcast.ToTimeE(strings.TrimSpace(s))
}

func Decimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

func UUID(s string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(s))
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	v := make([]string, 0, len(parts))
	for _, p := range parts {
		v = append(v, strings.TrimSpace(p))
	}
	return v
}

// Slice splits a comma separated list and casts every element with elem.
// An empty value yields an empty slice.
func Slice[T any](elem func(string) (T, error)) Func[[]T] {
	return func(s string) ([]T, error) {
		parts := splitList(s)
		v := make([]T, 0, len(parts))
		for i, p := range parts {
			e, err := elem(p)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			v = append(v, e)
		}
		return v, nil
	}
}

func Strings(s string) ([]string, error) {
	return splitList(s), nil
}

// DurationMap parses "name:duration" pairs separated by commas.
func DurationMap(s string) (map[string]time.Duration, error) {
	parts := splitList(s)
	m := make(map[string]time.Duration, len(parts))
	for _, p := range parts {
		k, v, ok := strings.Cut(p, ":")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q: expected name:duration", p)
		}
		d, err := Duration(v)
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", p, err)
		}
		m[strings.TrimSpace(k)] = d
	}
	return m, nil
}

// OneOf reports whether the raw value is one of truthy. It never fails.
func OneOf(truthy ...string) Func[bool] {
	set := make(map[string]struct{}, len(truthy))
	for _, t := range truthy {
		set[t] = struct{}{}
	}
	return func(s string) (bool, error) {
		_, ok := set[s]
		return ok, nil
	}
}

// Unquoted strips one pair of surrounding double quotes before calling f,
// for values written as if they were JSON strings.
func Unquoted[T any](f func(string) (T, error)) Func[T] {
	return func(s string) (T, error) {
		if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
			s = s[1 : len(s)-1]
		}
		return f(s)
	}
}
