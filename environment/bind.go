package environment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v10"
	"go.uber.org/multierr"
)

type boundField struct {
	key   string
	value reflect.Value
}

// Bind fills the struct pointed to by target from the registry source, in
// the way env.Parse does, with the registry prefix applied to every `env`
// tag. Each tagged field is recorded as an entry. Missing required fields
// are reported as ErrMissing; all field errors are returned together.
//
//	type DB struct {
//		Host string        `env:"DB_HOST,required"`
//		Port int           `env:"DB_PORT" envDefault:"5432"`
//		Wait time.Duration `env:"DB_WAIT" envDefault:"5s"`
//	}
func (r *Registry) Bind(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("environment: bind target must be a non-nil struct pointer, got %T", target)
	}

	var invalid error
	for _, f := range collectFields(rv.Elem(), "") {
		if !validName(f.key) {
			invalid = multierr.Append(invalid, keyError(f.key, ErrInvalidName))
		}
	}
	if invalid != nil {
		return invalid
	}

	environ := r.source.Environ()
	if err := env.ParseWithOptions(target, env.Options{
		Environment: environ,
		Prefix:      r.prefix,
	}); err != nil {
		return translateBindError(err)
	}

	for _, f := range collectFields(rv.Elem(), "") {
		key := r.prefix + f.key
		_, present := environ[key]
		r.store(Entry{Name: key, Value: f.value.Interface(), UsedDefault: !present})
	}
	return nil
}

// collectFields walks the exported fields the env package would fill,
// following nested structs, and non-nil struct pointers, with their
// envPrefix tags. Nil struct pointers are left alone, as env does.
func collectFields(v reflect.Value, prefix string) []boundField {
	var out []boundField
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)

		key, _, _ := strings.Cut(sf.Tag.Get("env"), ",")
		if key != "" {
			out = append(out, boundField{key: prefix + key, value: fv})
			continue
		}

		switch {
		case fv.Kind() == reflect.Struct:
			out = append(out, collectFields(fv, prefix+sf.Tag.Get("envPrefix"))...)
		case fv.Kind() == reflect.Pointer && !fv.IsNil() && fv.Elem().Kind() == reflect.Struct:
			out = append(out, collectFields(fv.Elem(), prefix+sf.Tag.Get("envPrefix"))...)
		}
	}
	return out
}

func translateBindError(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return err
	}

	var out error
	for _, e := range agg.Errors {
		var notSet env.EnvVarIsNotSetError
		if errors.As(e, &notSet) {
			out = multierr.Append(out, keyError(notSet.Key, ErrMissing))
			continue
		}
		out = multierr.Append(out, e)
	}
	return out
}
