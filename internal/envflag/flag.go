// Copyright 2026 The gnls Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package envflag parses sets of options held in a single environment
// variable, such as GNLS_DEBUG=logrequests,width=100.
package envflag

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Init calls [Parse] with the contents of the environment variable
// envVar.
func Init[T any](flags *T, envVar string) error {
	if err := Parse(flags, os.Getenv(envVar)); err != nil {
		return fmt.Errorf("cannot parse %s: %w", envVar, err)
	}
	return nil
}

// Parse sets the fields of the struct pointed to by flags from env, a
// comma-separated list of name=value pairs. Names are the lower-cased
// field names. A name on its own sets a boolean field to true. Booleans
// are parsed with [strconv.ParseBool], integers with [strconv.Atoi];
// strings are taken as is.
//
// A field tag such as `envflag:"default:true"` gives a default other than
// the zero value. All fields are reset to their defaults first.
func Parse[T any](flags *T, env string) error {
	fv := reflect.ValueOf(flags).Elem()
	fields, err := fieldsOf(fv.Type())
	if err != nil {
		return err
	}
	for _, f := range fields {
		fv.Field(f.index).Set(reflect.ValueOf(f.def))
	}

	var errs []error
	for _, elem := range strings.Split(env, ",") {
		if elem == "" {
			continue
		}
		name, str, hasValue := strings.Cut(elem, "=")
		f, ok := fields[strings.ToLower(name)]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown flag %q", elem))
			continue
		}
		field := fv.Field(f.index)
		var val any
		switch {
		case hasValue:
			val, err = parseValue(f.name, field.Kind(), str)
			if err != nil {
				errs = append(errs, err)
				continue
			}
		case field.Kind() == reflect.Bool:
			val = true
		default:
			errs = append(errs, fmt.Errorf("value needed for %s flag %q", field.Kind(), f.name))
			continue
		}
		field.Set(reflect.ValueOf(val))
	}
	return errors.Join(errs...)
}

// Names returns the sorted flag names accepted for T.
func Names[T any]() []string {
	var zero T
	fields, err := fieldsOf(reflect.TypeOf(zero))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type field struct {
	name  string
	index int
	def   any
}

func fieldsOf(t reflect.Type) (map[string]field, error) {
	fields := make(map[string]field)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		f := field{
			name:  strings.ToLower(sf.Name),
			index: i,
			def:   reflect.Zero(sf.Type).Interface(),
		}
		if tag, ok := sf.Tag.Lookup("envflag"); ok {
			key, rest, _ := strings.Cut(tag, ":")
			if key != "default" {
				return nil, fmt.Errorf("unknown envflag tag %q", tag)
			}
			val, err := parseValue(f.name, sf.Type.Kind(), rest)
			if err != nil {
				return nil, err
			}
			f.def = val
		}
		fields[f.name] = f
	}
	return fields, nil
}

func parseValue(name string, kind reflect.Kind, str string) (val any, err error) {
	switch kind {
	case reflect.Bool:
		val, err = strconv.ParseBool(str)
	case reflect.Int:
		val, err = strconv.Atoi(str)
	case reflect.String:
		val = str
	default:
		return nil, errInvalid{fmt.Errorf("unsupported kind %s", kind)}
	}
	if err != nil {
		return nil, errInvalid{fmt.Errorf("invalid %s value for %s: %v", kind, name, err)}
	}
	return val, nil
}

// ErrInvalid indicates a malformed value.
var ErrInvalid = errors.New("invalid value")

type errInvalid struct{ error }

func (errInvalid) Is(err error) bool {
	return err == ErrInvalid
}
