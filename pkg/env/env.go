// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package env renders structs as environment files, one KEY=VALUE line per
// field tagged with `env:"KEY"`.
package env

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Encode writes the tagged, non-zero fields of e to o. Slices are joined
// with spaces; values containing shell metacharacters are quoted.
func Encode(o io.Writer, e any) error {
	re := reflect.ValueOf(e)
	if re.Kind() == reflect.Ptr {
		re = re.Elem()
	}
	if re.Kind() != reflect.Struct {
		return fmt.Errorf("env: cannot encode %s", re.Kind())
	}
	ret := re.Type()
	for i := 0; i < re.NumField(); i++ {
		field := re.Field(i)
		tag := ret.Field(i).Tag.Get("env")
		if tag == "" || field.IsZero() {
			continue
		}
		if _, err := fmt.Fprintf(o, "%s=%s\n", tag, quote(format(field))); err != nil {
			return err
		}
	}
	return nil
}

func format(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes())
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = format(v.Index(i))
		}
		return strings.Join(parts, " ")
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'\\$`#;&|<>*?()") {
		return strconv.Quote(s)
	}
	return s
}
