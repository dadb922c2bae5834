// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"errors"
	"strconv"
	"strings"
)

// StdinPath is the ReadFile argument that selects standard input.
const StdinPath = "-"

// Kind selects what an option does with its argument. The set of kinds is
// closed; values are created with the constructors in this file (Help,
// Increment, Enum, ReadFile, ...). Constructors taking a field accessor
// write into the field returned by calling it on the parse target.
type Kind[T any] interface {
	// TakesArg reports whether the option consumes an argument.
	TakesArg() bool

	metavar() string
	apply(s *session[T], ref OptionRef, arg string) error
}

type noArg struct{}

func (noArg) TakesArg() bool  { return false }
func (noArg) metavar() string { return "" }

type withArg struct{}

func (withArg) TakesArg() bool { return true }

type helpKind[T any] struct{ noArg }

// Help prints the usage text generated from the table to the parser's
// standard output and stops parsing with ErrHelp.
func Help[T any]() Kind[T] { return helpKind[T]{} }

func (helpKind[T]) apply(s *session[T], _ OptionRef, _ string) error {
	if err := s.p.WriteHelp(s.p.stdout, s.prog); err != nil {
		return err
	}
	return ErrHelp
}

type stepKind[T any] struct {
	noArg
	field func(*T) *int
	delta int
}

// Increment adds one to the field each time the option is given.
func Increment[T any](field func(*T) *int) Kind[T] {
	return stepKind[T]{field: field, delta: 1}
}

// Decrement subtracts one from the field each time the option is given.
func Decrement[T any](field func(*T) *int) Kind[T] {
	return stepKind[T]{field: field, delta: -1}
}

func (k stepKind[T]) apply(s *session[T], _ OptionRef, _ string) error {
	*k.field(s.target) += k.delta
	return nil
}

type setEnumKind[T any] struct {
	noArg
	field func(*T) *int
	value int
}

// SetEnum stores a fixed constant in the field, e.g. --push selecting the
// PUSH socket type.
func SetEnum[T any](field func(*T) *int, value int) Kind[T] {
	return setEnumKind[T]{field: field, value: value}
}

func (k setEnumKind[T]) apply(s *session[T], _ OptionRef, _ string) error {
	*k.field(s.target) = k.value
	return nil
}

type enumKind[T any] struct {
	withArg
	field func(*T) *int
	items []EnumItem
}

// Enum looks the argument up by exact name in items and stores the
// matching value.
func Enum[T any](field func(*T) *int, items []EnumItem) Kind[T] {
	return enumKind[T]{field: field, items: items}
}

func (k enumKind[T]) names() []string {
	names := make([]string, len(k.items))
	for i, it := range k.items {
		names[i] = it.Name
	}
	return names
}

func (k enumKind[T]) metavar() string {
	return "{" + strings.Join(k.names(), "|") + "}"
}

func (k enumKind[T]) apply(s *session[T], ref OptionRef, arg string) error {
	for _, it := range k.items {
		if it.Name == arg {
			*k.field(s.target) = it.Value
			return nil
		}
	}
	return &ValueError{Option: ref, Value: arg, Reason: "not one of the accepted values", Valid: k.names()}
}

type stringKind[T any] struct {
	withArg
	field func(*T) *string
}

// String stores the argument as given.
func String[T any](field func(*T) *string) Kind[T] {
	return stringKind[T]{field: field}
}

func (stringKind[T]) metavar() string { return "STRING" }

func (k stringKind[T]) apply(s *session[T], _ OptionRef, arg string) error {
	*k.field(s.target) = arg
	return nil
}

type blobKind[T any] struct {
	withArg
	field func(*T) *[]byte
}

// Blob stores the bytes of the argument.
func Blob[T any](field func(*T) *[]byte) Kind[T] {
	return blobKind[T]{field: field}
}

func (blobKind[T]) metavar() string { return "DATA" }

func (k blobKind[T]) apply(s *session[T], _ OptionRef, arg string) error {
	*k.field(s.target) = []byte(arg)
	return nil
}

type floatKind[T any] struct {
	withArg
	field func(*T) *float64
}

// Float parses the argument as a floating-point literal. The whole argument
// must be consumed by the conversion.
func Float[T any](field func(*T) *float64) Kind[T] {
	return floatKind[T]{field: field}
}

func (floatKind[T]) metavar() string { return "NUM" }

func (k floatKind[T]) apply(s *session[T], ref OptionRef, arg string) error {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return &ValueError{Option: ref, Value: arg, Reason: "requires a floating-point argument", Err: err}
	}
	*k.field(s.target) = f
	return nil
}

type stringListKind[T any] struct {
	withArg
	field func(*T) *[]string
}

// StringList appends the argument to the field, preserving command-line
// order across repeated uses.
func StringList[T any](field func(*T) *[]string) Kind[T] {
	return stringListKind[T]{field: field}
}

func (stringListKind[T]) metavar() string { return "STRING" }

func (k stringListKind[T]) apply(s *session[T], _ OptionRef, arg string) error {
	p := k.field(s.target)
	*p = append(*p, arg)
	return nil
}

type readFileKind[T any] struct {
	withArg
	field func(*T) *[]byte
}

// ReadFile reads the whole file named by the argument, or standard input
// when the argument is StdinPath, and replaces the field with its contents.
func ReadFile[T any](field func(*T) *[]byte) Kind[T] {
	return readFileKind[T]{field: field}
}

func (readFileKind[T]) metavar() string { return "PATH" }

func (k readFileKind[T]) apply(s *session[T], ref OptionRef, arg string) error {
	data, err := s.p.readFile(arg)
	if err != nil {
		return &FileError{Option: ref, Path: arg, Err: err}
	}
	*k.field(s.target) = data
	return nil
}

func (p *Parser[T]) readFile(name string) ([]byte, error) {
	if name == StdinPath {
		if p.stdin == nil {
			return nil, errors.New("no standard input")
		}
		return ReadAll(p.stdin)
	}
	f, err := p.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f)
}
