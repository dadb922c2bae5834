// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"errors"
	"fmt"

	"tailscale.com/util/set"
)

// Option describes one recognized command-line option. T is the type of the
// configuration record the option writes into.
type Option[T any] struct {
	// Long is the name used in the --name form. It must be unique within the
	// table. An Option with an empty Long terminates the table.
	Long string
	// Short is the character used in the -x form. Zero means the option has
	// no short form.
	Short rune
	// Arg0 fires the option when the program is invoked under this exact
	// name (argv[0]). Only valid for kinds that take no argument.
	Arg0 string

	// Kind selects how the option's argument is converted and where it is
	// stored.
	Kind Kind[T]

	// Provides is OR'd into the parse mask when the option is used.
	Provides Mask
	// Conflicts rejects the option if any of its bits were provided by an
	// earlier option.
	Conflicts Mask
	// Requires lists bits that must have been provided by the end of the
	// command line for this option to be valid.
	Requires Mask

	// Group, Metavar and Description are only used for help output.
	Group       string
	Metavar     string
	Description string
}

// EnumItem is a named integer constant accepted by Enum options.
type EnumItem struct {
	Name  string
	Value int
}

// Table is the ordered list of options recognized by a program. Iteration
// stops at the first entry with an empty Long name, so a table may end with
// an explicit zero Option.
type Table[T any] []Option[T]

// Options returns the entries of t up to, but not including, the first
// sentinel entry.
func (t Table[T]) Options() []Option[T] {
	for i := range t {
		if t[i].Long == "" {
			return t[:i]
		}
	}
	return t
}

// TableError reports a malformed option table. It is a programming error in
// the program declaring the table, never a user error.
type TableError struct {
	Long   string
	Reason string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("ncopt: option table: --%s: %s", e.Long, e.Reason)
}

// Validate checks the table invariants: unique long names, unique short
// names, a Kind on every option and Arg0 aliases only on options that take
// no argument.
func (t Table[T]) Validate() error {
	var (
		longs  = make(set.Set[string])
		shorts = make(map[rune]string)
		errs   []error
	)
	for _, opt := range t.Options() {
		if longs.Contains(opt.Long) {
			errs = append(errs, &TableError{Long: opt.Long, Reason: "duplicate long name"})
		}
		longs.Add(opt.Long)
		if opt.Short != 0 {
			if prev, ok := shorts[opt.Short]; ok {
				errs = append(errs, &TableError{
					Long:   opt.Long,
					Reason: fmt.Sprintf("short name -%c already used by --%s", opt.Short, prev),
				})
			} else {
				shorts[opt.Short] = opt.Long
			}
			if opt.Short == '-' {
				errs = append(errs, &TableError{Long: opt.Long, Reason: "short name cannot be '-'"})
			}
		}
		if opt.Kind == nil {
			errs = append(errs, &TableError{Long: opt.Long, Reason: "missing kind"})
			continue
		}
		if opt.Arg0 != "" && opt.Kind.TakesArg() {
			errs = append(errs, &TableError{Long: opt.Long, Reason: "arg0 alias on an option that takes an argument"})
		}
	}
	return errors.Join(errs...)
}
