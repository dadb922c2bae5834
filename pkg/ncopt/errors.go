// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Exit statuses used by ParseOrExit.
const (
	ExitOK    = 0
	ExitUsage = 1 // the command line is malformed or contradictory
	ExitIO    = 2 // a file named on the command line could not be read
)

// ErrHelp is returned by Parse after a Help option printed the usage text.
var ErrHelp = errors.New("help requested")

// ExitCoder is implemented by every error returned from Parse.
type ExitCoder interface {
	ExitCode() int
}

// ExitCode returns the process exit status for err. A nil err and ErrHelp
// map to ExitOK; errors that do not carry a status map to ExitUsage.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return ExitOK
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitUsage
}

// OptionRef identifies an option in a diagnostic: its canonical long name
// and the form the user actually typed.
type OptionRef struct {
	Long  string
	Typed string // e.g. "-v", "--verb" or the program name for arg0 aliases
}

func (r OptionRef) String() string {
	canon := "--" + r.Long
	if r.Typed == "" || r.Typed == canon {
		return canon
	}
	return fmt.Sprintf("%s (%s)", canon, r.Typed)
}

func joinRefs(refs []OptionRef) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// InvalidArgumentError is returned for a token that is not an option.
// Positional arguments are not supported.
type InvalidArgumentError struct {
	Arg string
}

func (e *InvalidArgumentError) ExitCode() int { return ExitUsage }

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: expected an option", e.Arg)
}

// UnknownOptionError is returned when no option matches a long name or a
// short character.
type UnknownOptionError struct {
	Option string // as typed, e.g. "--frobnicate" or "-x"
}

func (e *UnknownOptionError) ExitCode() int { return ExitUsage }

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Option)
}

// AmbiguousOptionError is returned when a long option prefix matches more
// than one option.
type AmbiguousOptionError struct {
	Option     string   // as typed
	Candidates []string // long names starting with the typed prefix, in table order
}

func (e *AmbiguousOptionError) ExitCode() int { return ExitUsage }

func (e *AmbiguousOptionError) Error() string {
	cands := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		cands[i] = "--" + c
	}
	return fmt.Sprintf("ambiguous option %q, could be: %s", e.Option, strings.Join(cands, ", "))
}

// ArityError is returned when an option is given an argument it does not
// accept, or is missing the argument it requires.
type ArityError struct {
	Option  OptionRef
	Missing bool // true: argument required but absent
}

func (e *ArityError) ExitCode() int { return ExitUsage }

func (e *ArityError) Error() string {
	if e.Missing {
		return fmt.Sprintf("option %s requires an argument", e.Option)
	}
	return fmt.Sprintf("option %s doesn't accept an argument", e.Option)
}

// ConflictError is returned when an option conflicts with options given
// before it.
type ConflictError struct {
	Option OptionRef
	With   []OptionRef
}

func (e *ConflictError) ExitCode() int { return ExitUsage }

func (e *ConflictError) Error() string {
	return fmt.Sprintf("option %s conflicts with previously given option(s): %s", e.Option, joinRefs(e.With))
}

// RequiresError is returned when, after the whole command line was
// consumed, an option's Requires mask or the parser's global requirement is
// not satisfied.
type RequiresError struct {
	// Option is the option whose requirement is unmet, or nil for the
	// parser-wide requirement.
	Option *OptionRef
	// Missing holds the bits that no given option provided.
	Missing Mask
	// Providers are the options that would provide a missing bit.
	Providers []string
}

func (e *RequiresError) ExitCode() int { return ExitUsage }

func (e *RequiresError) Error() string {
	alts := make([]string, len(e.Providers))
	for i, p := range e.Providers {
		alts[i] = "--" + p
	}
	if e.Option == nil {
		return fmt.Sprintf("at least one of the following options is required: %s", strings.Join(alts, ", "))
	}
	return fmt.Sprintf("option %s requires at least one of: %s", e.Option, strings.Join(alts, ", "))
}

// ValueError is returned when an option argument cannot be converted.
type ValueError struct {
	Option OptionRef
	Value  string
	Reason string
	// Valid lists the accepted values for enumerations.
	Valid []string
	Err   error
}

func (e *ValueError) ExitCode() int { return ExitUsage }

func (e *ValueError) Error() string {
	msg := fmt.Sprintf("invalid value %q for option %s: %s", e.Value, e.Option, e.Reason)
	if len(e.Valid) > 0 {
		msg += " (valid: " + strings.Join(e.Valid, ", ") + ")"
	}
	return msg
}

func (e *ValueError) Unwrap() error { return e.Err }

// FileError is returned when the file named by a ReadFile option cannot be
// opened or read. Unlike the other errors it depends on the environment, not
// on the command line, and exits with ExitIO.
type FileError struct {
	Option OptionRef
	Path   string
	Err    error
}

func (e *FileError) Error() string {
	name := e.Path
	if name == StdinPath {
		name = "standard input"
	}
	return fmt.Sprintf("option %s: cannot read %s: %v", e.Option, name, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

func (e *FileError) ExitCode() int { return ExitIO }

// Report writes err to w prefixed by the program name and returns the exit
// status for it. ErrHelp is not reported.
func Report(w io.Writer, prog string, err error) int {
	code := ExitCode(err)
	if err == nil || code == ExitOK {
		return code
	}
	label := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	fmt.Fprintf(w, "%s: %s %v\n", prog, label.Sprint("error:"), err)
	return code
}
