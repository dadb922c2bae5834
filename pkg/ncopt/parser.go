// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"tailscale.com/types/logger"
)

// Parser parses command lines against a validated Table. A Parser is
// immutable once built and can be reused; every call to Parse starts from a
// clean state.
type Parser[T any] struct {
	opts     []Option[T]
	requires Mask
	prog     string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	fs       afero.Fs
	logf     logger.Logf
	exit     func(int)
	help     string // long name of the first Help option, if any
}

type parserConfig struct {
	requires Mask
	prog     string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	fs       afero.Fs
	logf     logger.Logf
	exit     func(int)
}

// ParserOption configures a Parser.
type ParserOption func(*parserConfig)

// WithRequires sets the bits that must be provided by the options on every
// command line, e.g. "a socket type was chosen".
func WithRequires(m Mask) ParserOption {
	return func(c *parserConfig) { c.requires = m }
}

// WithProgram overrides the program name used in messages. By default the
// base name of argv[0] is used.
func WithProgram(name string) ParserOption {
	return func(c *parserConfig) { c.prog = name }
}

// WithStdin sets the reader used by ReadFile options given "-".
func WithStdin(r io.Reader) ParserOption {
	return func(c *parserConfig) { c.stdin = r }
}

// WithStdout sets where help output is written.
func WithStdout(w io.Writer) ParserOption {
	return func(c *parserConfig) { c.stdout = w }
}

// WithStderr sets where ParseOrExit reports errors.
func WithStderr(w io.Writer) ParserOption {
	return func(c *parserConfig) { c.stderr = w }
}

// WithFS sets the filesystem ReadFile options read from.
func WithFS(fs afero.Fs) ParserOption {
	return func(c *parserConfig) { c.fs = fs }
}

// WithLogf sets a trace logger that receives one line per resolved option.
func WithLogf(logf logger.Logf) ParserOption {
	return func(c *parserConfig) { c.logf = logf }
}

// WithExit replaces os.Exit in ParseOrExit.
func WithExit(exit func(int)) ParserOption {
	return func(c *parserConfig) { c.exit = exit }
}

// NewParser validates table and returns a Parser for it.
func NewParser[T any](table Table[T], opts ...ParserOption) (*Parser[T], error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	cfg := parserConfig{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		fs:     afero.NewOsFs(),
		logf:   logger.Discard,
		exit:   os.Exit,
	}
	for _, o := range opts {
		o(&cfg)
	}
	p := &Parser[T]{
		opts:     table.Options(),
		requires: cfg.requires,
		prog:     cfg.prog,
		stdin:    cfg.stdin,
		stdout:   cfg.stdout,
		stderr:   cfg.stderr,
		fs:       cfg.fs,
		logf:     cfg.logf,
		exit:     cfg.exit,
	}
	for _, o := range p.opts {
		if _, ok := o.Kind.(helpKind[T]); ok {
			p.help = o.Long
			break
		}
	}
	return p, nil
}

// MustNewParser is like NewParser but panics if the table is invalid.
func MustNewParser[T any](table Table[T], opts ...ParserOption) *Parser[T] {
	p, err := NewParser(table, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Result describes a successful parse.
type Result struct {
	// Mask holds the feature bits provided by the options given.
	Mask Mask
	// Rest holds the arguments after "--". They are not parsed.
	Rest []string
}

// Parse parses argv, which includes the program name as its first element,
// into target. Options are applied as they are seen; when an error is
// returned, options before the offending one have already been written to
// target. A Help option makes Parse return ErrHelp.
func (p *Parser[T]) Parse(target *T, argv []string) (*Result, error) {
	s := p.newSession(target, argv)
	if err := s.run(); err != nil {
		return nil, err
	}
	return &Result{Mask: s.mask, Rest: s.rest}, nil
}

// ParseOrExit parses argv like Parse. On error it writes a diagnostic to
// the parser's stderr and exits with the error's ExitCode; after a Help
// option it exits with ExitOK.
func (p *Parser[T]) ParseOrExit(target *T, argv []string) *Result {
	res, err := p.Parse(target, argv)
	if err == nil {
		return res
	}
	prog := p.progName(argv)
	code := Report(p.stderr, prog, err)
	if code == ExitUsage && p.help != "" {
		fmt.Fprintf(p.stderr, "Try '%s --%s' for more information.\n", prog, p.help)
	}
	p.exit(code)
	return nil
}

func (p *Parser[T]) progName(argv []string) string {
	if p.prog != "" {
		return p.prog
	}
	if len(argv) > 0 && argv[0] != "" {
		return filepath.Base(argv[0])
	}
	return "program"
}
