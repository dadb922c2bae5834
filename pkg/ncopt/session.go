// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"strings"
	"unicode/utf8"
)

// session holds the state of a single Parse call.
type session[T any] struct {
	p      *Parser[T]
	target *T
	args   []string
	prog   string

	pos  int    // index of the current token in args
	data string // unconsumed characters of the current token

	mask  Mask
	usage []string // last usage of each option, "" if unused
	rest  []string
}

func (p *Parser[T]) newSession(target *T, argv []string) *session[T] {
	return &session[T]{
		p:      p,
		target: target,
		args:   argv,
		prog:   p.progName(argv),
		usage:  make([]string, len(p.opts)),
	}
}

func (s *session[T]) run() error {
	if err := s.parseArg0(); err != nil {
		return err
	}
	for s.next() {
		stop, err := s.parseArg()
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	return s.checkRequires()
}

// next advances to the next token. It reports false at the end of args.
func (s *session[T]) next() bool {
	if s.pos+1 >= len(s.args) {
		return false
	}
	s.pos++
	s.data = s.args[s.pos]
	return true
}

func (s *session[T]) parseArg0() error {
	if len(s.args) == 0 {
		return nil
	}
	arg0 := s.args[0]
	for i := range s.p.opts {
		if opt := &s.p.opts[i]; opt.Arg0 != "" && opt.Arg0 == arg0 {
			if err := s.process(i, arg0, ""); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *session[T]) parseArg() (stop bool, err error) {
	arg := s.data
	switch {
	case arg == "--":
		if s.pos+1 < len(s.args) {
			s.rest = s.args[s.pos+1:]
		}
		return true, nil
	case strings.HasPrefix(arg, "--"):
		return false, s.parseLong()
	case len(arg) > 1 && arg[0] == '-':
		s.data = arg[1:]
		for s.data != "" {
			if err := s.parseShort(); err != nil {
				return false, err
			}
		}
		return false, nil
	default:
		return false, &InvalidArgumentError{Arg: arg}
	}
}

// matchLong resolves a long option name. An exact match wins; otherwise the
// name must be a prefix of exactly one option.
func (s *session[T]) matchLong(name string) (int, error) {
	match, matches := -1, 0
	for i := range s.p.opts {
		long := s.p.opts[i].Long
		if !strings.HasPrefix(long, name) {
			continue
		}
		if len(long) == len(name) {
			return i, nil
		}
		match = i
		matches++
	}
	switch {
	case name == "" || matches == 0:
		return -1, &UnknownOptionError{Option: "--" + name}
	case matches == 1:
		return match, nil
	}
	var cands []string
	for _, opt := range s.p.opts {
		if strings.HasPrefix(opt.Long, name) {
			cands = append(cands, opt.Long)
		}
	}
	return -1, &AmbiguousOptionError{Option: "--" + name, Candidates: cands}
}

func (s *session[T]) parseLong() error {
	name, value, hasValue := strings.Cut(s.data[2:], "=")
	s.data = ""
	idx, err := s.matchLong(name)
	if err != nil {
		return err
	}
	opt := &s.p.opts[idx]
	typed := "--" + name
	ref := OptionRef{Long: opt.Long, Typed: typed}
	switch {
	case hasValue && !opt.Kind.TakesArg():
		return &ArityError{Option: ref}
	case !hasValue && opt.Kind.TakesArg():
		if !s.next() {
			return &ArityError{Option: ref, Missing: true}
		}
		value = s.data
		s.data = ""
	}
	return s.process(idx, typed, value)
}

func (s *session[T]) findShort(r rune) int {
	for i := range s.p.opts {
		if s.p.opts[i].Short != 0 && s.p.opts[i].Short == r {
			return i
		}
	}
	return -1
}

// parseShort consumes one option from the current short cluster. An option
// taking an argument always ends the cluster.
func (s *session[T]) parseShort() error {
	r, size := utf8.DecodeRuneInString(s.data)
	typed := "-" + s.data[:size]
	idx := s.findShort(r)
	if idx < 0 {
		return &UnknownOptionError{Option: typed}
	}
	opt := &s.p.opts[idx]
	if !opt.Kind.TakesArg() {
		s.data = s.data[size:]
		return s.process(idx, typed, "")
	}
	value := s.data[size:]
	s.data = ""
	if value == "" {
		if !s.next() {
			return &ArityError{Option: OptionRef{Long: opt.Long, Typed: typed}, Missing: true}
		}
		value = s.data
		s.data = ""
	}
	return s.process(idx, typed, value)
}

// process records the usage of option idx, checks it against the options
// seen so far and applies it to the target.
func (s *session[T]) process(idx int, typed, arg string) error {
	opt := &s.p.opts[idx]
	s.usage[idx] = typed
	ref := OptionRef{Long: opt.Long, Typed: typed}
	if opt.Kind.TakesArg() {
		s.p.logf("ncopt: %s -> --%s %q", typed, opt.Long, arg)
	} else {
		s.p.logf("ncopt: %s -> --%s", typed, opt.Long)
	}
	if s.mask.Intersects(opt.Conflicts) {
		return &ConflictError{Option: ref, With: s.conflicting(idx)}
	}
	if err := opt.Kind.apply(s, ref, arg); err != nil {
		return err
	}
	s.mask |= opt.Provides
	return nil
}

// conflicting lists the previously used options providing bits that option
// idx conflicts with. If there are none besides idx itself, idx is listed.
func (s *session[T]) conflicting(idx int) []OptionRef {
	conflicts := s.p.opts[idx].Conflicts
	var refs []OptionRef
	for i, opt := range s.p.opts {
		if i == idx || s.usage[i] == "" || !opt.Provides.Intersects(conflicts) {
			continue
		}
		refs = append(refs, OptionRef{Long: opt.Long, Typed: s.usage[i]})
	}
	if len(refs) == 0 {
		refs = append(refs, OptionRef{Long: s.p.opts[idx].Long, Typed: s.usage[idx]})
	}
	return refs
}

// providers lists the long names of the options providing any bit of m.
func (s *session[T]) providers(m Mask) []string {
	var names []string
	for _, opt := range s.p.opts {
		if opt.Provides.Intersects(m) {
			names = append(names, opt.Long)
		}
	}
	return names
}

// checkRequires verifies, against the final mask, the Requires mask of
// every option used and then the parser-wide requirement.
func (s *session[T]) checkRequires() error {
	for i, opt := range s.p.opts {
		if s.usage[i] == "" {
			continue
		}
		if missing := s.mask.Missing(opt.Requires); missing != 0 {
			return &RequiresError{
				Option:    &OptionRef{Long: opt.Long, Typed: s.usage[i]},
				Missing:   missing,
				Providers: s.providers(missing),
			}
		}
	}
	if missing := s.mask.Missing(s.p.requires); missing != 0 {
		return &RequiresError{Missing: missing, Providers: s.providers(missing)}
	}
	return nil
}
