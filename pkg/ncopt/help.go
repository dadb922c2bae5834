// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

const (
	helpIndent      = "    "
	helpMaxFlagCol  = 32
	helpDefaultCols = 80
	helpMinDescCols = 20
	ungroupedTitle  = "Options"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return helpDefaultCols
}

// flagColumn renders the "-x, --long METAVAR" part of a help line.
func flagColumn[T any](opt *Option[T]) string {
	var b strings.Builder
	if opt.Short != 0 {
		fmt.Fprintf(&b, "-%c, ", opt.Short)
	} else {
		b.WriteString("    ")
	}
	b.WriteString("--")
	b.WriteString(opt.Long)
	if opt.Kind.TakesArg() {
		mv := opt.Metavar
		if mv == "" {
			mv = opt.Kind.metavar()
		}
		b.WriteString(" ")
		b.WriteString(mv)
	}
	return b.String()
}

// WriteHelp writes the usage text derived from the option table: a usage
// line followed by the options, grouped by Group in order of first
// appearance.
func (p *Parser[T]) WriteHelp(w io.Writer, prog string) error {
	heading := color.New(color.Bold)
	if isTerminal(w) {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}

	var groups []string
	byGroup := make(map[string][]int)
	col := 0
	for i := range p.opts {
		g := p.opts[i].Group
		if g == "" {
			g = ungroupedTitle
		}
		if _, ok := byGroup[g]; !ok {
			groups = append(groups, g)
		}
		byGroup[g] = append(byGroup[g], i)
		col = max(col, len(flagColumn(&p.opts[i])))
	}
	col = min(col, helpMaxFlagCol)
	descWidth := max(termWidth(w)-len(helpIndent)-col-2, helpMinDescCols)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s%s [options]\n", heading.Sprint("Usage:"), helpIndent, prog)
	for _, g := range groups {
		fmt.Fprintf(&b, "\n%s\n", heading.Sprint(g+":"))
		for _, i := range byGroup[g] {
			opt := &p.opts[i]
			desc := opt.Description
			if opt.Arg0 != "" {
				desc = strings.TrimSpace(desc + fmt.Sprintf(" (implied when invoked as %s)", opt.Arg0))
			}
			flags := flagColumn(opt)
			if desc == "" {
				fmt.Fprintf(&b, "%s%s\n", helpIndent, flags)
				continue
			}
			lines := strings.Split(wordwrap.WrapString(desc, uint(descWidth)), "\n")
			if len(flags) > col {
				fmt.Fprintf(&b, "%s%s\n", helpIndent, flags)
			} else {
				fmt.Fprintf(&b, "%s%-*s  %s\n", helpIndent, col, flags, lines[0])
				lines = lines[1:]
			}
			for _, l := range lines {
				fmt.Fprintf(&b, "%s%*s  %s\n", helpIndent, col, "", l)
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
