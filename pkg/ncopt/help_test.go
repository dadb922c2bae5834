// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteHelpGroupsInTableOrder(t *testing.T) {
	p, _ := newTestParser(t)
	var buf bytes.Buffer
	if err := p.WriteHelp(&buf, "nanocat"); err != nil {
		t.Fatalf("WriteHelp() error = %v", err)
	}
	var headings []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " ") {
			headings = append(headings, line)
		}
	}
	want := []string{"Usage:", "Generic:", "Socket Types:", "Output:", "Options:", "Data:"}
	if diff := cmp.Diff(want, headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("help written to a buffer contains color escapes")
	}
}

func TestWriteHelpWrapsDescriptions(t *testing.T) {
	type opts struct{ N int }
	long := strings.Repeat("lorem ipsum dolor sit amet ", 12)
	p := MustNewParser(Table[opts]{
		{Long: "count", Short: 'c', Kind: Increment(func(o *opts) *int { return &o.N }), Description: long},
		{Long: "a-rather-long-option-name-that-overflows-the-column", Kind: Decrement(func(o *opts) *int { return &o.N }), Description: "Short"},
	})
	var buf bytes.Buffer
	if err := p.WriteHelp(&buf, "prog"); err != nil {
		t.Fatalf("WriteHelp() error = %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	continuation := 0
	for _, line := range lines {
		if len(line) > helpDefaultCols {
			t.Errorf("line exceeds %d columns: %q", helpDefaultCols, line)
		}
		if strings.HasPrefix(line, helpIndent+strings.Repeat(" ", 10)) && strings.Contains(line, "lorem") {
			continuation++
		}
	}
	if continuation == 0 {
		t.Errorf("description was not wrapped:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "    --a-rather-long-option-name-that-overflows-the-column\n") {
		t.Errorf("overlong flag column not on its own line:\n%s", buf.String())
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil", nil, ExitOK, ""},
		{"help", ErrHelp, ExitOK, ""},
		{"usage", &UnknownOptionError{Option: "-x"}, ExitUsage, "prog: error: unknown option \"-x\"\n"},
		{"io", &FileError{Option: OptionRef{Long: "file", Typed: "-F"}, Path: StdinPath, Err: errors.New("broken pipe")},
			ExitIO, "prog: error: option --file (-F): cannot read standard input: broken pipe\n"},
		{"plain error", errors.New("other"), ExitUsage, "prog: error: other\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if code := Report(&buf, "prog", tt.err); code != tt.wantCode {
				t.Errorf("Report() = %d, want %d", code, tt.wantCode)
			}
			if diff := cmp.Diff(tt.wantOut, buf.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMask(t *testing.T) {
	m := maskSocket | maskWrite
	if !m.Has(maskSocket) || m.Has(maskSocket|maskRead) {
		t.Errorf("Has() wrong for %v", m)
	}
	if !m.Intersects(maskWrite|maskData) || m.Intersects(maskRead) {
		t.Errorf("Intersects() wrong for %v", m)
	}
	if got := m.Missing(maskSocket | maskRead | maskData); got != maskRead|maskData {
		t.Errorf("Missing() = %v, want %v", got, maskRead|maskData)
	}
	if got := m.String(); got != "bit0|bit2" {
		t.Errorf("String() = %q, want %q", got, "bit0|bit2")
	}
}
