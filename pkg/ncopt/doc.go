// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ncopt implements a table-driven command-line option parser.
//
// A program declares every option it recognizes in a Table. Each Option
// names its long and short forms, the Kind of value it carries and the
// field of the caller's configuration record the value is written to:
//
//	type Options struct {
//	    Verbose int
//	    Name    string
//	}
//
//	var table = ncopt.Table[Options]{
//	    {Long: "help", Short: 'h', Kind: ncopt.Help[Options](),
//	        Description: "Show this help"},
//	    {Long: "verbose", Short: 'v',
//	        Kind: ncopt.Increment(func(o *Options) *int { return &o.Verbose }),
//	        Description: "Increase verbosity"},
//	    {Long: "name", Metavar: "NAME",
//	        Kind: ncopt.String(func(o *Options) *string { return &o.Name }),
//	        Description: "Set the name"},
//	}
//
//	p := ncopt.MustNewParser(table)
//	var opts Options
//	p.ParseOrExit(&opts, os.Args)
//
// # Syntax
//
// Long options are written --name or --name=value and may be abbreviated to
// any unambiguous prefix. Short options are written -x, -xVALUE or -x VALUE;
// short options that take no argument may be clustered (-vvq). A lone "--"
// ends option processing. Plain positional arguments are rejected.
//
// # Constraints
//
// Every option may provide, conflict with and require bits of an
// application-defined feature Mask. An option whose Conflicts mask
// intersects the bits provided by the options seen so far is rejected.
// Requires masks, and the global mask given with WithRequires, are checked
// once the whole command line has been consumed.
//
// # Errors
//
// Parse returns typed errors (UnknownOptionError, ConflictError, FileError,
// ...). Every error carries an exit status through ExitCode: ExitUsage for
// mistakes in the command line and ExitIO when a file named on the command
// line could not be read. ParseOrExit reports the error and exits.
package ncopt
