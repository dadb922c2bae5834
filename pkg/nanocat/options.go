// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nanocat declares the command-line interface of the nanocat socket
// utility: its configuration record and option table.
package nanocat

import "github.com/yeetrun/nanocat/pkg/ncopt"

// Socket types, numbered like the scalability protocols they select.
const (
	SocketPair       = 16
	SocketPub        = 32
	SocketSub        = 33
	SocketReq        = 48
	SocketRep        = 49
	SocketPush       = 80
	SocketPull       = 81
	SocketSurveyor   = 98
	SocketRespondent = 99
	SocketBus        = 112
)

// Echo formats for received messages.
const (
	FormatNone = iota
	FormatRaw
	FormatASCII
	FormatQuoted
	FormatMsgpack
)

// Dump formats for the resolved configuration.
const (
	DumpYAML = iota
	DumpTOML
	DumpEnv
	DumpNone
)

// Feature bits used by the option table.
const (
	MaskSocketType ncopt.Mask = 1 << iota
	MaskReadable
	MaskWritable
	MaskSocketSub
	MaskEndpoint
	MaskData
	MaskFormat
)

// Requires is the set of bits every nanocat command line must provide: a
// socket type and at least one endpoint.
const Requires = MaskSocketType | MaskEndpoint

// Options is the configuration filled from the command line.
type Options struct {
	Verbose     int
	SocketType  int
	Bind        []string
	Connect     []string
	RecvTimeout float64
	SendTimeout float64
	Subscribe   []string
	SocketName  string
	Data        []byte
	Interval    float64
	EchoFormat  int
	DumpFormat  int
}

// Defaults returns the configuration used before any option is applied.
func Defaults() Options {
	return Options{
		RecvTimeout: -1,
		SendTimeout: -1,
		Interval:    -1,
		DumpFormat:  DumpYAML,
	}
}

// SocketTypes names the socket types for display.
var SocketTypes = []ncopt.EnumItem{
	{Name: "PAIR", Value: SocketPair},
	{Name: "PUB", Value: SocketPub},
	{Name: "SUB", Value: SocketSub},
	{Name: "REQ", Value: SocketReq},
	{Name: "REP", Value: SocketRep},
	{Name: "PUSH", Value: SocketPush},
	{Name: "PULL", Value: SocketPull},
	{Name: "SURVEYOR", Value: SocketSurveyor},
	{Name: "RESPONDENT", Value: SocketRespondent},
	{Name: "BUS", Value: SocketBus},
}

var EchoFormats = []ncopt.EnumItem{
	{Name: "no", Value: FormatNone},
	{Name: "raw", Value: FormatRaw},
	{Name: "ascii", Value: FormatASCII},
	{Name: "quoted", Value: FormatQuoted},
	{Name: "msgpack", Value: FormatMsgpack},
}

var DumpFormats = []ncopt.EnumItem{
	{Name: "yaml", Value: DumpYAML},
	{Name: "toml", Value: DumpTOML},
	{Name: "env", Value: DumpEnv},
	{Name: "none", Value: DumpNone},
}

func socketType(o *Options) *int { return &o.SocketType }
func echoFormat(o *Options) *int { return &o.EchoFormat }
func data(o *Options) *[]byte    { return &o.Data }
func verbosity(o *Options) *int  { return &o.Verbose }

func socketOption(long, arg0 string, value int, provides ncopt.Mask, desc string) ncopt.Option[Options] {
	return ncopt.Option[Options]{
		Long:        long,
		Arg0:        arg0,
		Kind:        ncopt.SetEnum(socketType, value),
		Provides:    MaskSocketType | provides,
		Conflicts:   MaskSocketType,
		Group:       "Socket Types",
		Description: desc,
	}
}

func formatOption(long string, short rune, value int, desc string) ncopt.Option[Options] {
	return ncopt.Option[Options]{
		Long:        long,
		Short:       short,
		Kind:        ncopt.SetEnum(echoFormat, value),
		Provides:    MaskFormat,
		Conflicts:   MaskFormat,
		Requires:    MaskReadable,
		Group:       "Output Options",
		Description: desc,
	}
}

// Table is the nanocat option table.
var Table = ncopt.Table[Options]{
	// Generic
	{Long: "verbose", Short: 'v', Kind: ncopt.Increment(verbosity),
		Group: "Generic", Description: "Increase verbosity of the nanocat"},
	{Long: "silent", Short: 'q', Kind: ncopt.Decrement(verbosity),
		Group: "Generic", Description: "Decrease verbosity of the nanocat"},
	{Long: "help", Short: 'h', Kind: ncopt.Help[Options](),
		Group: "Generic", Description: "This help text"},

	// Socket types
	socketOption("push", "nn_push", SocketPush, MaskWritable, "Use NN_PUSH socket type"),
	socketOption("pull", "nn_pull", SocketPull, MaskReadable, "Use NN_PULL socket type"),
	socketOption("pub", "nn_pub", SocketPub, MaskWritable, "Use NN_PUB socket type"),
	socketOption("sub", "nn_sub", SocketSub, MaskReadable|MaskSocketSub, "Use NN_SUB socket type"),
	socketOption("req", "nn_req", SocketReq, MaskReadable|MaskWritable, "Use NN_REQ socket type"),
	socketOption("rep", "nn_rep", SocketRep, MaskReadable|MaskWritable, "Use NN_REP socket type"),
	socketOption("surveyor", "nn_surveyor", SocketSurveyor, MaskReadable|MaskWritable, "Use NN_SURVEYOR socket type"),
	socketOption("respondent", "nn_respondent", SocketRespondent, MaskReadable|MaskWritable, "Use NN_RESPONDENT socket type"),
	socketOption("bus", "nn_bus", SocketBus, MaskReadable|MaskWritable, "Use NN_BUS socket type"),
	socketOption("pair", "nn_pair", SocketPair, MaskReadable|MaskWritable, "Use NN_PAIR socket type"),

	// Socket options
	{Long: "bind", Short: 'b', Metavar: "ADDR", Kind: ncopt.StringList(func(o *Options) *[]string { return &o.Bind }),
		Provides: MaskEndpoint, Group: "Socket Options", Description: "Bind socket to the address ADDR"},
	{Long: "connect", Short: 'c', Metavar: "ADDR", Kind: ncopt.StringList(func(o *Options) *[]string { return &o.Connect }),
		Provides: MaskEndpoint, Group: "Socket Options", Description: "Connect socket to the address ADDR"},
	{Long: "recv-timeout", Metavar: "SEC", Kind: ncopt.Float(func(o *Options) *float64 { return &o.RecvTimeout }),
		Requires: MaskReadable, Group: "Socket Options",
		Description: "Set timeout for receiving a message"},
	{Long: "send-timeout", Metavar: "SEC", Kind: ncopt.Float(func(o *Options) *float64 { return &o.SendTimeout }),
		Requires: MaskWritable, Group: "Socket Options",
		Description: "Set timeout for sending a message"},
	{Long: "socket-name", Metavar: "NAME", Kind: ncopt.String(func(o *Options) *string { return &o.SocketName }),
		Group: "Socket Options", Description: "Name of the socket for statistics"},

	// SUB socket options
	{Long: "subscribe", Metavar: "PREFIX", Kind: ncopt.StringList(func(o *Options) *[]string { return &o.Subscribe }),
		Requires: MaskSocketSub, Group: "SUB Socket Options",
		Description: "Subscribe to the prefix PREFIX. Note: socket will be subscribed to everything (empty prefix) if no prefixes are specified on the command-line."},

	// Input
	{Long: "interval", Short: 'i', Metavar: "SEC", Kind: ncopt.Float(func(o *Options) *float64 { return &o.Interval }),
		Requires: MaskWritable, Group: "Input Options",
		Description: "Send message (or request) every SEC seconds"},
	{Long: "data", Short: 'D', Metavar: "DATA", Kind: ncopt.Blob(data),
		Provides: MaskData, Conflicts: MaskData, Requires: MaskWritable, Group: "Input Options",
		Description: "Send DATA to the socket and quit for PUB, PUSH, PAIR, BUS socket. Use DATA to reply for REP or RESPONDENT socket. Send DATA as request for REQ or SURVEYOR socket."},
	{Long: "file", Short: 'F', Metavar: "PATH", Kind: ncopt.ReadFile(data),
		Provides: MaskData, Conflicts: MaskData, Requires: MaskWritable, Group: "Input Options",
		Description: "Same as --data but get data from file PATH (use - for standard input)"},

	// Output
	{Long: "format", Metavar: "FORMAT", Kind: ncopt.Enum(echoFormat, EchoFormats),
		Provides: MaskFormat, Conflicts: MaskFormat, Requires: MaskReadable, Group: "Output Options",
		Description: "Use echo format FORMAT (same as the options below)"},
	formatOption("raw", 0, FormatRaw, "Dump message as is (Note: no delimiters are printed)"),
	formatOption("ascii", 'A', FormatASCII, "Print ASCII part of message delimited by newline. All non-ascii characters replaced by dot."),
	formatOption("quoted", 'Q', FormatQuoted, "Print each message on separate line in double quotes with C-like character escaping"),
	formatOption("msgpack", 0, FormatMsgpack, "Print each message as msgpacked string (raw type). This is useful for programmatic parsing."),

	// Debug
	{Long: "dump", Metavar: "FORMAT", Kind: ncopt.Enum(func(o *Options) *int { return &o.DumpFormat }, DumpFormats),
		Group: "Debug Options", Description: "Print the resolved configuration as FORMAT"},

	// Sentinel
	{},
}

// NewParser returns a parser for Table that requires a socket type and at
// least one endpoint on every command line.
func NewParser(opts ...ncopt.ParserOption) (*ncopt.Parser[Options], error) {
	opts = append([]ncopt.ParserOption{ncopt.WithRequires(Requires)}, opts...)
	return ncopt.NewParser(Table, opts...)
}
