// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command nanocat parses a nanocat command line and prints the resolved
// configuration.
package main

import (
	"log"
	"os"

	"github.com/yeetrun/nanocat/pkg/nanocat"
	"github.com/yeetrun/nanocat/pkg/ncopt"
	"tailscale.com/util/must"
)

// debugEnv enables a trace line per parsed option when set.
const debugEnv = "NANOCAT_DEBUG"

func main() {
	log.SetFlags(0)
	log.SetPrefix("nanocat: ")

	var popts []ncopt.ParserOption
	if os.Getenv(debugEnv) != "" {
		popts = append(popts, ncopt.WithLogf(log.Printf))
	}
	p := must.Get(nanocat.NewParser(popts...))

	opts := nanocat.Defaults()
	p.ParseOrExit(&opts, os.Args)
	if err := opts.Dump(os.Stdout); err != nil {
		log.Printf("%v", err)
		os.Exit(ncopt.ExitIO)
	}
}
