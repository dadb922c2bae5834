// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nanocat

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/nanocat/pkg/env"
	"github.com/yeetrun/nanocat/pkg/ncopt"
	"gopkg.in/yaml.v3"
	"tailscale.com/util/mak"
)

// Config is the printable form of Options, with enum values replaced by
// their names.
type Config struct {
	Verbose     int      `yaml:"verbose" toml:"verbose" env:"NANOCAT_VERBOSE"`
	SocketType  string   `yaml:"socket_type" toml:"socket_type" env:"NANOCAT_SOCKET_TYPE"`
	Bind        []string `yaml:"bind,omitempty" toml:"bind,omitempty" env:"NANOCAT_BIND"`
	Connect     []string `yaml:"connect,omitempty" toml:"connect,omitempty" env:"NANOCAT_CONNECT"`
	RecvTimeout float64  `yaml:"recv_timeout" toml:"recv_timeout" env:"NANOCAT_RECV_TIMEOUT"`
	SendTimeout float64  `yaml:"send_timeout" toml:"send_timeout" env:"NANOCAT_SEND_TIMEOUT"`
	Subscribe   []string `yaml:"subscribe,omitempty" toml:"subscribe,omitempty" env:"NANOCAT_SUBSCRIBE"`
	SocketName  string   `yaml:"socket_name,omitempty" toml:"socket_name,omitempty" env:"NANOCAT_SOCKET_NAME"`
	Data        string   `yaml:"data,omitempty" toml:"data,omitempty" env:"NANOCAT_DATA"`
	Interval    float64  `yaml:"interval" toml:"interval" env:"NANOCAT_INTERVAL"`
	EchoFormat  string   `yaml:"echo_format" toml:"echo_format" env:"NANOCAT_ECHO_FORMAT"`
}

func enumName(names map[int]string, v int) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("unknown(%d)", v)
}

func nameIndex(items []ncopt.EnumItem) map[int]string {
	var m map[int]string
	for _, it := range items {
		mak.Set(&m, it.Value, it.Name)
	}
	return m
}

// Config returns the printable form of o.
func (o *Options) Config() *Config {
	return &Config{
		Verbose:     o.Verbose,
		SocketType:  enumName(nameIndex(SocketTypes), o.SocketType),
		Bind:        o.Bind,
		Connect:     o.Connect,
		RecvTimeout: o.RecvTimeout,
		SendTimeout: o.SendTimeout,
		Subscribe:   o.Subscribe,
		SocketName:  o.SocketName,
		Data:        string(o.Data),
		Interval:    o.Interval,
		EchoFormat:  enumName(nameIndex(EchoFormats), o.EchoFormat),
	}
}

// Dump writes the configuration to w in the format selected by o.DumpFormat.
func (o *Options) Dump(w io.Writer) error {
	cfg := o.Config()
	switch o.DumpFormat {
	case DumpYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case DumpTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	case DumpEnv:
		return env.Encode(w, cfg)
	case DumpNone:
		return nil
	default:
		return fmt.Errorf("unknown dump format %d", o.DumpFormat)
	}
}
