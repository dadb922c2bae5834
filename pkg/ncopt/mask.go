// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"math/bits"
	"strconv"
	"strings"
)

// Mask is a set of application-defined feature bits. Applications usually
// name their bits with an iota block:
//
//	const (
//	    MaskSocketType ncopt.Mask = 1 << iota
//	    MaskReadable
//	    MaskWritable
//	)
type Mask uint64

// Has reports whether every bit of want is set in m.
func (m Mask) Has(want Mask) bool {
	return m&want == want
}

// Intersects reports whether m and o share at least one bit.
func (m Mask) Intersects(o Mask) bool {
	return m&o != 0
}

// Missing returns the bits of want that are not set in m.
func (m Mask) Missing(want Mask) Mask {
	return want &^ m
}

func (m Mask) String() string {
	if m == 0 {
		return "0"
	}
	var parts []string
	for v := uint64(m); v != 0; v &= v - 1 {
		parts = append(parts, "bit"+strconv.Itoa(bits.TrailingZeros64(v)))
	}
	return strings.Join(parts, "|")
}
