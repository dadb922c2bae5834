// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"errors"
	"io"
)

const (
	readAllInitialSize = 4 << 10
	readAllMinHeadroom = 1 << 10
	// Below this size the buffer doubles; above it grows linearly by the
	// same amount so very large inputs are over-allocated by at most 1MiB.
	readAllDoublingLimit = 1 << 20
)

// ReadAll reads r until EOF and returns the data in a slice whose length
// and capacity equal the number of bytes read.
func ReadAll(r io.Reader) ([]byte, error) {
	buf := make([]byte, readAllInitialSize)
	n := 0
	for {
		if len(buf)-n < readAllMinHeadroom {
			grown := make([]byte, nextReadAllSize(len(buf)))
			copy(grown, buf[:n])
			buf = grown
		}
		m, err := r.Read(buf[n:])
		n += m
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	out := make([]byte, n)
	copy(out, buf[:n])
	return out, nil
}

func nextReadAllSize(size int) int {
	if size < readAllDoublingLimit {
		return size * 2
	}
	return size + readAllDoublingLimit
}
