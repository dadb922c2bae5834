// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ncopt

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func TestNextReadAllSize(t *testing.T) {
	var got []int
	size := readAllInitialSize
	for size < 4<<20 {
		size = nextReadAllSize(size)
		got = append(got, size)
	}
	want := []int{
		8 << 10, 16 << 10, 32 << 10, 64 << 10, 128 << 10, 256 << 10, 512 << 10,
		1 << 20, 2 << 20, 3 << 20, 4 << 20,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("growth sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAll(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"small", 10},
		{"exactly initial", readAllInitialSize},
		{"one growth", readAllInitialSize + 1},
		{"doubling limit", readAllDoublingLimit},
		{"linear growth", 2*readAllDoublingLimit + 12345},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make([]byte, tt.size)
			for i := range want {
				want[i] = byte(i * 7)
			}
			got, err := ReadAll(bytes.NewReader(want))
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Fatalf("ReadAll() returned %d bytes, want %d identical bytes", len(got), len(want))
			}
			if cap(got) != len(got) {
				t.Errorf("cap = %d, want %d", cap(got), len(got))
			}
		})
	}
}

func TestReadAllShortReads(t *testing.T) {
	want := bytes.Repeat([]byte("x"), 3000)
	got, err := ReadAll(iotest.HalfReader(bytes.NewReader(want)))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("ReadAll() returned %d bytes, want %d", len(got), len(want))
	}
}

func TestReadAllError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader([]byte("partial")), iotest.ErrReader(boom))
	if _, err := ReadAll(r); !errors.Is(err, boom) {
		t.Errorf("ReadAll() error = %v, want %v", err, boom)
	}
}
