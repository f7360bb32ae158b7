// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build go1.18

package bcs

import (
	"bytes"
	"math"
	"testing"
)

func FuzzDecode(f *testing.F) {
	// Seed corpus with valid BCS samples
	f.Add([]byte{0x00})                   // false / u8 zero / empty sequence
	f.Add([]byte{0x01})                   // true
	f.Add([]byte{0x7f})                   // single-byte ULEB128 max
	f.Add([]byte{0x80, 0x01})             // ULEB128 128
	f.Add([]byte{0xe5, 0x8e, 0x26})       // ULEB128 624485
	f.Add([]byte{0x03, 0x01, 0x02, 0x03}) // byte sequence
	f.Add([]byte{0x05, 0x68, 0x65, 0x6c, 0x6c, 0x6f}) // "hello"
	f.Add([]byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01})

	f.Fuzz(func(t *testing.T, data []byte) {
		readers := []func(d *Decoder) error{
			func(d *Decoder) error { _, err := d.ReadBool(); return err },
			func(d *Decoder) error { _, err := d.ReadU8(); return err },
			func(d *Decoder) error { _, err := d.ReadU16(); return err },
			func(d *Decoder) error { _, err := d.ReadU32(); return err },
			func(d *Decoder) error { _, err := d.ReadU64(); return err },
			func(d *Decoder) error { _, err := d.ReadU128(); return err },
			func(d *Decoder) error { _, err := d.ReadU256(); return err },
			func(d *Decoder) error { _, err := d.ReadUleb128(); return err },
			func(d *Decoder) error { _, err := d.ReadBytes(); return err },
			func(d *Decoder) error { _, err := d.ReadString(); return err },
		}
		for _, reader := range readers {
			// Should not panic - that's the test
			_ = reader(NewDecoder(data))
		}
	})
}

func FuzzUleb128RoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(127))
	f.Add(uint64(128))
	f.Add(uint64(16383))
	f.Add(uint64(16384))
	f.Add(uint64(math.MaxUint32))

	f.Fuzz(func(t *testing.T, value uint64) {
		if value > math.MaxUint32 {
			return
		}
		e := NewEncoder()
		if err := e.WriteUleb128(value); err != nil {
			t.Fatalf("failed to encode %d: %s", value, err)
		}
		d := NewDecoder(e.Bytes())
		decoded, err := d.ReadUleb128()
		if err != nil {
			t.Fatalf("failed to decode %d: %s", value, err)
		}
		if decoded != value {
			t.Fatalf("round trip mismatch: got %d, wanted %d", decoded, value)
		}
		if err := d.Done(); err != nil {
			t.Fatalf("trailing bytes after %d: %s", value, err)
		}
	})
}

func FuzzBytesRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xde, 0xad, 0xbe, 0xef})

	f.Fuzz(func(t *testing.T, data []byte) {
		e := NewEncoder()
		if err := e.WriteBytes(data); err != nil {
			t.Fatalf("failed to encode: %s", err)
		}
		d := NewDecoder(e.Bytes())
		decoded, err := d.ReadBytes()
		if err != nil {
			t.Fatalf("failed to decode: %s", err)
		}
		if !bytes.Equal(decoded, data) {
			t.Fatalf("round trip mismatch: got %x, wanted %x", decoded, data)
		}
		if err := d.Done(); err != nil {
			t.Fatalf("trailing bytes: %s", err)
		}
	})
}
