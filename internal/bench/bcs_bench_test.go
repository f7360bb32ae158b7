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

package bench

import (
	"testing"

	"github.com/blinklabs-io/gomove/bcs"
)

func BenchmarkEncoderWriteBytes(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"small_16", 16},
		{"medium_1k", 1024},
		{"large_64k", 65536},
	}
	for _, s := range sizes {
		data := make([]byte, s.size)
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(s.size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e := bcs.NewEncoder()
				if err := e.WriteBytes(data); err != nil {
					b.Fatal(err)
				}
				_ = e.Bytes()
			}
		})
	}
}

func BenchmarkUleb128RoundTrip(b *testing.B) {
	// Values straddling each ULEB128 group boundary
	values := []uint64{0, 127, 128, 16383, 16384, 2097151, 4294967295}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e := bcs.NewEncoder()
		for _, v := range values {
			if err := e.WriteUleb128(v); err != nil {
				b.Fatal(err)
			}
		}
		d := bcs.NewDecoder(e.Bytes())
		for range values {
			if _, err := d.ReadUleb128(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkDecoderReadString(b *testing.B) {
	e := bcs.NewEncoder()
	if err := e.WriteString("the quick brown fox jumps over the lazy dog"); err != nil {
		b.Fatal(err)
	}
	data := e.Bytes()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := bcs.NewDecoder(data)
		if _, err := d.ReadString(); err != nil {
			b.Fatal(err)
		}
	}
}
