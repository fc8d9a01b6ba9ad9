// This file is part of Tonegen.
//
// Tonegen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tonegen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tonegen.  If not, see <https://www.gnu.org/licenses/>.

package digest_test

import (
	"testing"

	"github.com/rhesby/tonegen/digest"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/test"
	"github.com/rhesby/tonegen/tones"
)

// the digest of a byte stream does not depend on how the stream is chunked
func TestChunkingIndependence(t *testing.T) {
	stream := make([]byte, 10000)
	for i := range stream {
		stream[i] = byte(i)
	}

	a := digest.NewPCM()
	a.Write(stream)

	b := digest.NewPCM()
	for i := 0; i < len(stream); i += 77 {
		end := i + 77
		if end > len(stream) {
			end = len(stream)
		}
		b.Write(stream[i:end])
	}

	test.ExpectEquality(t, a.Sum(), b.Sum())
}

func TestStreamsDiffer(t *testing.T) {
	a := digest.NewPCM()
	a.Write([]byte{0x00, 0x01, 0x02})

	b := digest.NewPCM()
	b.Write([]byte{0x00, 0x01, 0x03})

	test.ExpectEquality(t, a.Sum() == b.Sum(), false)
}

// two identically constructed generators digest to the same value. this is
// the determinism property the hardware harnesses rely on
func TestGeneratorDigest(t *testing.T) {
	sum := func(bufSize int) string {
		g := tones.NewASharpMinorGenerator(44100, 0.05)
		dig := digest.NewPCM()
		buf := make([]byte, bufSize)
		for g.HasMoreFrames() {
			n := g.GetFrames(pcm.S16, 2, tones.AllChannels(2), buf)
			dig.Write(buf[:n])
		}
		return dig.Sum()
	}

	// the digest is also independent of the buffer size the backend happens
	// to request
	test.ExpectEquality(t, sum(1024), sum(892))
}
