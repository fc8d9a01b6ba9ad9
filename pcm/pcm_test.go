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

package pcm_test

import (
	"testing"

	"github.com/rhesby/tonegen/curated"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/test"
)

func TestByteWidth(t *testing.T) {
	test.ExpectEquality(t, pcm.U8.ByteWidth(), 1)
	test.ExpectEquality(t, pcm.S16.ByteWidth(), 2)
	test.ExpectEquality(t, pcm.S24.ByteWidth(), 3)
	test.ExpectEquality(t, pcm.S32.ByteWidth(), 4)

	test.ExpectEquality(t, pcm.FrameBytes(pcm.S16, 2), 4)
	test.ExpectEquality(t, pcm.FrameBytes(pcm.S24, 2), 6)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"u8", "s16", "s24", "s32"} {
		f, err := pcm.ParseFormat(s)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, f.String(), s)
	}

	_, err := pcm.ParseFormat("f32")
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, pcm.UnsupportedFormat), true)
}

// encoding of the zero, maximum and minimum magnitudes for every format
func TestEncodeExtremes(t *testing.T) {
	buf := make([]byte, 4)

	// u8: zero magnitude encodes to the unsigned midpoint
	test.ExpectEquality(t, pcm.Encode(buf, 0, 0.0, pcm.U8), 1)
	test.ExpectEquality(t, buf[0], 0x80)
	pcm.Encode(buf, 0, 1.0, pcm.U8)
	test.ExpectEquality(t, buf[0], 0xff)
	pcm.Encode(buf, 0, -1.0, pcm.U8)
	test.ExpectEquality(t, buf[0], 0x00)

	// s16
	test.ExpectEquality(t, pcm.Encode(buf, 0, 0.0, pcm.S16), 2)
	test.ExpectEquality(t, pcm.DecodeInt(buf, 0, pcm.S16), 0)
	pcm.Encode(buf, 0, 1.0, pcm.S16)
	test.ExpectEquality(t, pcm.DecodeInt(buf, 0, pcm.S16), 32767)
	pcm.Encode(buf, 0, -1.0, pcm.S16)
	test.ExpectEquality(t, pcm.DecodeInt(buf, 0, pcm.S16), -32767)

	// s24
	test.ExpectEquality(t, pcm.Encode(buf, 0, 0.0, pcm.S24), 3)
	test.ExpectEquality(t, pcm.DecodeInt(buf, 0, pcm.S24), 0)
	pcm.Encode(buf, 0, 1.0, pcm.S24)
	test.ExpectEquality(t, pcm.DecodeInt(buf, 0, pcm.S24), 8388607)
	pcm.Encode(buf, 0, -1.0, pcm.S24)
	test.ExpectEquality(t, pcm.DecodeInt(buf, 0, pcm.S24), -8388607)

	// s32
	test.ExpectEquality(t, pcm.Encode(buf, 0, 0.0, pcm.S32), 4)
	test.ExpectEquality(t, pcm.DecodeInt(buf, 0, pcm.S32), 0)
	pcm.Encode(buf, 0, 1.0, pcm.S32)
	test.ExpectEquality(t, pcm.DecodeInt(buf, 0, pcm.S32), 2147483647)
	pcm.Encode(buf, 0, -1.0, pcm.S32)
	test.ExpectEquality(t, pcm.DecodeInt(buf, 0, pcm.S32), -2147483647)
}

// samples are always packed little-endian, whatever the host byte order
func TestLittleEndianPacking(t *testing.T) {
	buf := make([]byte, 4)

	pcm.Encode(buf, 0, 1.0, pcm.S16)
	test.ExpectEquality(t, buf[0], 0xff)
	test.ExpectEquality(t, buf[1], 0x7f)

	// the low 3 bytes of the 32-bit intermediate in little-endian order
	pcm.Encode(buf, 0, 1.0, pcm.S24)
	test.ExpectEquality(t, buf[0], 0xff)
	test.ExpectEquality(t, buf[1], 0xff)
	test.ExpectEquality(t, buf[2], 0x7f)

	pcm.Encode(buf, 0, -1.0, pcm.S24)
	test.ExpectEquality(t, buf[0], 0x01)
	test.ExpectEquality(t, buf[1], 0x00)
	test.ExpectEquality(t, buf[2], 0x80)

	pcm.Encode(buf, 0, 1.0, pcm.S32)
	test.ExpectEquality(t, buf[0], 0xff)
	test.ExpectEquality(t, buf[1], 0xff)
	test.ExpectEquality(t, buf[2], 0xff)
	test.ExpectEquality(t, buf[3], 0x7f)
}

func TestEncodeAtOffset(t *testing.T) {
	buf := make([]byte, 8)
	n := pcm.Encode(buf, 3, 1.0, pcm.S16)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, buf[2], 0x00)
	test.ExpectEquality(t, buf[3], 0xff)
	test.ExpectEquality(t, buf[4], 0x7f)
	test.ExpectEquality(t, buf[5], 0x00)
}

func TestDecodeInverse(t *testing.T) {
	buf := make([]byte, 4)

	for _, f := range []pcm.SampleFormat{pcm.U8, pcm.S16, pcm.S24, pcm.S32} {
		for _, m := range []float64{-1.0, -0.5, 0.0, 0.5, 1.0} {
			pcm.Encode(buf, 0, m, f)
			d := pcm.Decode(buf, 0, f)

			// quantisation error is bounded by one step of the format
			step := 2.0 / float64(int64(1)<<(f.ByteWidth()*8))
			if d-m > step || m-d > step {
				t.Errorf("decode of %s sample at magnitude %f out of tolerance (%f)", f, m, d)
			}
		}
	}
}

// an undefined format is a configuration fault. the encoder must fail-fast
// rather than write anything
func TestUndefinedFormat(t *testing.T) {
	defer func() {
		test.ExpectSuccess(t, recover() != nil)
	}()

	buf := make([]byte, 4)
	pcm.Encode(buf, 0, 0.0, pcm.SampleFormat(99))
	t.Errorf("encode of undefined format did not panic")
}
