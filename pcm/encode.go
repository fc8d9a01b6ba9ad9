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

package pcm

import (
	"fmt"
	"math"
)

// the maximum sample values for each of the signed formats. the codomain of
// the encoder is symmetric around zero, so magnitude -1.0 encodes to the
// negation of these values
const (
	maxS16 = 1<<15 - 1
	maxS24 = 1<<23 - 1
	maxS32 = 1<<31 - 1
	maxU8  = 1<<8 - 1
)

// Encode writes a single sample with the given magnitude into buf at offset,
// using the byte layout of the sample format. The number of bytes written is
// returned.
//
// Magnitude is expected to be in the range [-1.0, 1.0]. Values slightly
// outside the range, caused by floating point error upstream, are not
// clipped.
//
// Samples are always written little-endian, regardless of host byte order.
// Passing an undefined sample format is a configuration fault and causes a
// panic.
func Encode(buf []byte, offset int, magnitude float64, format SampleFormat) int {
	switch format {
	case U8:
		// unsigned samples are remapped to [0.0, 1.0] before scaling
		v := uint8(math.Round((magnitude + 1.0) / 2.0 * maxU8))
		buf[offset] = v
		return 1

	case S16:
		v := int16(math.Round(magnitude * maxS16))
		buf[offset] = byte(v)
		buf[offset+1] = byte(v >> 8)
		return 2

	case S24:
		// there is no native 3-byte integer. scale into a 32-bit intermediate
		// and emit the low 3 bytes explicitly
		v := int32(math.Round(magnitude * maxS24))
		buf[offset] = byte(v & 0xff)
		buf[offset+1] = byte((v >> 8) & 0xff)
		buf[offset+2] = byte((v >> 16) & 0xff)
		return 3

	case S32:
		v := int32(math.Round(magnitude * maxS32))
		buf[offset] = byte(v)
		buf[offset+1] = byte(v >> 8)
		buf[offset+2] = byte(v >> 16)
		buf[offset+3] = byte(v >> 24)
		return 4
	}

	panic(fmt.Sprintf("pcm: undefined sample format (%d)", int(format)))
}

// DecodeInt reads a single sample from buf at offset and returns its raw
// integer value. U8 samples are returned as stored (0 to 255); the signed
// formats are sign-extended.
func DecodeInt(buf []byte, offset int, format SampleFormat) int32 {
	switch format {
	case U8:
		return int32(buf[offset])

	case S16:
		return int32(int16(uint16(buf[offset]) | uint16(buf[offset+1])<<8))

	case S24:
		v := int32(buf[offset]) | int32(buf[offset+1])<<8 | int32(buf[offset+2])<<16
		// sign-extend from bit 23
		if v&0x800000 != 0 {
			v |= ^int32(0xffffff)
		}
		return v

	case S32:
		return int32(uint32(buf[offset]) | uint32(buf[offset+1])<<8 |
			uint32(buf[offset+2])<<16 | uint32(buf[offset+3])<<24)
	}

	panic(fmt.Sprintf("pcm: undefined sample format (%d)", int(format)))
}

// Decode reads a single sample from buf at offset and returns its magnitude
// in the range [-1.0, 1.0]. It is the inverse of Encode.
func Decode(buf []byte, offset int, format SampleFormat) float64 {
	v := float64(DecodeInt(buf, offset, format))

	switch format {
	case U8:
		return v/maxU8*2.0 - 1.0
	case S16:
		return v / maxS16
	case S24:
		return v / maxS24
	case S32:
		return v / maxS32
	}

	panic(fmt.Sprintf("pcm: undefined sample format (%d)", int(format)))
}
