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

	"github.com/rhesby/tonegen/curated"
)

// SampleFormat identifies one of the linear PCM encodings supported by the
// sample encoder.
type SampleFormat int

// List of valid SampleFormat values.
const (
	U8 SampleFormat = iota
	S16
	S24
	S32
)

// sentinel error returned by ParseFormat.
const UnsupportedFormat = "pcm: unsupported sample format (%s)"

// ByteWidth returns the number of bytes used to store a single sample of the
// format. Note that S24 samples are packed into three bytes, not four.
func (f SampleFormat) ByteWidth() int {
	switch f {
	case U8:
		return 1
	case S16:
		return 2
	case S24:
		return 3
	case S32:
		return 4
	}

	// an undefined format is a configuration fault and never recoverable
	panic(fmt.Sprintf("pcm: undefined sample format (%d)", int(f)))
}

func (f SampleFormat) String() string {
	switch f {
	case U8:
		return "u8"
	case S16:
		return "s16"
	case S24:
		return "s24"
	case S32:
		return "s32"
	}
	panic(fmt.Sprintf("pcm: undefined sample format (%d)", int(f)))
}

// ParseFormat converts a format label, as used on the command line, to a
// SampleFormat value.
func ParseFormat(s string) (SampleFormat, error) {
	switch s {
	case "u8":
		return U8, nil
	case "s16":
		return S16, nil
	case "s24":
		return S24, nil
	case "s32":
		return S32, nil
	}
	return U8, curated.Errorf(UnsupportedFormat, s)
}

// FrameBytes returns the byte size of one frame: one sample per channel,
// interleaved in channel order.
func FrameBytes(f SampleFormat, channels int) int {
	return f.ByteWidth() * channels
}
