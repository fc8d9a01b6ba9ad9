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

package tones

import "github.com/rhesby/tonegen/pcm"

// FrameGenerator implementations produce interleaved multi-channel PCM
// frames into a caller-owned buffer.
//
// A FrameGenerator is stateful and is owned by a single playback session for
// its duration. It is not safe for concurrent use; the playback packages only
// ever call it from the thread pumping the backend's event loop.
type FrameGenerator interface {
	// HasMoreFrames reports whether the generator has more frames to produce.
	HasMoreFrames() bool

	// GetFrames fills buf with up to len(buf) bytes of interleaved frames in
	// the given format, returning the number of bytes written. Only whole
	// frames are ever written: a partial trailing frame that would not fit is
	// truncated, and a buffer smaller than one frame produces nothing.
	//
	// Channels absent from the active set are written as silence.
	GetFrames(format pcm.SampleFormat, channels int, active ChannelSet, buf []byte) int
}

// ChannelSet records which channel indices carry audible signal. Channels
// not in the set are written as silence.
//
// Indices are expected to be less than the configured channel count. This is
// a caller contract and is not checked: a stray index simply never matches.
type ChannelSet map[int]bool

// Channels builds a ChannelSet from a list of channel indices.
func Channels(indices ...int) ChannelSet {
	set := make(ChannelSet, len(indices))
	for _, c := range indices {
		set[c] = true
	}
	return set
}

// AllChannels builds a ChannelSet naming every channel up to the given count.
func AllChannels(count int) ChannelSet {
	set := make(ChannelSet, count)
	for c := 0; c < count; c++ {
		set[c] = true
	}
	return set
}
