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

import (
	"math"

	"github.com/rhesby/tonegen/pcm"
)

// length of the fade envelope at the start and end of a tone.
const fadeLength = 0.005

// tones at or below this length are played without an envelope. a fade would
// consume most of the tone.
const shortToneLimit = 0.02

// SingleToneGenerator produces one bounded sine tone with a half-sine fade
// envelope at each end.
type SingleToneGenerator struct {
	osc Oscillator

	sampleRate float64
	frequency  float64

	framesGenerated int
	framesWanted    int
	fadeFrames      int

	// Volume is applied to every generated magnitude. It defaults to 1.0 and
	// may be changed at any time before or between GetFrames() calls.
	Volume float64
}

// NewSingleToneGenerator is the preferred method of initialisation for the
// SingleToneGenerator type. The tone frequency is set with Reset().
func NewSingleToneGenerator(sampleRate float64, lengthSec float64) *SingleToneGenerator {
	g := &SingleToneGenerator{
		sampleRate:   sampleRate,
		framesWanted: int(math.Round(lengthSec * sampleRate)),
		Volume:       1.0,
	}

	if lengthSec > shortToneLimit {
		// truncation, not rounding. 0.005 is not exactly representable in
		// float64 and rounding the product stretches the envelope by a frame
		// at common sample rates
		g.fadeFrames = int(fadeLength * sampleRate)
	}

	return g
}

// Reset prepares the generator to produce a new tone at the given frequency.
//
// The oscillator phase is deliberately not reset. See the commentary on the
// Oscillator type.
func (g *SingleToneGenerator) Reset(frequency float64) {
	g.frequency = frequency
	g.framesGenerated = 0
}

// HasMoreFrames implements the FrameGenerator interface.
func (g *SingleToneGenerator) HasMoreFrames() bool {
	return g.framesGenerated < g.framesWanted
}

// FramesWanted returns the total number of frames the tone will produce.
func (g *SingleToneGenerator) FramesWanted() int {
	return g.framesWanted
}

// FramesGenerated returns the number of frames produced since the last
// Reset().
func (g *SingleToneGenerator) FramesGenerated() int {
	return g.framesGenerated
}

// FadeFrames returns the length of the fade envelope in frames. Zero for
// very short tones.
func (g *SingleToneGenerator) FadeFrames() int {
	return g.fadeFrames
}

// fadeMagnitude returns the envelope value for the frame about to be
// generated. a half-sine ease: ramp up over the first fadeFrames frames,
// ramp down over the last fadeFrames frames, unity in between.
func (g *SingleToneGenerator) fadeMagnitude() float64 {
	if g.fadeFrames == 0 {
		return 1.0
	}

	if g.framesGenerated < g.fadeFrames {
		return math.Sin(math.Pi / 2.0 * float64(g.framesGenerated) / float64(g.fadeFrames))
	}

	if left := g.framesWanted - g.framesGenerated; left < g.fadeFrames {
		return math.Sin(math.Pi / 2.0 * float64(left) / float64(g.fadeFrames))
	}

	return 1.0
}

// GetFrames implements the FrameGenerator interface.
func (g *SingleToneGenerator) GetFrames(format pcm.SampleFormat, channels int, active ChannelSet, buf []byte) int {
	frameBytes := pcm.FrameBytes(format, channels)

	// only whole frames are ever written
	capacity := len(buf) / frameBytes

	offset := 0
	for i := 0; i < capacity && g.HasMoreFrames(); i++ {
		m := g.Volume * g.fadeMagnitude() * g.osc.Next(g.sampleRate, g.frequency)

		for c := 0; c < channels; c++ {
			if active[c] {
				offset += pcm.Encode(buf, offset, m, format)
			} else {
				offset += pcm.Encode(buf, offset, 0.0, format)
			}
		}

		g.framesGenerated++
	}

	return offset
}
