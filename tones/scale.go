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

// the A-sharp harmonic minor scale, ascending and then descending.
var aSharpMinorScale = [16]float64{
	466.16, 523.25, 554.37, 622.25, 698.46, 739.99, 880.00, 932.33,
	932.33, 880.00, 739.99, 698.46, 622.25, 554.37, 523.25, 466.16,
}

// ASharpMinorGenerator sequences sixteen fixed notes through repeated resets
// of a single inner tone generator. Because the inner generator's oscillator
// keeps its phase across resets, the note transitions are click-free.
type ASharpMinorGenerator struct {
	tone *SingleToneGenerator

	// index into aSharpMinorScale of the note currently being generated.
	// when the final note is exhausted the index comes to rest one past the
	// end of the table; the table is never read at that position
	noteIndex int
}

// NewASharpMinorGenerator is the preferred method of initialisation for the
// ASharpMinorGenerator type. Each of the sixteen notes plays for
// noteLengthSec seconds.
func NewASharpMinorGenerator(sampleRate float64, noteLengthSec float64) *ASharpMinorGenerator {
	g := &ASharpMinorGenerator{
		tone: NewSingleToneGenerator(sampleRate, noteLengthSec),
	}
	g.Reset()
	return g
}

// SetVolume changes the volume of the inner tone generator.
func (g *ASharpMinorGenerator) SetVolume(volume float64) {
	g.tone.Volume = volume
}

// Reset rewinds the sequence to the first note of the scale.
func (g *ASharpMinorGenerator) Reset() {
	g.noteIndex = 0
	g.tone.Reset(aSharpMinorScale[g.noteIndex])
}

// HasMoreFrames implements the FrameGenerator interface.
func (g *ASharpMinorGenerator) HasMoreFrames() bool {
	return g.noteIndex < len(aSharpMinorScale) || g.tone.HasMoreFrames()
}

// GetFrames implements the FrameGenerator interface.
func (g *ASharpMinorGenerator) GetFrames(format pcm.SampleFormat, channels int, active ChannelSet, buf []byte) int {
	if !g.HasMoreFrames() {
		return 0
	}

	// the current note is done; move on to the next. the index advance is
	// unconditional but the table read is guarded: when the final note
	// finishes, the index steps past the end of the table and the delegated
	// GetFrames() below reports zero bytes
	if !g.tone.HasMoreFrames() {
		g.noteIndex++
		if g.noteIndex < len(aSharpMinorScale) {
			g.tone.Reset(aSharpMinorScale[g.noteIndex])
		}
	}

	return g.tone.GetFrames(format, channels, active, buf)
}
