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

package pulseplay

import (
	"testing"

	"github.com/jfreymuth/pulse"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/playback"
	"github.com/rhesby/tonegen/test"
	"github.com/rhesby/tonegen/tones"
)

// the stream callback must have the shape the pulse library expects
var _ pulse.Float32Reader = (&Client{}).read

func TestReadCallback(t *testing.T) {
	cfg := playback.Config{
		SampleRate: 44100,
		Format:     pcm.S16,
		Channels:   1,
		Active:     tones.AllChannels(1),
		LatencyMS:  50,
	}

	c := NewClient(cfg)

	// a 0.01s tone at 44100Hz is 441 frames
	g := tones.NewSingleToneGenerator(44100, 0.01)
	g.Reset(440.0)
	c.gen = g

	out := make([]float32, 256)

	n, err := c.read(out)
	test.ExpectEquality(t, n, 256)
	test.ExpectSuccess(t, err)

	// the remaining frames arrive as a short read. the count tells the
	// library how much of the buffer is valid
	n, err = c.read(out)
	test.ExpectEquality(t, n, 185)
	test.ExpectSuccess(t, err)

	// an exhausted generator ends the stream
	n, err = c.read(out)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, err == pulse.EndOfData, true)
}
