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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/rhesby/tonegen/digest"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/test"
	"github.com/rhesby/tonegen/tones"
	"github.com/rhesby/tonegen/wavwriter"
)

func TestRender(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tone.wav")

	g := tones.NewSingleToneGenerator(44100, 0.1)
	g.Reset(440.0)

	sum, err := wavwriter.Render(fn, g, pcm.S16, 44100, 2, tones.AllChannels(2))
	test.DemandSuccess(t, err)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, int(dec.SampleRate), 44100)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	// round(0.1 * 44100) frames of two samples each
	test.ExpectEquality(t, len(buf.Data), 4410*2)

	// the digest matches a direct drain of an identical generator
	h := tones.NewSingleToneGenerator(44100, 0.1)
	h.Reset(440.0)
	dig := digest.NewPCM()
	scratch := make([]byte, 1024)
	for h.HasMoreFrames() {
		n := h.GetFrames(pcm.S16, 2, tones.AllChannels(2), scratch)
		dig.Write(scratch[:n])
	}
	test.ExpectEquality(t, sum, dig.Sum())
}

func TestRenderBadPath(t *testing.T) {
	g := tones.NewSingleToneGenerator(44100, 0.05)
	g.Reset(440.0)

	_, err := wavwriter.Render(filepath.Join(t.TempDir(), "no", "such", "dir", "tone.wav"),
		g, pcm.S16, 44100, 2, tones.AllChannels(2))
	test.ExpectFailure(t, err)
}
