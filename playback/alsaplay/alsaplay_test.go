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

package alsaplay_test

import (
	"testing"

	"github.com/rhesby/tonegen/curated"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/playback"
	"github.com/rhesby/tonegen/playback/alsaplay"
	"github.com/rhesby/tonegen/test"
	"github.com/rhesby/tonegen/tones"
)

// playback against a real device requires hardware so only the lifecycle
// guards are tested here.
func TestLifecycleGuards(t *testing.T) {
	cfg := playback.Config{
		SampleRate: 44100,
		Format:     pcm.S16,
		Channels:   2,
		Active:     tones.AllChannels(2),
		LatencyMS:  50,
	}

	c := alsaplay.NewClient(cfg)
	test.ExpectEquality(t, c.State(), playback.Created)
	test.ExpectEquality(t, c.LastError() == nil, true)

	// playback before Init() is refused
	g := tones.NewSingleToneGenerator(44100, 0.05)
	g.Reset(440.0)
	err := c.PlayTones(g)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, playback.NotReady), true)

	// closing a client that never opened a device is benign
	test.ExpectSuccess(t, c.Close())
}
