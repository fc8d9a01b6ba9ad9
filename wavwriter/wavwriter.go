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

// Package wavwriter renders a frame generator to a WAV file on disk. This is
// the offline counterpart to the playback package: the same frames that would
// be handed to a sound server are written to a file instead, which is useful
// for inspecting the synthesis output and for pinning it in regression tests.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rhesby/tonegen/curated"
	"github.com/rhesby/tonegen/digest"
	"github.com/rhesby/tonegen/logger"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/tones"
)

// number of frames rendered per encoder write.
const renderChunk = 4096

// Render drains the generator into a WAV file. The file carries the same
// sample format, channel count and channel activity that a live playback
// would, inactive channels included.
//
// The returned string is the digest of the raw PCM byte stream, before WAV
// framing. It can be compared against the digest of a live stream.
func Render(filename string, g tones.FrameGenerator, format pcm.SampleFormat,
	sampleRate int, channels int, active tones.ChannelSet) (_ string, rerr error) {

	f, err := os.Create(filename)
	if err != nil {
		return "", curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	bitDepth := format.ByteWidth() * 8

	// audio format of 1 is PCM
	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)

	dig := digest.NewPCM()

	width := format.ByteWidth()
	buf := make([]byte, renderChunk*pcm.FrameBytes(format, channels))

	ibuf := audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	for g.HasMoreFrames() {
		n := g.GetFrames(format, channels, active, buf)
		if n == 0 {
			break
		}

		dig.Write(buf[:n])

		ibuf.Data = ibuf.Data[:0]
		for i := 0; i < n; i += width {
			ibuf.Data = append(ibuf.Data, int(pcm.DecodeInt(buf, i, format)))
		}

		err = enc.Write(&ibuf)
		if err != nil {
			return "", curated.Errorf("wavwriter: %v", err)
		}
	}

	// the encoder seeks back to fix up the header so it must be closed before
	// the file is
	err = enc.Close()
	if err != nil {
		return "", curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "audio written to %s", filename)

	return dig.Sum(), nil
}
