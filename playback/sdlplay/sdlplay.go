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

// Package sdlplay streams tones through the SDL audio queue. SDL routes to
// whatever audio system the host has, which makes this the most portable of
// the backends, at the cost of less control over the device.
package sdlplay

import (
	"github.com/rhesby/tonegen/curated"
	"github.com/rhesby/tonegen/logger"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/playback"
	"github.com/rhesby/tonegen/tones"
	"github.com/veandco/go-sdl2/sdl"
)

// frames per queued chunk. the precise value is not critical.
const bufferLength = 1024

// there is no SDL equivalent of the 3-byte packed s24 format, so s24 has no
// entry here.
var audioFormats = map[pcm.SampleFormat]sdl.AudioFormat{
	pcm.U8:  sdl.AUDIO_U8,
	pcm.S16: sdl.AUDIO_S16LSB,
	pcm.S32: sdl.AUDIO_S32LSB,
}

// Client plays tones through the SDL audio queue. Implements the
// playback.Client interface.
type Client struct {
	cfg       playback.Config
	state     playback.State
	lastError error

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	open bool
}

// NewClient is the preferred method of initialisation for the Client type.
// The returned client is in the Created state; call Init() to open the
// device.
func NewClient(cfg playback.Config) *Client {
	return &Client{
		cfg:   cfg,
		state: playback.Created,
	}
}

// fail moves the client into the Failed state, releasing the device. the
// client cannot be used again.
func (c *Client) fail(err error) error {
	c.lastError = err
	c.state = playback.Failed
	if c.open {
		sdl.CloseAudioDevice(c.id)
		c.open = false
	}
	logger.Log("sdl", err.Error())
	return err
}

// Init implements the playback.Client interface.
func (c *Client) Init() error {
	format, ok := audioFormats[c.cfg.Format]
	if !ok {
		return c.fail(curated.Errorf(playback.UnsupportedFormat, c.cfg.Format, "sdl"))
	}

	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return c.fail(curated.Errorf("sdl: %v", err))
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(c.cfg.SampleRate),
		Format:   format,
		Channels: uint8(c.cfg.Channels),
		Samples:  uint16(bufferLength),
	}

	var actualSpec sdl.AudioSpec

	c.id, err = sdl.OpenAudioDevice(c.cfg.Device, false, spec, &actualSpec, 0)
	if err != nil {
		return c.fail(curated.Errorf("sdl: %v", err))
	}

	c.spec = actualSpec
	c.open = true
	c.state = playback.Ready

	logger.Logf("sdl", "audio device open (freq %d)", c.spec.Freq)

	return nil
}

// PlayTones implements the playback.Client interface.
func (c *Client) PlayTones(g tones.FrameGenerator) error {
	if c.state != playback.Ready {
		return curated.Errorf(playback.NotReady, c.state)
	}

	sdl.PauseAudioDevice(c.id, false)

	buf := make([]byte, bufferLength*c.cfg.FrameBytes())

	// keep no more than two chunks queued so the loop stays responsive to
	// the device
	maxQueued := uint32(2 * len(buf))

	for g.HasMoreFrames() {
		n := g.GetFrames(c.cfg.Format, c.cfg.Channels, c.cfg.Active, buf)
		if n == 0 {
			break
		}

		for sdl.GetQueuedAudioSize(c.id) > maxQueued {
			sdl.Delay(1)
		}

		err := sdl.QueueAudio(c.id, buf[:n])
		if err != nil {
			return c.fail(curated.Errorf("sdl: %v", err))
		}
	}

	// drain. the queue size falls to zero as the device consumes it
	for sdl.GetQueuedAudioSize(c.id) > 0 {
		sdl.Delay(1)
	}

	// cover the device latency before pausing so the tail of the final tone
	// is not clipped
	sdl.Delay(uint32(c.cfg.LatencyMS))

	sdl.PauseAudioDevice(c.id, true)
	c.state = playback.Terminated

	return nil
}

// State implements the playback.Client interface.
func (c *Client) State() playback.State {
	return c.state
}

// LastError implements the playback.Client interface.
func (c *Client) LastError() error {
	return c.lastError
}

// Close implements the playback.Client interface.
func (c *Client) Close() error {
	if c.open {
		sdl.CloseAudioDevice(c.id)
		c.open = false
	}

	if c.state == playback.Ready {
		c.state = playback.Terminated
	}

	return nil
}
