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

// Package alsaplay streams tones directly to an ALSA PCM device, bypassing
// any sound server. This is the backend to use on bare test images where
// nothing else is running and the audio path to the hardware should be as
// short as possible.
package alsaplay

import (
	"github.com/gen2brain/alsa"
	"github.com/rhesby/tonegen/curated"
	"github.com/rhesby/tonegen/logger"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/playback"
	"github.com/rhesby/tonegen/tones"
)

// device used when Config.Device is empty.
const defaultDevice = "hw:0,0"

// period geometry requested from the device. the driver is free to adjust
// these so the period size is always re-read from the opened device.
const (
	periodFrames = 1024
	periodCount  = 4
)

// the s24 entry is the 3-byte packed variant, matching the layout produced
// by the pcm package.
var pcmFormats = map[pcm.SampleFormat]alsa.PcmFormat{
	pcm.U8:  alsa.SNDRV_PCM_FORMAT_U8,
	pcm.S16: alsa.SNDRV_PCM_FORMAT_S16_LE,
	pcm.S24: alsa.SNDRV_PCM_FORMAT_S24_3LE,
	pcm.S32: alsa.SNDRV_PCM_FORMAT_S32_LE,
}

// Client plays tones through an ALSA PCM device. Implements the
// playback.Client interface.
type Client struct {
	cfg       playback.Config
	state     playback.State
	lastError error

	pcm *alsa.PCM
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
	if c.pcm != nil {
		_ = c.pcm.Close()
		c.pcm = nil
	}
	logger.Log("alsa", err.Error())
	return err
}

// Init implements the playback.Client interface.
func (c *Client) Init() error {
	format, ok := pcmFormats[c.cfg.Format]
	if !ok {
		return c.fail(curated.Errorf(playback.UnsupportedFormat, c.cfg.Format, "alsa"))
	}

	device := c.cfg.Device
	if device == "" {
		device = defaultDevice
	}

	config := alsa.Config{
		Channels:    uint32(c.cfg.Channels),
		Rate:        uint32(c.cfg.SampleRate),
		PeriodSize:  periodFrames,
		PeriodCount: periodCount,
		Format:      format,
	}

	p, err := alsa.PcmOpenByName(device, alsa.PCM_OUT, &config)
	if err != nil {
		return c.fail(curated.Errorf("alsa: %v", err))
	}

	c.pcm = p
	c.state = playback.Ready

	logger.Logf("alsa", "%s open for playback", device)

	return nil
}

// PlayTones implements the playback.Client interface.
func (c *Client) PlayTones(g tones.FrameGenerator) error {
	if c.state != playback.Ready {
		return curated.Errorf(playback.NotReady, c.state)
	}

	err := c.pcm.Prepare()
	if err != nil {
		return c.fail(curated.Errorf("alsa: %v", err))
	}

	buf := make([]byte, alsa.PcmFramesToBytes(c.pcm, c.pcm.PeriodSize()))

	for g.HasMoreFrames() {
		n := g.GetFrames(c.cfg.Format, c.cfg.Channels, c.cfg.Active, buf)
		if n == 0 {
			break
		}

		// writes are always a whole period. a partial final period is padded
		// with silence
		if n < len(buf) {
			playback.Silence(buf[n:], c.cfg.Format)
		}

		_, err = c.pcm.Write(buf)
		if err != nil {
			return c.fail(curated.Errorf("alsa: %v", err))
		}
	}

	// queue enough silence to cover the device latency before draining.
	// without this the tail of the final tone can be clipped
	playback.Silence(buf, c.cfg.Format)
	chunks := 1 + (c.cfg.SampleRate*c.cfg.LatencyMS/1000)/int(c.pcm.PeriodSize())
	for i := 0; i < chunks; i++ {
		_, err = c.pcm.Write(buf)
		if err != nil {
			return c.fail(curated.Errorf("alsa: %v", err))
		}
	}

	err = c.pcm.Drain()
	if err != nil {
		return c.fail(curated.Errorf("alsa: %v", err))
	}

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
	if c.pcm == nil {
		return nil
	}

	err := c.pcm.Close()
	c.pcm = nil

	if c.state == playback.Ready {
		c.state = playback.Terminated
	}

	if err != nil {
		return curated.Errorf("alsa: %v", err)
	}

	return nil
}
