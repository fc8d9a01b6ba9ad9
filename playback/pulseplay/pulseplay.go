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

// Package pulseplay streams tones to a PulseAudio server.
//
// The wire format of the stream is float32, as preferred by the pulse
// library. Frames are still quantised through the configured sample format
// before being widened, so the audible output matches what an ALSA device
// would have produced from the same configuration.
package pulseplay

import (
	"github.com/jfreymuth/pulse"
	"github.com/rhesby/tonegen/curated"
	"github.com/rhesby/tonegen/logger"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/playback"
	"github.com/rhesby/tonegen/tones"
)

const appName = "tonegen"

// Client plays tones through a PulseAudio server. Implements the
// playback.Client interface.
type Client struct {
	cfg       playback.Config
	state     playback.State
	lastError error

	client *pulse.Client

	// the generator currently being streamed by the read callback
	gen     tones.FrameGenerator
	scratch []byte
}

// NewClient is the preferred method of initialisation for the Client type.
// The returned client is in the Created state; call Init() to connect to the
// server.
func NewClient(cfg playback.Config) *Client {
	return &Client{
		cfg:   cfg,
		state: playback.Created,
	}
}

// fail moves the client into the Failed state, releasing the server
// connection. the client cannot be used again.
func (c *Client) fail(err error) error {
	c.lastError = err
	c.state = playback.Failed
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
	logger.Log("pulse", err.Error())
	return err
}

// Init implements the playback.Client interface.
func (c *Client) Init() error {
	// the pulse library only supports mono and stereo streams
	if c.cfg.Channels < 1 || c.cfg.Channels > 2 {
		return c.fail(curated.Errorf(playback.BadChannelCount, c.cfg.Channels, "pulse"))
	}

	client, err := pulse.NewClient(pulse.ClientApplicationName(appName))
	if err != nil {
		return c.fail(curated.Errorf("pulse: %v", err))
	}

	c.client = client
	c.state = playback.Ready

	logger.Log("pulse", "connected to server")

	return nil
}

// read is the stream callback. it runs on the pulse library's goroutine for
// the duration of a PlayTones() call.
func (c *Client) read(out []float32) (int, error) {
	width := c.cfg.Format.ByteWidth()
	frames := len(out) / c.cfg.Channels

	if len(c.scratch) < frames*c.cfg.FrameBytes() {
		c.scratch = make([]byte, frames*c.cfg.FrameBytes())
	}

	n := c.gen.GetFrames(c.cfg.Format, c.cfg.Channels, c.cfg.Active, c.scratch[:frames*c.cfg.FrameBytes()])
	if n == 0 {
		return 0, pulse.EndOfData
	}

	samples := n / width
	for i := 0; i < samples; i++ {
		out[i] = float32(pcm.Decode(c.scratch, i*width, c.cfg.Format))
	}

	// a short read is fine. the library accounts for the shortfall itself
	return samples, nil
}

// PlayTones implements the playback.Client interface.
func (c *Client) PlayTones(g tones.FrameGenerator) error {
	if c.state != playback.Ready {
		return curated.Errorf(playback.NotReady, c.state)
	}

	c.gen = g

	opts := []pulse.PlaybackOption{
		pulse.PlaybackSampleRate(c.cfg.SampleRate),
		pulse.PlaybackLatency(float64(c.cfg.LatencyMS) / 1000.0),
	}
	if c.cfg.Channels == 1 {
		opts = append(opts, pulse.PlaybackMono)
	} else {
		opts = append(opts, pulse.PlaybackStereo)
	}
	if c.cfg.Device != "" {
		sink, err := c.client.SinkByID(c.cfg.Device)
		if err != nil {
			return c.fail(curated.Errorf("pulse: %v", err))
		}
		opts = append(opts, pulse.PlaybackSink(sink))
	}

	stream, err := c.client.NewPlayback(pulse.Float32Reader(c.read), opts...)
	if err != nil {
		return c.fail(curated.Errorf("pulse: %v", err))
	}

	stream.Start()
	stream.Drain()

	if stream.Underflow() {
		logger.Log("pulse", "underflow during playback")
	}

	stream.Close()
	c.gen = nil
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
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}

	if c.state == playback.Ready {
		c.state = playback.Terminated
	}

	return nil
}
