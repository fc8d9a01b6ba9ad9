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

// Package playback defines the streaming client interface shared by the
// sound server backends, along with the configuration and connection state
// types they have in common.
//
// The backends themselves live in the sub-packages alsaplay, pulseplay and
// sdlplay. They all follow the same lifecycle: a client is created with a
// configuration, Init() connects it to the sound server, PlayTones() drains
// a frame generator into the server, and Close() releases the connection.
package playback

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rhesby/tonegen/curated"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/tones"
)

// sentinel errors returned by the backend clients.
const (
	NotReady          = "playback: client is not ready (%s)"
	UnsupportedFormat = "playback: %s samples are not supported by the %s backend"
	BadChannelCount   = "playback: %d channels are not supported by the %s backend"
)

// State records where a streaming client is in its connection lifecycle.
type State int

// List of valid State values. A client starts in the Created state and moves
// to Ready on a successful Init(). playback moves a Ready client to
// Terminated. an error at any point moves the client to Failed, where it
// stays.
const (
	Created State = iota
	Failed
	Terminated
	Ready
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Failed:
		return "failed"
	case Terminated:
		return "terminated"
	case Ready:
		return "ready"
	}
	return "undefined"
}

// Client is implemented by all the sound server backends.
type Client interface {
	// Init connects the client to the sound server. Must be called before
	// PlayTones().
	Init() error

	// PlayTones streams the generator to the sound server, blocking until
	// every frame has been played and the stream drained.
	PlayTones(g tones.FrameGenerator) error

	// State returns the connection state of the client.
	State() State

	// LastError returns the error that moved the client into the Failed
	// state. nil if the client has never failed.
	LastError() error

	// Close releases the connection to the sound server. It is safe to call
	// in any state and more than once.
	Close() error
}

// Config collects the stream parameters common to all backends.
type Config struct {
	// Device is the backend-specific device name. The empty string selects
	// the backend's default device.
	Device string

	SampleRate int
	Format     pcm.SampleFormat
	Channels   int

	// Active is the set of channels that carry the tone. Inactive channels
	// are streamed as silence.
	Active tones.ChannelSet

	// LatencyMS is the amount of silence, expressed as milliseconds of
	// stream time, queued after the final tone so that device latency does
	// not clip the tail of the audio.
	LatencyMS int
}

// FrameBytes returns the size of a single frame in bytes.
func (cfg Config) FrameBytes() int {
	return pcm.FrameBytes(cfg.Format, cfg.Channels)
}

func (cfg Config) String() string {
	device := cfg.Device
	if device == "" {
		device = "(default)"
	}

	active := make([]string, 0, len(cfg.Active))
	for ch := range cfg.Active {
		active = append(active, strconv.Itoa(ch))
	}
	sort.Strings(active)

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("device: %s\n", device))
	s.WriteString(fmt.Sprintf("sample rate: %d\n", cfg.SampleRate))
	s.WriteString(fmt.Sprintf("format: %s\n", cfg.Format))
	s.WriteString(fmt.Sprintf("channels: %d\n", cfg.Channels))
	s.WriteString(fmt.Sprintf("active channels: %s\n", strings.Join(active, ",")))
	s.WriteString(fmt.Sprintf("latency: %dms", cfg.LatencyMS))

	return s.String()
}

// ParseChannelList converts a comma separated list of channel numbers, "0,2"
// for example, into a ChannelSet. The empty string selects every channel.
func ParseChannelList(list string, channels int) (tones.ChannelSet, error) {
	if strings.TrimSpace(list) == "" {
		return tones.AllChannels(channels), nil
	}

	set := tones.ChannelSet{}
	for _, f := range strings.Split(list, ",") {
		ch, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, curated.Errorf("playback: unrecognised channel list (%s)", list)
		}
		if ch < 0 || ch >= channels {
			return nil, curated.Errorf("playback: channel out of range (%d)", ch)
		}
		set[ch] = true
	}

	return set, nil
}

// Silence fills buf with encoded silence. Note that silence is not always a
// zero byte. the midpoint of the u8 format, for instance, is 0x80.
func Silence(buf []byte, format pcm.SampleFormat) {
	width := format.ByteWidth()
	for offset := 0; offset+width <= len(buf); offset += width {
		pcm.Encode(buf, offset, 0.0, format)
	}
}
