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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rhesby/tonegen/curated"
	"github.com/rhesby/tonegen/logger"
	"github.com/rhesby/tonegen/modalflag"
	"github.com/rhesby/tonegen/pcm"
	"github.com/rhesby/tonegen/playback"
	"github.com/rhesby/tonegen/playback/alsaplay"
	"github.com/rhesby/tonegen/playback/pulseplay"
	"github.com/rhesby/tonegen/playback/sdlplay"
	"github.com/rhesby/tonegen/prompt"
	"github.com/rhesby/tonegen/statsview"
	"github.com/rhesby/tonegen/tones"
	"github.com/rhesby/tonegen/version"
	"github.com/rhesby/tonegen/wavwriter"
)

// tones shorter than this are inaudible clicks and almost certainly a
// mistyped argument.
const minToneLength = 0.01

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("PLAY", "SCALE", "WAV", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)

	case "SCALE":
		err = scale(md)

	case "WAV":
		err = renderWav(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// newClient creates the streaming client for the named backend.
func newClient(backend string, cfg playback.Config) (playback.Client, error) {
	switch strings.ToUpper(backend) {
	case "ALSA":
		return alsaplay.NewClient(cfg), nil
	case "PULSE":
		return pulseplay.NewClient(cfg), nil
	case "SDL":
		return sdlplay.NewClient(cfg), nil
	}

	return nil, curated.Errorf("unrecognised backend (%s)", backend)
}

// the flags common to the PLAY and SCALE modes.
type streamFlags struct {
	backend *string
	device  *string
	rate    *int
	chans   *int
	active  *string
	format  *string
	latency *int
	volume  *float64
	print   *bool
	log     *bool
	stats   *bool
}

func addStreamFlags(md *modalflag.Modes) streamFlags {
	return streamFlags{
		backend: md.AddString("backend", "alsa", "playback backend: ALSA, PULSE, SDL"),
		device:  md.AddString("device", "", "playback device (backend specific, empty for default)"),
		rate:    md.AddInt("rate", 44100, "sample rate in frames per second"),
		chans:   md.AddInt("channels", 2, "number of channels in the stream"),
		active:  md.AddString("active", "", "active channels, eg. 0,2 (empty for all)"),
		format:  md.AddString("format", "s16", "sample format: u8, s16, s24, s32"),
		latency: md.AddInt("latency", 50, "post-playback silence in milliseconds"),
		volume:  md.AddFloat64("volume", 1.0, "tone volume: 0.0 to 1.0"),
		print:   md.AddBool("print", false, "print the stream configuration before playing"),
		log:     md.AddBool("log", false, "echo debugging log to stdout"),
		stats:   md.AddBool("stats", false, "launch statistics server"),
	}
}

// begin acts on the ambient flags. must be called after a successful Parse().
func (fl streamFlags) begin() {
	if *fl.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *fl.stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! statsview not supported in this build")
		}
	}
}

// config assembles a playback configuration from the parsed flags.
func (fl streamFlags) config() (playback.Config, error) {
	format, err := pcm.ParseFormat(*fl.format)
	if err != nil {
		return playback.Config{}, err
	}

	if *fl.chans < 1 {
		return playback.Config{}, curated.Errorf("channel count must be at least one (%d)", *fl.chans)
	}

	cfg := playback.Config{
		Device:     *fl.device,
		SampleRate: *fl.rate,
		Format:     format,
		Channels:   *fl.chans,
		LatencyMS:  *fl.latency,
	}

	cfg.Active, err = playback.ParseChannelList(*fl.active, cfg.Channels)
	if err != nil {
		return playback.Config{}, err
	}

	return cfg, nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	fl := addStreamFlags(md)
	length := md.AddFloat64("length", 0.3, "tone length in seconds")
	wait := md.AddBool("wait", false, "wait for a keypress between tones")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fl.begin()

	if *length < minToneLength {
		return curated.Errorf("tone length is too short (%.3fs)", *length)
	}

	cfg, err := fl.config()
	if err != nil {
		return err
	}

	// frequencies to play are the remaining arguments. 440Hz if none are
	// given
	freqs := []float64{440.0}
	if len(md.RemainingArgs()) > 0 {
		freqs = freqs[:0]
		for _, arg := range md.RemainingArgs() {
			f, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return curated.Errorf("unrecognised frequency (%s)", arg)
			}
			freqs = append(freqs, f)
		}
	}

	if *fl.print {
		fmt.Println(cfg)
	}

	// the generator persists across tones so the oscillator phase is
	// continuous. each tone gets its own client lifecycle
	g := tones.NewSingleToneGenerator(float64(cfg.SampleRate), *length)
	g.Volume = *fl.volume

	for i, f := range freqs {
		if *wait && i > 0 {
			err = prompt.WaitKey("press any key for the next tone")
			if err != nil {
				return err
			}
		}

		g.Reset(f)

		err = playTones(*fl.backend, cfg, g)
		if err != nil {
			return err
		}
	}

	return nil
}

func scale(md *modalflag.Modes) error {
	md.NewMode()

	fl := addStreamFlags(md)
	length := md.AddFloat64("length", 0.3, "note length in seconds")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fl.begin()

	if *length < minToneLength {
		return curated.Errorf("note length is too short (%.3fs)", *length)
	}

	cfg, err := fl.config()
	if err != nil {
		return err
	}

	if *fl.print {
		fmt.Println(cfg)
	}

	g := tones.NewASharpMinorGenerator(float64(cfg.SampleRate), *length)
	g.SetVolume(*fl.volume)

	return playTones(*fl.backend, cfg, g)
}

// playTones runs a complete client lifecycle for a single generator.
func playTones(backend string, cfg playback.Config, g tones.FrameGenerator) error {
	client, err := newClient(backend, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.Init()
	if err != nil {
		return err
	}

	return client.PlayTones(g)
}

func renderWav(md *modalflag.Modes) error {
	md.NewMode()

	rate := md.AddInt("rate", 44100, "sample rate in frames per second")
	chans := md.AddInt("channels", 2, "number of channels in the stream")
	active := md.AddString("active", "", "active channels, eg. 0,2 (empty for all)")
	formatFlag := md.AddString("format", "s16", "sample format: u8, s16, s24, s32")
	length := md.AddFloat64("length", 0.3, "tone length in seconds")
	freq := md.AddFloat64("freq", 440.0, "tone frequency in Hz")
	playScale := md.AddBool("scale", false, "render the sixteen note scale instead of a single tone")
	volume := md.AddFloat64("volume", 1.0, "tone volume: 0.0 to 1.0")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("WAV filename required for %s mode", md)
	}

	if *length < minToneLength {
		return curated.Errorf("tone length is too short (%.3fs)", *length)
	}

	format, err := pcm.ParseFormat(*formatFlag)
	if err != nil {
		return err
	}

	activeSet, err := playback.ParseChannelList(*active, *chans)
	if err != nil {
		return err
	}

	var g tones.FrameGenerator

	if *playScale {
		sg := tones.NewASharpMinorGenerator(float64(*rate), *length)
		sg.SetVolume(*volume)
		g = sg
	} else {
		tg := tones.NewSingleToneGenerator(float64(*rate), *length)
		tg.Volume = *volume
		tg.Reset(*freq)
		g = tg
	}

	sum, err := wavwriter.Render(md.GetArg(0), g, format, *rate, *chans, activeSet)
	if err != nil {
		return err
	}

	// the digest uniquely identifies the stream. useful for comparing output
	// between versions and between machines
	fmt.Printf("%s  %s\n", sum, md.GetArg(0))

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev, release := version.Version()
	if release {
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
	} else {
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, ver, rev)
	}

	return nil
}
