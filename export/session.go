// SPDX-License-Identifier: EPL-2.0

package export

import (
	"fmt"
	"math/rand/v2"

	"github.com/ik5/oggexport/codec"
	"github.com/ik5/oggexport/metadata"
	"github.com/ik5/oggexport/settings"
)

const (
	// Serial numbers are drawn from [serialBase, serialBase+serialSpan),
	// which keeps clear of 0 and 0xFFFFFFFF.
	serialBase = 0xD0000000
	serialSpan = 0x0FFFFFFF
)

// modeFor maps output settings onto an engine mode. Constant bitrate uses the
// nominal value for all three slots with average management; variable
// bitrate passes min and max through, unset bounds as codec.Unbounded, with
// management off.
func modeFor(channels int, out settings.Output) codec.Mode {
	br := out.Bitrate

	mode := codec.Mode{
		Channels:   channels,
		SampleRate: out.SampleRate,
		Max:        bitsPerSecond(br.Nominal),
		Nominal:    bitsPerSecond(br.Nominal),
		Min:        bitsPerSecond(br.Nominal),
		Management: codec.ManageAverage,
	}

	if br.IsVariable() {
		mode.Max = bitsPerSecond(br.Max)
		mode.Min = bitsPerSecond(br.Min)
		mode.Management = codec.ManageOff
	}

	return mode
}

func bitsPerSecond(kbps int) int {
	if kbps <= 0 {
		return codec.Unbounded
	}
	return kbps * 1000
}

func newSerial(r *rand.Rand) uint32 {
	return serialBase + r.Uint32N(serialSpan)
}

// setup clamps the rate, selects the engine mode and opens the stream.
// On error the engine holds nothing.
func (e *Encoder) setup(out settings.Output) error {
	eff, clamped := out.Clamped()
	if clamped {
		e.log.Info("sample rate clamped",
			"requested", out.SampleRate,
			"effective", eff.SampleRate)
	}
	e.settings = eff

	mode := modeFor(e.channels, eff)
	if err := e.engine.Init(mode); err != nil {
		e.log.Error("mode initialization failed",
			"channels", mode.Channels,
			"rate", mode.SampleRate,
			"bitrate", eff.Bitrate.Nominal,
			"mode", eff.Bitrate.Mode.String(),
			"error", err)
		return fmt.Errorf("mode initialization: %w", err)
	}

	e.serial = newSerial(e.rng)
	if err := e.engine.Start(e.serial); err != nil {
		e.engine.Clear()
		return fmt.Errorf("starting stream: %w", err)
	}

	e.log.Debug("encoder set up",
		"channels", mode.Channels,
		"rate", mode.SampleRate,
		"min", mode.Min,
		"nominal", mode.Nominal,
		"max", mode.Max,
		"serial", e.serial)

	return nil
}

// emitHeaders writes the identification, comment and codebook headers on
// their own pages ahead of any audio.
func (e *Encoder) emitHeaders() error {
	comments := metadata.Comments(e.settings.Tags)

	ident, comment, codebook, err := e.engine.Headers(comments)
	if err != nil {
		return fmt.Errorf("building headers: %w", err)
	}

	for _, p := range [...]codec.Packet{ident, comment, codebook} {
		if err := e.engine.PacketIn(p); err != nil {
			return fmt.Errorf("submitting header: %w", err)
		}
	}

	for page, ok := e.engine.Flush(); ok; page, ok = e.engine.Flush() {
		if err := e.writePage(page); err != nil {
			return err
		}
	}

	e.log.Debug("headers written", "pages", e.stats.Pages, "bytes", e.stats.Bytes, "comments", len(comments))

	return nil
}
