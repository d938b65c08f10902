// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests. The types
// satisfy audio.Source without importing it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of frame at channel.
type Waveform func(frame, channel int) float32

// Source generates a fixed number of frames from a Waveform.
type Source struct {
	rate     int
	channels int
	frames   int
	pos      int
	wave     Waveform

	// Chunk caps the frames returned per read when positive.
	Chunk int
	// Err, when set, is returned by the read that reaches frame FailAt.
	Err    error
	FailAt int
	// Closed counts calls to Close.
	Closed int
}

// New returns a Source of frames frames.
func New(rate, channels, frames int, wave Waveform) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, wave: wave}
}

// Silence returns a Source of zeros.
func Silence(rate, channels, frames int) *Source {
	return New(rate, channels, frames, func(int, int) float32 { return 0 })
}

// Sine returns a Source with the same sine on every channel.
func Sine(rate, channels, frames int, freq, amp float64) *Source {
	return New(rate, channels, frames, func(f, _ int) float32 {
		return float32(amp * math.Sin(2*math.Pi*freq*float64(f)/float64(rate)))
	})
}

// Constant returns a Source where channel c always holds values[c].
func Constant(rate, frames int, values ...float32) *Source {
	return New(rate, len(values), frames, func(_, c int) float32 { return values[c] })
}

// Ramp returns a mono Source whose frame f holds f*step.
func Ramp(rate, frames int, step float32) *Source {
	return New(rate, 1, frames, func(f, _ int) float32 { return float32(f) * step })
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 1024 * s.channels }

func (s *Source) Close() error {
	s.Closed++
	return nil
}

// Remaining returns the number of frames not yet read.
func (s *Source) Remaining() int { return s.frames - s.pos }

// Rewind starts the Source over.
func (s *Source) Rewind() { s.pos = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= s.frames {
		return 0, io.EOF
	}

	n := min(len(dst)/s.channels, s.frames-s.pos)
	if s.Chunk > 0 {
		n = min(n, s.Chunk)
	}
	if s.Err != nil && s.pos+n >= s.FailAt {
		n = max(0, s.FailAt-s.pos)
	}

	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.wave(s.pos+f, c)
		}
	}
	s.pos += n

	switch {
	case s.Err != nil && s.pos >= s.FailAt:
		return n * s.channels, s.Err
	case s.pos >= s.frames:
		return n * s.channels, io.EOF
	default:
		return n * s.channels, nil
	}
}
