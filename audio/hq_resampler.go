// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	resampler "github.com/tphakala/go-audio-resampler"

	"github.com/ik5/oggexport/utils"
)

// Quality selects the filter used by HQResampler.
type Quality = resampler.QualityPreset

const (
	QualityLow      = resampler.QualityLow
	QualityMedium   = resampler.QualityMedium
	QualityHigh     = resampler.QualityHigh
	QualityVeryHigh = resampler.QualityVeryHigh
)

// HQResampler converts src to another rate with a polyphase filter, one
// engine per channel.
type HQResampler struct {
	src      Source
	rate     int
	channels int
	engines  []*resampler.SimpleResamplerFloat32

	in      []float32
	planes  [][]float32
	out     []float32
	outPos  int
	drained bool
}

// NewHQResampler prepares a resampler from src's rate to dstRate at the
// given quality preset.
func NewHQResampler(src Source, dstRate int, quality Quality) (*HQResampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d Hz", ErrInvalidRate, src.SampleRate(), dstRate)
	}

	channels := src.Channels()
	r := &HQResampler{
		src:      src,
		rate:     dstRate,
		channels: channels,
		engines:  make([]*resampler.SimpleResamplerFloat32, channels),
		planes:   make([][]float32, channels),
		in:       make([]float32, max(src.BufSize(), 4096*channels)),
	}

	for c := range r.engines {
		eng, err := resampler.NewEngineFloat32(float64(src.SampleRate()), float64(dstRate), quality)
		if err != nil {
			return nil, fmt.Errorf("creating resampler for channel %d: %w", c, err)
		}
		r.engines[c] = eng
	}

	return r, nil
}

func (r *HQResampler) SampleRate() int { return r.rate }
func (r *HQResampler) Channels() int   { return r.channels }
func (r *HQResampler) BufSize() int    { return r.src.BufSize() }
func (r *HQResampler) Close() error    { return r.src.Close() }

func (r *HQResampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	for len(r.out)-r.outPos < len(dst) && !r.drained {
		if err := r.pull(); err != nil {
			return 0, err
		}
	}

	n := copy(dst, r.out[r.outPos:])
	r.outPos += n
	if n == 0 && r.drained {
		return 0, io.EOF
	}

	return n, nil
}

// pull reads one buffer from the source and queues the converted output.
// At the end of the source the engines are flushed.
func (r *HQResampler) pull() error {
	r.out = append(r.out[:0], r.out[r.outPos:]...)
	r.outPos = 0

	n, err := r.src.ReadSamples(r.in)
	eof := errors.Is(err, io.EOF)
	if err != nil && !eof {
		return fmt.Errorf("reading source: %w", err)
	}

	frames := n / r.channels
	if frames > 0 {
		for c := range r.planes {
			r.planes[c] = grow(r.planes[c], frames)
		}
		utils.Deinterleave(r.planes, r.in, frames, 1)

		outs := make([][]float32, r.channels)
		for c, eng := range r.engines {
			if outs[c], err = eng.Process(r.planes[c]); err != nil {
				return fmt.Errorf("resampling channel %d: %w", c, err)
			}
		}
		r.queue(outs)
	}

	if eof {
		outs := make([][]float32, r.channels)
		for c, eng := range r.engines {
			if outs[c], err = eng.Flush(); err != nil {
				return fmt.Errorf("flushing channel %d: %w", c, err)
			}
		}
		r.queue(outs)
		r.drained = true
	}

	return nil
}

func (r *HQResampler) queue(outs [][]float32) {
	frames := len(outs[0])
	for _, o := range outs[1:] {
		frames = min(frames, len(o))
	}
	r.out = utils.Interleave(r.out, outs, frames)
}
