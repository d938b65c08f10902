// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/oggexport/utils"
)

// Resampler converts src to another rate with Catmull-Rom interpolation.
// It is cheap and good enough for previews; a one-pole low-pass runs on
// the input when downsampling. Channel count is preserved.
type Resampler struct {
	src      Source
	rate     int
	step     float64 // source frames per output frame
	channels int

	// hist holds source frames idx-1, idx, idx+1 and idx+2.
	hist [4][]float32
	idx  int64
	read int64
	pos  float64

	in           []float32
	inPos, inLen int
	eof, primed  bool
	lowpass      bool
	filter       []float32
}

const lowpassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		rate:     dstRate,
		step:     step,
		channels: channels,
		in:       make([]float32, max(src.BufSize(), 1024*channels)),
		lowpass:  step > 1,
		filter:   make([]float32, channels),
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }
func (r *Resampler) Close() error    { return r.src.Close() }

// fill copies the next source frame into dst. It returns false once the
// source is exhausted.
func (r *Resampler) fill(dst []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if errors.Is(err, io.EOF) {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("reading source: %w", err)
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.lowpass {
		if r.read == 0 {
			copy(r.filter, dst)
		}
		for c := range dst {
			dst[c] = lowpassAlpha*dst[c] + (1-lowpassAlpha)*r.filter[c]
			r.filter[c] = dst[c]
		}
	}
	r.read++

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.fill(r.hist[1])
	if !ok {
		return err
	}
	copy(r.hist[0], r.hist[1])

	for i := 2; i < len(r.hist); i++ {
		ok, err := r.fill(r.hist[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
	}

	return nil
}

// advance moves the window one source frame forward, repeating the last
// frame past the end of the source.
func (r *Resampler) advance() error {
	first := r.hist[0]
	copy(r.hist[:], r.hist[1:])
	r.hist[3] = first
	r.idx++

	ok, err := r.fill(r.hist[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.hist[3], r.hist[2])
	}

	return nil
}

// ReadSamples produces interleaved samples at the target rate. len(dst)
// must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames, want := 0, len(dst)/r.channels
	for frames < want {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return frames * r.channels, err
			}
		}

		if r.idx >= r.read {
			break
		}

		x := float32(r.pos)
		out := dst[frames*r.channels : (frames+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		frames++
		r.pos += r.step
	}

	if frames == 0 {
		return 0, io.EOF
	}

	return frames * r.channels, nil
}
