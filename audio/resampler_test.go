// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/oggexport/internal/audiotest"
)

func TestResampler_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from, to int
		frames   int
		want     int
	}{
		{name: "same rate", from: 44100, to: 44100, frames: 1000, want: 1000},
		{name: "halve", from: 48000, to: 24000, frames: 4800, want: 2400},
		{name: "double", from: 22050, to: 44100, frames: 500, want: 1000},
		{name: "quarter", from: 32000, to: 8000, frames: 801, want: 201},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewResampler(audiotest.Sine(tt.from, 2, tt.frames, 440, 0.5), tt.to)
			assert.Equal(t, tt.to, r.SampleRate())
			assert.Equal(t, 2, r.Channels())

			out := drain(t, r, 256)
			assert.Len(t, out, tt.want*2)
		})
	}
}

func TestResampler_SameRateIsExact(t *testing.T) {
	t.Parallel()

	out := drain(t, NewResampler(audiotest.Ramp(16000, 300, 0.001), 16000), 64)
	require.Len(t, out, 300)
	for f, v := range out {
		assert.InDelta(t, float32(f)*0.001, v, 1e-6)
	}
}

func TestResampler_UpsampleInterpolates(t *testing.T) {
	t.Parallel()

	out := drain(t, NewResampler(audiotest.Ramp(8000, 100, 0.01), 16000), 50)
	require.Len(t, out, 200)

	// A ramp stays a ramp away from the edges.
	for i := 4; i < 190; i++ {
		assert.InDelta(t, float32(i)*0.005, out[i], 1e-4, "sample %d", i)
	}
}

func TestResampler_Empty(t *testing.T) {
	t.Parallel()

	r := NewResampler(audiotest.Silence(44100, 2, 0), 22050)
	n, err := r.ReadSamples(make([]float32, 64))
	assert.Zero(t, n)
	assert.Error(t, err)
}

func TestResampler_InvalidDst(t *testing.T) {
	t.Parallel()

	_, err := NewResampler(audiotest.Silence(44100, 2, 10), 22050).ReadSamples(make([]float32, 3))
	assert.ErrorIs(t, err, ErrInvalidDstSize)
}

func TestResampler_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("read failed")
	src := audiotest.Silence(44100, 1, 10000)
	src.Err, src.FailAt = boom, 3000

	r := NewResampler(src, 44100)
	var err error
	for err == nil {
		_, err = r.ReadSamples(make([]float32, 512))
	}
	assert.ErrorIs(t, err, boom)
}

func TestHQResampler(t *testing.T) {
	t.Parallel()

	r, err := NewHQResampler(audiotest.Sine(44100, 2, 44100, 440, 0.5), 48000, QualityHigh)
	require.NoError(t, err)
	assert.Equal(t, 48000, r.SampleRate())

	out := drain(t, r, 4096)
	require.Zero(t, len(out)%2)
	assert.InDelta(t, 48000, len(out)/2, 1000)

	for f := 0; f < len(out)/2; f++ {
		assert.Equal(t, out[2*f], out[2*f+1])
	}
}

func TestHQResampler_InvalidRate(t *testing.T) {
	t.Parallel()

	_, err := NewHQResampler(audiotest.Silence(44100, 2, 10), 0, QualityHigh)
	assert.ErrorIs(t, err, ErrInvalidRate)
}
