// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/oggexport/internal/audiotest"
)

func TestMonoMixer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []float32
		want   float32
	}{
		{name: "mono passes through", values: []float32{0.3}, want: 0.3},
		{name: "stereo averages", values: []float32{0.2, 0.6}, want: 0.4},
		{name: "opposite phase cancels", values: []float32{0.5, -0.5}, want: 0},
		{name: "surround", values: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, want: 0.35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.Constant(8000, 100, tt.values...)
			m := NewMonoMixer(src)
			assert.Equal(t, 1, m.Channels())
			assert.Equal(t, 8000, m.SampleRate())

			out := drain(t, m, 64)
			require.Len(t, out, 100)
			for _, v := range out {
				assert.InDelta(t, tt.want, v, 1e-6)
			}
		})
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	n, err := NewMonoMixer(audiotest.Silence(8000, 2, 10)).ReadSamples(nil)
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestUpmixer(t *testing.T) {
	t.Parallel()

	src := audiotest.Ramp(8000, 50, 0.01)
	u := NewUpmixer(src, 2)
	assert.Equal(t, 2, u.Channels())

	out := drain(t, u, 30)
	require.Len(t, out, 100)
	for f := range 50 {
		assert.InDelta(t, float32(f)*0.01, out[2*f], 1e-6)
		assert.Equal(t, out[2*f], out[2*f+1])
	}
}

func TestUpmixer_InvalidDst(t *testing.T) {
	t.Parallel()

	_, err := NewUpmixer(audiotest.Silence(8000, 1, 10), 2).ReadSamples(make([]float32, 3))
	assert.ErrorIs(t, err, ErrInvalidDstSize)
}

func TestUpmixer_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := audiotest.Silence(8000, 1, 100)
	src.Err, src.FailAt = boom, 40

	u := NewUpmixer(src, 2)
	n, err := u.ReadSamples(make([]float32, 200))
	assert.Equal(t, 80, n)
	assert.ErrorIs(t, err, boom)
}

func TestAdapt(t *testing.T) {
	t.Parallel()

	stereo := audiotest.Silence(44100, 2, 10)
	assert.Same(t, Source(stereo), Adapt(stereo, 2))

	assert.IsType(t, &MonoMixer{}, Adapt(stereo, 1))
	assert.IsType(t, &Upmixer{}, Adapt(audiotest.Silence(44100, 1, 10), 2))

	surround := Adapt(audiotest.Constant(44100, 10, 0.1, 0.2, 0.3, 0.4), 2)
	assert.Equal(t, 2, surround.Channels())
	out := drain(t, surround, 8)
	require.Len(t, out, 20)
	assert.InDelta(t, 0.25, out[0], 1e-6)
	assert.InDelta(t, 0.25, out[1], 1e-6)
}

func TestAdapt_ClosesSource(t *testing.T) {
	t.Parallel()

	src := audiotest.Silence(44100, 6, 10)
	require.NoError(t, Adapt(src, 2).Close())
	assert.Equal(t, 1, src.Closed)
}
