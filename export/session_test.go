// SPDX-License-Identifier: EPL-2.0

package export

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ik5/oggexport/codec"
	"github.com/ik5/oggexport/settings"
)

func TestModeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		bitrate  settings.Bitrate
		want     codec.Mode
	}{
		{
			name:     "constant uses nominal everywhere",
			channels: 2,
			bitrate:  settings.Bitrate{Mode: settings.Constant, Nominal: 128, Min: 64, Max: 320},
			want: codec.Mode{
				Channels: 2, SampleRate: 44100,
				Max: 128000, Nominal: 128000, Min: 128000,
				Management: codec.ManageAverage,
			},
		},
		{
			name:     "variable passes bounds through",
			channels: 1,
			bitrate:  settings.Bitrate{Mode: settings.Variable, Nominal: 160, Min: 96, Max: 256},
			want: codec.Mode{
				Channels: 1, SampleRate: 44100,
				Max: 256000, Nominal: 160000, Min: 96000,
				Management: codec.ManageOff,
			},
		},
		{
			name:     "variable without bounds",
			channels: 2,
			bitrate:  settings.Bitrate{Mode: settings.Variable, Nominal: 192},
			want: codec.Mode{
				Channels: 2, SampleRate: 44100,
				Max: codec.Unbounded, Nominal: 192000, Min: codec.Unbounded,
				Management: codec.ManageOff,
			},
		},
		{
			name:     "variable with negative bounds",
			channels: 2,
			bitrate:  settings.Bitrate{Mode: settings.Variable, Nominal: 96, Min: -5, Max: -1},
			want: codec.Mode{
				Channels: 2, SampleRate: 44100,
				Max: codec.Unbounded, Nominal: 96000, Min: codec.Unbounded,
				Management: codec.ManageOff,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := settings.Output{SampleRate: 44100, Bitrate: tt.bitrate}
			assert.Equal(t, tt.want, modeFor(tt.channels, out))
		})
	}
}

func TestNewSerial(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(7, 11))
	for range 1000 {
		s := newSerial(r)
		assert.GreaterOrEqual(t, s, uint32(serialBase))
		assert.Less(t, s, uint32(serialBase+serialSpan))
	}
}

func TestNewSerial_Deterministic(t *testing.T) {
	t.Parallel()

	a := newSerial(rand.New(rand.NewPCG(42, 42)))
	b := newSerial(rand.New(rand.NewPCG(42, 42)))
	assert.Equal(t, a, b)
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "headers-emitted", HeadersEmitted.String())
	assert.Equal(t, "encoding", Encoding.String())
	assert.Equal(t, "finalizing", Finalizing.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "State(9)", State(9).String())
}
