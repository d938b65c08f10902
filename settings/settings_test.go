// SPDX-License-Identifier: EPL-2.0

package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput_WithDefaults(t *testing.T) {
	t.Parallel()

	o := Output{}.WithDefaults()

	assert.Equal(t, DefaultSampleRate, o.SampleRate)
	assert.Equal(t, DefaultBitrate, o.Bitrate.Nominal)
	assert.Equal(t, Depth16Bit, o.BitDepth)
	assert.Equal(t, Constant, o.Bitrate.Mode)
	require.NoError(t, o.Validate())
}

func TestOutput_WithDefaults_KeepsSetFields(t *testing.T) {
	t.Parallel()

	o := Output{SampleRate: 22050, Bitrate: Bitrate{Nominal: 64}}.WithDefaults()

	assert.Equal(t, 22050, o.SampleRate)
	assert.Equal(t, 64, o.Bitrate.Nominal)
}

func TestOutput_Validate(t *testing.T) {
	t.Parallel()

	valid := Output{}.WithDefaults()

	tests := []struct {
		name    string
		mutate  func(*Output)
		wantErr error
	}{
		{"valid", func(*Output) {}, nil},
		{"zero rate", func(o *Output) { o.SampleRate = 0 }, ErrInvalidSampleRate},
		{"negative bitrate", func(o *Output) { o.Bitrate.Nominal = -1 }, ErrInvalidBitrate},
		{"unknown mode", func(o *Output) { o.Bitrate.Mode = 7 }, ErrInvalidBitrate},
		{"vbr min above nominal", func(o *Output) {
			o.Bitrate = Bitrate{Mode: Variable, Nominal: 128, Min: 160}
		}, ErrInvalidBitrate},
		{"vbr max below nominal", func(o *Output) {
			o.Bitrate = Bitrate{Mode: Variable, Nominal: 128, Max: 96}
		}, ErrInvalidBitrate},
		{"vbr unbounded", func(o *Output) {
			o.Bitrate = Bitrate{Mode: Variable, Nominal: 128}
		}, nil},
		{"cbr ignores min/max", func(o *Output) {
			o.Bitrate = Bitrate{Mode: Constant, Nominal: 128, Min: 500, Max: 1}
		}, nil},
		{"bad stereo mode", func(o *Output) { o.StereoMode = 9 }, ErrInvalidStereoMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := valid
			tt.mutate(&o)
			err := o.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "Validate() = %v, want %v", err, tt.wantErr)
		})
	}
}

func TestOutput_Clamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate    int
		want    int
		clamped bool
	}{
		{44100, 44100, false},
		{48000, 48000, false},
		{48001, MaxSampleRate, true},
		{96000, MaxSampleRate, true},
		{192000, MaxSampleRate, true},
	}

	for _, tt := range tests {
		o := Output{SampleRate: tt.rate}
		got, clamped := o.Clamped()

		assert.Equal(t, tt.want, got.SampleRate, "rate %d", tt.rate)
		assert.Equal(t, tt.clamped, clamped, "rate %d", tt.rate)
		assert.Equal(t, tt.rate, o.SampleRate, "input must not change")
	}
}

func TestStereoMode_Channels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Stereo.Channels())
	assert.Equal(t, 2, JointStereo.Channels())
	assert.Equal(t, 1, Mono.Channels())
}

func TestModeStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "constant", Constant.String())
	assert.Equal(t, "variable", Variable.String())
	assert.Equal(t, "BitrateMode(5)", BitrateMode(5).String())
	assert.Equal(t, "mono", Mono.String())
}
