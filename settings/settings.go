// SPDX-License-Identifier: EPL-2.0

package settings

import (
	"fmt"

	"github.com/ik5/oggexport/metadata"
)

// MaxSampleRate is the highest rate the encoder accepts. Higher requests are
// clamped to it.
const MaxSampleRate = 48000

const (
	// DefaultSampleRate is used when no rate is requested.
	DefaultSampleRate = 44100
	// DefaultBitrate is the nominal bitrate in kbps used when none is set.
	DefaultBitrate = 128
)

// BitrateMode selects how the encoder manages its output rate.
type BitrateMode int

const (
	// Constant holds the rate at the nominal value with rate management on.
	Constant BitrateMode = iota
	// Variable lets the rate float between Min and Max with management off.
	Variable
)

func (m BitrateMode) String() string {
	switch m {
	case Constant:
		return "constant"
	case Variable:
		return "variable"
	default:
		return fmt.Sprintf("BitrateMode(%d)", int(m))
	}
}

// Bitrate holds the bitrate configuration in kbps. Min and Max are only
// consulted in Variable mode; a value <= 0 means unbounded.
type Bitrate struct {
	Mode    BitrateMode
	Nominal int
	Min     int
	Max     int
}

// IsVariable reports whether the variable bitrate mode is selected.
func (b Bitrate) IsVariable() bool { return b.Mode == Variable }

// StereoMode is the channel layout of the output.
type StereoMode int

const (
	// Stereo is two independent channels.
	Stereo StereoMode = iota
	// JointStereo is two channels the encoder may couple.
	JointStereo
	// Mono is a single channel.
	Mono
)

func (m StereoMode) String() string {
	switch m {
	case Stereo:
		return "stereo"
	case JointStereo:
		return "joint-stereo"
	case Mono:
		return "mono"
	default:
		return fmt.Sprintf("StereoMode(%d)", int(m))
	}
}

// Channels returns the channel count of the layout.
func (m StereoMode) Channels() int {
	if m == Mono {
		return 1
	}
	return 2
}

// BitDepth is shared with the lossless exporters; Vorbis ignores it.
type BitDepth int

// Supported bit depths.
const (
	Depth16Bit BitDepth = 16
	Depth24Bit BitDepth = 24
	Depth32Bit BitDepth = 32
)

// Output describes one export as chosen by the user.
type Output struct {
	SampleRate int
	Bitrate    Bitrate
	BitDepth   BitDepth
	StereoMode StereoMode
	Tags       metadata.Tags
}

// WithDefaults returns a copy with zero fields replaced by defaults.
func (o Output) WithDefaults() Output {
	if o.SampleRate == 0 {
		o.SampleRate = DefaultSampleRate
	}

	if o.Bitrate.Nominal == 0 {
		o.Bitrate.Nominal = DefaultBitrate
	}

	if o.BitDepth == 0 {
		o.BitDepth = Depth16Bit
	}

	return o
}

// Validate returns an error when o cannot describe any export.
// It does not check whether the codec supports the combination; that is
// decided when the encoder is set up.
func (o Output) Validate() error {
	if o.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, o.SampleRate)
	}

	if o.Bitrate.Nominal <= 0 {
		return fmt.Errorf("%w: nominal %d kbps", ErrInvalidBitrate, o.Bitrate.Nominal)
	}

	if o.Bitrate.Mode != Constant && o.Bitrate.Mode != Variable {
		return fmt.Errorf("%w: %s", ErrInvalidBitrate, o.Bitrate.Mode)
	}

	if o.Bitrate.IsVariable() {
		if o.Bitrate.Min > 0 && o.Bitrate.Min > o.Bitrate.Nominal {
			return fmt.Errorf("%w: min %d > nominal %d kbps", ErrInvalidBitrate, o.Bitrate.Min, o.Bitrate.Nominal)
		}
		if o.Bitrate.Max > 0 && o.Bitrate.Max < o.Bitrate.Nominal {
			return fmt.Errorf("%w: max %d < nominal %d kbps", ErrInvalidBitrate, o.Bitrate.Max, o.Bitrate.Nominal)
		}
	}

	if o.StereoMode < Stereo || o.StereoMode > Mono {
		return fmt.Errorf("%w: %s", ErrInvalidStereoMode, o.StereoMode)
	}

	return nil
}

// Clamped returns o with the sample rate limited to MaxSampleRate, and
// whether a change was made.
func (o Output) Clamped() (Output, bool) {
	if o.SampleRate > MaxSampleRate {
		o.SampleRate = MaxSampleRate
		return o, true
	}
	return o, false
}
