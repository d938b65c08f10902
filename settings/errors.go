// SPDX-License-Identifier: EPL-2.0

package settings

import "errors"

var (
	// ErrInvalidSampleRate indicates a sample rate below one.
	ErrInvalidSampleRate = errors.New("invalid sample rate")

	// ErrInvalidBitrate indicates a nominal bitrate below one, an unknown
	// mode, or variable bounds that exclude the nominal rate.
	ErrInvalidBitrate = errors.New("invalid bitrate")

	// ErrInvalidStereoMode indicates an unknown channel layout.
	ErrInvalidStereoMode = errors.New("invalid stereo mode")
)
