// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlac indicates input without a valid fLaC signature or stream info.
	ErrNotFlac = errors.New("not a FLAC stream")

	// ErrChannelMismatch indicates a frame whose channel count differs from
	// the stream info.
	ErrChannelMismatch = errors.New("flac channel count mismatch")
)
