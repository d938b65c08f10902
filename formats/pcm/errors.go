// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrInvalidFormat indicates a missing or empty stream format.
	ErrInvalidFormat = errors.New("invalid pcm format")

	// ErrUnsupportedBitDepth indicates a sample width other than 8, 16, 24
	// or 32 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)
