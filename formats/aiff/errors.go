// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input has no AIFF FORM header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout indicates a missing COMM chunk or an unusable
	// sample format.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
