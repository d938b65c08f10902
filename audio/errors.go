// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrUnknownFormat  = errors.New("unknown audio format")
	ErrInvalidRate    = errors.New("invalid sample rate")
)

// UnknownFormatError reports a format with no registered decoder.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	if e.Format == "" {
		return ErrUnknownFormat.Error() + ": no file extension"
	}
	return fmt.Sprintf("%s: %q", ErrUnknownFormat, e.Format)
}

func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }
