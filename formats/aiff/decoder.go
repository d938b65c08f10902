// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/oggexport/audio"
	"github.com/ik5/oggexport/formats/pcm"
)

type Decoder struct{}

// Decode validates the FORM header of r and returns a source over its
// sound data. Readers that cannot seek are buffered in memory. If r is an
// io.Closer, closing the source closes it.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	src, err := pcm.NewSource(dec, format, int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	if c, ok := r.(io.Closer); ok {
		src.CloseWith(c)
	}

	return src, nil
}
