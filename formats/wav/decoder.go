// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/oggexport/audio"
	"github.com/ik5/oggexport/formats/pcm"
)

// formatPCM is the WAVE format tag for integer PCM.
const formatPCM = 1

type Decoder struct{}

// Decode reads the RIFF header of r and returns a source over its integer
// PCM data. Readers that cannot seek are buffered in memory. If r is an
// io.Closer, closing the source closes it.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	if dec.WavAudioFormat != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	src, err := pcm.NewSource(dec, dec.Format(), int(dec.BitDepth))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if dec.BitDepth == 8 {
		src.Unsigned()
	}

	if c, ok := r.(io.Closer); ok {
		src.CloseWith(c)
	}

	return src, nil
}
