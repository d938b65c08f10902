// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/oggexport/utils"
)

// Reader is the part of the go-audio decoders a Source reads from.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source adapts a go-audio integer PCM decoder to audio.Source.
type Source struct {
	dec      Reader
	format   *goaudio.Format
	bitDepth int
	buf      *goaudio.IntBuffer
	closer   io.Closer
	offset   int
	done     bool
}

// NewSource wraps dec. bitDepth is the width of the stored samples and sets
// the normalization scale.
func NewSource(dec Reader, format *goaudio.Format, bitDepth int) (*Source, error) {
	if format == nil || format.NumChannels < 1 || format.SampleRate < 1 {
		return nil, ErrInvalidFormat
	}

	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrUnsupportedBitDepth, bitDepth)
	}

	return &Source{dec: dec, format: format, bitDepth: bitDepth}, nil
}

// CloseWith makes Close close c.
func (s *Source) CloseWith(c io.Closer) *Source {
	s.closer = c
	return s
}

// Unsigned marks the samples as unsigned, centred on half scale, the way
// 8-bit WAV stores them.
func (s *Source) Unsigned() *Source {
	s.offset = 1 << (s.bitDepth - 1)
	return s
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:           make([]int, len(dst)),
			Format:         s.format,
			SourceBitDepth: s.bitDepth,
		}
	}
	s.buf.Data = s.buf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.buf)
	for i, v := range s.buf.Data[:n] {
		dst[i] = utils.IntToFloat32(v-s.offset, s.bitDepth)
	}

	switch {
	case errors.Is(err, io.EOF) || (err == nil && n < len(dst)):
		s.done = true
		if n == 0 {
			return 0, io.EOF
		}
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("decoding pcm: %w", err)
	}

	return n, nil
}

// ReadSeeker returns r when it can seek and otherwise buffers it in
// memory, which the go-audio decoders require.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
