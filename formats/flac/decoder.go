// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/ik5/oggexport/audio"
	"github.com/ik5/oggexport/utils"
)

type source struct {
	stream   *flac.Stream
	rate     int
	channels int
	bitDepth int

	// pending holds decoded, interleaved samples not yet returned.
	pending []float32
	done    bool
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BitDepth() int   { return s.bitDepth }
func (s *source) BufSize() int    { return 4096 * s.channels }

// Close closes the stream, and the reader it was created from when that is
// an io.Closer.
func (s *source) Close() error {
	return s.stream.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	for len(s.pending) == 0 {
		if s.done {
			return 0, io.EOF
		}
		if err := s.next(); err != nil {
			return 0, err
		}
	}

	n := copy(dst, s.pending)
	s.pending = s.pending[n:]

	return n, nil
}

// next decodes one FLAC frame into pending.
func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if errors.Is(err, io.EOF) {
		s.done = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("decoding flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream %d", ErrChannelMismatch, len(f.Subframes), s.channels)
	}

	block := int(f.BlockSize)
	s.pending = s.pending[:0]
	for i := range block {
		for _, sub := range f.Subframes {
			s.pending = append(s.pending, utils.IntToFloat32(int(sub.Samples[i]), s.bitDepth))
		}
	}

	return nil
}

type Decoder struct{}

// Decode reads the FLAC stream info of r.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlac, err)
	}

	info := stream.Info
	return &source{
		stream:   stream,
		rate:     int(info.SampleRate),
		channels: int(info.NChannels),
		bitDepth: int(info.BitsPerSample),
	}, nil
}
