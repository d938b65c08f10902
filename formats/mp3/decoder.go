// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/oggexport/audio"
	"github.com/ik5/oggexport/utils"
)

// channels is fixed: go-mp3 always produces 16-bit little-endian stereo.
const channels = 2

// mp3Reader is the part of gomp3.Decoder a source needs.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec    mp3Reader
	buf    []byte
	carry  int // bytes of an incomplete sample kept at the start of buf
	closer io.Closer
	done   bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) BufSize() int    { return 4096 * channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		buf := make([]byte, need)
		copy(buf, s.buf[:s.carry])
		s.buf = buf
	}
	s.buf = s.buf[:need]

	n, err := s.dec.Read(s.buf[s.carry:])
	n += s.carry

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = utils.IntToFloat32(int(v), 16)
	}
	s.carry = copy(s.buf, s.buf[samples*2:n])

	switch {
	case errors.Is(err, io.EOF):
		s.done = true
		return samples, io.EOF
	case err != nil:
		return samples, fmt.Errorf("decoding mp3: %w", err)
	}

	return samples, nil
}

type Decoder struct{}

// Decode parses the first MP3 frame of r. If r is an io.Closer, closing
// the source closes it.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	s := &source{dec: dec}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}

	return s, nil
}
