// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jfreymuth/oggvorbis"
)

// Info is what Probe learns from a Vorbis stream.
type Info struct {
	SampleRate int
	Channels   int
	// Bitrates in bits per second as stored in the identification header;
	// zero or negative means unset.
	Nominal int
	Minimum int
	Maximum int

	Vendor   string
	Comments []string

	// Frames is the number of decoded frames per channel.
	Frames int64
	// Peak is the largest absolute sample value.
	Peak float32
}

// Comment returns the value of the first comment named key, compared
// without regard to case.
func (i Info) Comment(key string) (string, bool) {
	for _, c := range i.Comments {
		k, v, ok := strings.Cut(c, "=")
		if ok && strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Probe reads the headers of the Vorbis stream in r and decodes the audio
// to count frames.
func Probe(r io.Reader) (Info, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}

	br := dec.Bitrate()
	ch := dec.CommentHeader()
	info := Info{
		SampleRate: dec.SampleRate(),
		Channels:   dec.Channels(),
		Nominal:    br.Nominal,
		Minimum:    br.Minimum,
		Maximum:    br.Maximum,
		Vendor:     ch.Vendor,
		Comments:   ch.Comments,
	}

	buf := make([]float32, 4096*info.Channels)
	var samples int64
	for {
		n, err := dec.Read(buf)
		samples += int64(n)
		for _, v := range buf[:n] {
			info.Peak = max(info.Peak, v, -v)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return info, fmt.Errorf("decoding vorbis: %w", err)
		}
	}
	info.Frames = samples / int64(info.Channels)

	return info, nil
}
