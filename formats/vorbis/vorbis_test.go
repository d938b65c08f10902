// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader hands out values in reads of at most chunk.
type fakeReader struct {
	rate, channels int
	data           []float32
	chunk          int
	err            error
}

func (f *fakeReader) SampleRate() int { return f.rate }
func (f *fakeReader) Channels() int   { return f.channels }

func (f *fakeReader) Read(p []float32) (int, error) {
	if len(f.data) == 0 {
		if f.err != nil {
			return 0, f.err
		}
		return 0, io.EOF
	}

	n := copy(p[:min(len(p), f.chunk)], f.data)
	f.data = f.data[n:]

	return n, nil
}

type closer struct{ closed bool }

func (c *closer) Close() error { c.closed = true; return nil }

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	dec := &fakeReader{rate: 44100, channels: 2, data: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, chunk: 4}
	s := &source{dec: dec, channels: 2}
	assert.Equal(t, 44100, s.SampleRate())
	assert.Equal(t, 2, s.Channels())

	buf := make([]float32, 5)
	n, err := s.ReadSamples(buf)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4}, buf[:n])

	n, err = s.ReadSamples(buf)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.6}, buf[:n])

	n, err = s.ReadSamples(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)

	n, err = s.ReadSamples(buf)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF, "stays at EOF")
}

func TestSource_ShortDst(t *testing.T) {
	t.Parallel()

	s := &source{dec: &fakeReader{channels: 2, data: []float32{1, 2}, chunk: 8}, channels: 2}
	n, err := s.ReadSamples(make([]float32, 1))
	assert.Zero(t, n)
	assert.NoError(t, err)
}

func TestSource_DecodeError(t *testing.T) {
	t.Parallel()

	boom := errors.New("bad packet")
	s := &source{dec: &fakeReader{channels: 1, err: boom}, channels: 1}

	_, err := s.ReadSamples(make([]float32, 8))
	assert.ErrorIs(t, err, boom)
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	c := &closer{}
	s := &source{dec: &fakeReader{channels: 1}, channels: 1, closer: c}
	require.NoError(t, s.Close())
	assert.True(t, c.closed)

	assert.NoError(t, (&source{}).Close())
}

func TestDecode_NotVorbis(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(strings.NewReader("RIFF....WAVEfmt "))
	assert.ErrorIs(t, err, ErrNotVorbis)

	_, err = Probe(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNotVorbis)
}

func TestInfo_Comment(t *testing.T) {
	t.Parallel()

	info := Info{Comments: []string{"ENCODER=oggexport", "title=Intro", "TITLE=Second", "broken"}}

	v, ok := info.Comment("TITLE")
	assert.True(t, ok)
	assert.Equal(t, "Intro", v)

	v, ok = info.Comment("encoder")
	assert.True(t, ok)
	assert.Equal(t, "oggexport", v)

	_, ok = info.Comment("broken")
	assert.False(t, ok)
}
