// SPDX-License-Identifier: EPL-2.0

package ogg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gogg "github.com/thesyncim/gopus/container/ogg"

	"github.com/ik5/oggexport/codec"
)

const testSerial = 0xD0001234

func parse(t *testing.T, p codec.Page) *Page {
	t.Helper()

	raw := append(append([]byte(nil), p.Header...), p.Body...)
	page, n, err := gogg.ParsePage(raw)
	require.NoError(t, err)
	require.Equal(t, len(raw), n)

	return page
}

func headerStream(t *testing.T) *Stream {
	t.Helper()

	s := NewStream(testSerial)
	require.NoError(t, s.PacketIn(Packet{Data: bytes.Repeat([]byte{1}, 30)}))
	require.NoError(t, s.PacketIn(Packet{Data: bytes.Repeat([]byte{3}, 100)}))
	require.NoError(t, s.PacketIn(Packet{Data: bytes.Repeat([]byte{5}, 3000)}))

	return s
}

func TestStream_FlushHeaders(t *testing.T) {
	t.Parallel()

	s := headerStream(t)

	first, ok := s.Flush()
	require.True(t, ok)
	p := parse(t, first)
	assert.True(t, p.IsBOS())
	assert.False(t, p.IsEOS())
	assert.Equal(t, uint32(testSerial), p.SerialNumber)
	assert.Equal(t, uint32(0), p.PageSequence)
	assert.Equal(t, []int{30}, p.PacketLengths(), "first page carries only the first packet")
	assert.Equal(t, uint64(0), p.GranulePos)

	second, ok := s.Flush()
	require.True(t, ok)
	p = parse(t, second)
	assert.False(t, p.IsBOS())
	assert.False(t, p.IsContinuation())
	assert.Equal(t, uint32(1), p.PageSequence)
	assert.Equal(t, []int{100, 3000}, p.PacketLengths())

	_, ok = s.Flush()
	assert.False(t, ok)
}

func TestStream_PageOutWaitsForFill(t *testing.T) {
	t.Parallel()

	s := headerStream(t)
	for _, ok := s.Flush(); ok; _, ok = s.Flush() {
	}

	_, ok := s.PageOut()
	assert.False(t, ok, "no data pending")

	var granule int64
	for range 20 {
		granule += 1024
		require.NoError(t, s.PacketIn(Packet{Data: make([]byte, 200), GranulePos: granule}))
		_, ok = s.PageOut()
		require.False(t, ok, "page emitted before nominal fill")
	}

	granule += 1024
	require.NoError(t, s.PacketIn(Packet{Data: make([]byte, 200), GranulePos: granule}))

	page, ok := s.PageOut()
	require.True(t, ok)
	p := parse(t, page)
	assert.Len(t, p.Segments, 21)
	assert.Equal(t, uint64(21*1024), p.GranulePos)
	assert.Equal(t, uint32(2), p.PageSequence)
}

func TestStream_LargePacketContinues(t *testing.T) {
	t.Parallel()

	s := headerStream(t)
	for _, ok := s.Flush(); ok; _, ok = s.Flush() {
	}

	require.NoError(t, s.PacketIn(Packet{Data: make([]byte, 70000), GranulePos: 4096}))

	page, ok := s.PageOut()
	require.True(t, ok)
	p := parse(t, page)
	assert.Len(t, p.Segments, maxSegments)
	assert.False(t, p.IsContinuation())
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), p.GranulePos, "no packet ends on this page")

	page, ok = s.PageOut()
	require.True(t, ok)
	p = parse(t, page)
	assert.True(t, p.IsContinuation())
	assert.Equal(t, uint64(4096), p.GranulePos)
	assert.Len(t, p.Payload, 70000-maxSegments*255)
}

func TestStream_EndOfStream(t *testing.T) {
	t.Parallel()

	s := headerStream(t)
	for _, ok := s.Flush(); ok; _, ok = s.Flush() {
	}

	require.NoError(t, s.PacketIn(Packet{Data: make([]byte, 10), GranulePos: 100, EOS: true}))
	assert.ErrorIs(t, s.PacketIn(Packet{Data: []byte{0}}), ErrStreamEnded)

	page, ok := s.PageOut()
	require.True(t, ok, "EOS forces a page out")
	assert.True(t, page.EndOfStream)
	assert.True(t, parse(t, page).IsEOS())
	assert.True(t, s.EndOfStream())

	_, ok = s.PageOut()
	assert.False(t, ok)
}

func TestStream_EmptyPacket(t *testing.T) {
	t.Parallel()

	s := NewStream(1)
	require.NoError(t, s.PacketIn(Packet{}))

	page, ok := s.Flush()
	require.True(t, ok)
	assert.Equal(t, []int{0}, parse(t, page).PacketLengths())
}
