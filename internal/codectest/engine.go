// SPDX-License-Identifier: EPL-2.0

package codectest

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ik5/oggexport/codec"
	"github.com/ik5/oggexport/ogg"
)

// Engine is a deterministic codec.Engine for tests. It cuts input into
// fixed-size blocks, emits one packet per block and paginates through the
// real ogg.Stream, so framing behaves like the libvorbis engine while packet
// contents stay predictable.
//
// Each audio packet holds a zero marker byte followed by one byte per sample
// (frame-major), so packet sizes track the amount of input.
type Engine struct {
	// BlockSize is the number of frames per block (default 256).
	BlockSize int
	// CodebookSize is the length of the codebook header (default 3000).
	CodebookSize int
	// Reject, when set, makes Init fail for matching modes.
	Reject func(codec.Mode) bool

	Mode     codec.Mode
	Serial   uint32
	Comments []string
	// Calls records lifecycle calls in order.
	Calls []string
	// Samples holds every committed sample, per channel.
	Samples [][]float32
	// Packets counts audio packets produced.
	Packets int

	stream   *ogg.Stream
	pending  [][]float32
	buf      [][]float32
	block    int
	last     bool
	ended    bool
	granule  int64
	queue    []ogg.Packet
	inited   bool
	started  bool
	finished bool
}

// New returns an Engine with default sizes.
func New() *Engine {
	return &Engine{BlockSize: 256, CodebookSize: 3000}
}

// Init implements codec.Engine.
func (e *Engine) Init(mode codec.Mode) error {
	e.Calls = append(e.Calls, "init")
	if mode.Channels <= 0 || mode.SampleRate <= 0 || (e.Reject != nil && e.Reject(mode)) {
		e.Calls = append(e.Calls, "clear:info")
		return fmt.Errorf("codectest: %w", codec.ErrInvalidMode)
	}

	e.Mode = mode
	e.inited = true
	e.Samples = make([][]float32, mode.Channels)
	e.pending = make([][]float32, mode.Channels)
	if e.BlockSize <= 0 {
		e.BlockSize = 256
	}

	return nil
}

// Start implements codec.Engine.
func (e *Engine) Start(serial uint32) error {
	if !e.inited {
		return codec.ErrNotStarted
	}

	e.Calls = append(e.Calls, "start")
	e.Serial = serial
	e.stream = ogg.NewStream(serial)
	e.started = true

	return nil
}

// Headers implements codec.Engine.
func (e *Engine) Headers(comments []string) (codec.Packet, codec.Packet, codec.Packet, error) {
	if !e.started {
		return nil, nil, nil, codec.ErrNotStarted
	}

	e.Comments = append([]string(nil), comments...)

	ident := []byte("\x01vorbis")
	ident = append(ident, byte(e.Mode.Channels))
	ident = binary.LittleEndian.AppendUint32(ident, uint32(e.Mode.SampleRate))
	ident = binary.LittleEndian.AppendUint32(ident, uint32(int32(e.Mode.Max)))
	ident = binary.LittleEndian.AppendUint32(ident, uint32(int32(e.Mode.Nominal)))
	ident = binary.LittleEndian.AppendUint32(ident, uint32(int32(e.Mode.Min)))

	comment := []byte("\x03vorbis")
	comment = append(comment, strings.Join(comments, "\n")...)

	codebook := append([]byte("\x05vorbis"), make([]byte, e.CodebookSize)...)

	return ogg.Packet{Data: ident}, ogg.Packet{Data: comment}, ogg.Packet{Data: codebook}, nil
}

// Buffer implements codec.Engine.
func (e *Engine) Buffer(frames int) [][]float32 {
	e.buf = make([][]float32, e.Mode.Channels)
	for c := range e.buf {
		e.buf[c] = make([]float32, frames)
	}
	return e.buf
}

// Wrote implements codec.Engine.
func (e *Engine) Wrote(frames int) error {
	if !e.started {
		return codec.ErrNotStarted
	}

	if frames == 0 {
		e.Calls = append(e.Calls, "wrote:0")
		e.ended = true
		return nil
	}

	for c := range e.pending {
		e.pending[c] = append(e.pending[c], e.buf[c][:frames]...)
		e.Samples[c] = append(e.Samples[c], e.buf[c][:frames]...)
	}

	return nil
}

// BlockOut implements codec.Engine.
func (e *Engine) BlockOut() bool {
	if !e.started || e.finished {
		return false
	}

	avail := len(e.pending[0])
	switch {
	case avail >= e.BlockSize:
		e.block = e.BlockSize
	case e.ended:
		e.block = avail
		e.last = true
	default:
		return false
	}

	return true
}

// Analyze implements codec.Engine.
func (e *Engine) Analyze() error {
	channels := len(e.pending)
	data := make([]byte, 1, 1+e.block*channels)
	for f := range e.block {
		for c := range channels {
			v := max(-1, min(1, e.pending[c][f]))
			data = append(data, byte(int8(v*127)))
		}
	}
	for c := range e.pending {
		e.pending[c] = e.pending[c][e.block:]
	}

	e.granule += int64(e.block)
	e.queue = append(e.queue, ogg.Packet{Data: data, GranulePos: e.granule, EOS: e.last})
	e.Packets++
	if e.last {
		e.finished = true
	}

	return nil
}

// FlushPacket implements codec.Engine.
func (e *Engine) FlushPacket() (codec.Packet, bool) {
	if len(e.queue) == 0 {
		return nil, false
	}

	p := e.queue[0]
	e.queue = e.queue[1:]

	return p, true
}

// PacketIn implements codec.Engine.
func (e *Engine) PacketIn(p codec.Packet) error {
	if e.stream == nil {
		return codec.ErrNotStarted
	}

	pkt, ok := p.(ogg.Packet)
	if !ok {
		return codec.ErrForeignPacket
	}

	return e.stream.PacketIn(pkt)
}

// PageOut implements codec.Engine.
func (e *Engine) PageOut() (codec.Page, bool) {
	if e.stream == nil {
		return codec.Page{}, false
	}
	return e.stream.PageOut()
}

// Flush implements codec.Engine.
func (e *Engine) Flush() (codec.Page, bool) {
	if e.stream == nil {
		return codec.Page{}, false
	}
	return e.stream.Flush()
}

// Clear implements codec.Engine.
func (e *Engine) Clear() {
	if e.started {
		e.Calls = append(e.Calls, "clear:stream", "clear:block", "clear:dsp")
		e.stream = nil
		e.started = false
	}
	if e.inited {
		e.Calls = append(e.Calls, "clear:info")
		e.inited = false
	}
}

// Count returns how many times call appears in Calls.
func (e *Engine) Count(call string) int {
	n := 0
	for _, c := range e.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Frames returns the number of frames committed so far.
func (e *Engine) Frames() int {
	if len(e.Samples) == 0 {
		return 0
	}
	return len(e.Samples[0])
}
