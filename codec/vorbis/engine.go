// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"strings"

	libogg "github.com/tryphon/go-ogg"
	libvorbis "github.com/tryphon/go-vorbis"
	"github.com/tryphon/go-vorbis/vorbisenc"

	"github.com/ik5/oggexport/codec"
)

// stage records how far setup got, so Clear releases only what exists.
type stage int

const (
	stageNone stage = iota
	stageInfo
	stageStream
)

// Engine drives libvorbis and libogg through cgo. The zero value is not
// usable; call NewEngine. Pages returned by PageOut and Flush are copies and
// stay valid after later calls.
type Engine struct {
	vi  libvorbis.Info
	vc  libvorbis.Comment
	vd  libvorbis.DspState
	vb  libvorbis.Block
	oss libogg.StreamState

	op      libogg.Packet
	og      libogg.Page
	headers [3]libogg.Packet

	stage   stage
	comment bool
}

var _ codec.Engine = (*Engine)(nil)

// NewEngine returns an engine with no libvorbis state allocated.
func NewEngine() *Engine {
	return &Engine{}
}

// Init configures the encoder with managed bitrate setup. For ManageAverage
// no further control call is issued: managed setup already enables bitrate
// management, and with min, nominal and max equal it holds the average at
// the nominal rate. ManageOff turns management off so min and max only steer
// mode selection.
func (e *Engine) Init(mode codec.Mode) error {
	if e.stage != stageNone {
		return fmt.Errorf("%w: engine already initialized", codec.ErrInvalidMode)
	}

	e.vi.Init()

	ret := vorbisenc.SetupManaged(&e.vi, mode.Channels, mode.SampleRate, mode.Max, mode.Nominal, mode.Min)
	if ret == 0 && mode.Management == codec.ManageOff {
		ret = vorbisenc.Ctl(&e.vi, libvorbis.ECTL_RATEMANAGE2_SET, nil)
	}
	if ret == 0 {
		ret = vorbisenc.SetupInit(&e.vi)
	}

	if ret != 0 {
		e.vi.Clear()
		return fmt.Errorf("%w: libvorbis returned %d for %d channels at %d Hz",
			codec.ErrInvalidMode, ret, mode.Channels, mode.SampleRate)
	}

	e.stage = stageInfo

	return nil
}

// Start allocates the analysis and block state and opens the logical
// bitstream.
func (e *Engine) Start(serial uint32) error {
	if e.stage != stageInfo {
		return codec.ErrNotStarted
	}

	libvorbis.AnalysisInit(&e.vd, &e.vi)
	e.vb.Init(&e.vd)
	e.oss.Init(int32(serial))
	e.stage = stageStream

	return nil
}

// Headers builds the three header packets. Each comment must have the form
// KEY=value; entries without '=' are stored with an empty value.
func (e *Engine) Headers(comments []string) (codec.Packet, codec.Packet, codec.Packet, error) {
	if e.stage != stageStream {
		return nil, nil, nil, codec.ErrNotStarted
	}

	if e.comment {
		e.vc.Clear()
	}
	e.vc.Init()
	e.comment = true
	for _, c := range comments {
		key, value, _ := strings.Cut(c, "=")
		e.vc.AddTag(key, value)
	}

	libvorbis.AnalysisHeaderOut(&e.vd, &e.vc, &e.headers[0], &e.headers[1], &e.headers[2])

	return &e.headers[0], &e.headers[1], &e.headers[2], nil
}

// Buffer exposes the per-channel analysis buffer for frames frames.
func (e *Engine) Buffer(frames int) [][]float32 {
	return libvorbis.AnalysisBuffer(&e.vd, frames)
}

// Wrote commits frames frames; zero marks the end of input.
func (e *Engine) Wrote(frames int) error {
	if e.stage != stageStream {
		return codec.ErrNotStarted
	}

	libvorbis.AnalysisWrote(&e.vd, frames)

	return nil
}

// BlockOut reports whether a block is ready for analysis.
func (e *Engine) BlockOut() bool {
	return e.stage == stageStream && libvorbis.AnalysisBlockOut(&e.vd, &e.vb) == 1
}

// Analyze encodes the current block and hands it to the bitrate manager.
func (e *Engine) Analyze() error {
	libvorbis.Analysis(&e.vb, nil)
	libvorbis.BitrateAddBlock(&e.vb)

	return nil
}

// FlushPacket returns the next packet released by the bitrate manager. The
// packet is only valid until the next call.
func (e *Engine) FlushPacket() (codec.Packet, bool) {
	if libvorbis.BitrateFlushPacket(&e.vd, &e.op) == 0 {
		return nil, false
	}
	return &e.op, true
}

// PacketIn submits a packet produced by this engine to the stream.
func (e *Engine) PacketIn(p codec.Packet) error {
	if e.stage != stageStream {
		return codec.ErrNotStarted
	}

	pkt, ok := p.(*libogg.Packet)
	if !ok {
		return fmt.Errorf("%w: %T", codec.ErrForeignPacket, p)
	}
	e.oss.PacketIn(pkt)

	return nil
}

// PageOut returns the next complete page.
func (e *Engine) PageOut() (codec.Page, bool) {
	if e.stage != stageStream || !e.oss.PageOut(&e.og) {
		return codec.Page{}, false
	}
	return e.page(), true
}

// Flush returns a page with everything pending.
func (e *Engine) Flush() (codec.Page, bool) {
	if e.stage != stageStream || !e.oss.Flush(&e.og) {
		return codec.Page{}, false
	}
	return e.page(), true
}

func (e *Engine) page() codec.Page {
	return codec.Page{
		Header:      append([]byte(nil), e.og.Header...),
		Body:        append([]byte(nil), e.og.Body...),
		EndOfStream: e.og.Eos(),
	}
}

// Clear releases stream, block, analysis, comment and info state in that
// order. It is safe to call more than once.
func (e *Engine) Clear() {
	if e.stage >= stageStream {
		e.oss.Clear()
		e.vb.Clear()
		e.vd.Clear()
	}
	if e.comment {
		e.vc.Clear()
		e.comment = false
	}
	if e.stage >= stageInfo {
		e.vi.Clear()
	}
	e.stage = stageNone
}
