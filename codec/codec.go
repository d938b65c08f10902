// SPDX-License-Identifier: EPL-2.0

package codec

// Unbounded marks an unset minimum or maximum bitrate in a Mode.
const Unbounded = -1

// Management selects the bitrate management the engine applies after the
// mode has been chosen.
type Management int

const (
	// ManageAverage keeps the average rate at the nominal value. This is
	// what managed setup does by default, so engines issue no extra control.
	ManageAverage Management = iota
	// ManageOff disables rate management entirely (true VBR).
	ManageOff
)

// Mode is the encoding mode requested from an Engine. Bitrates are in bits
// per second; Min and Max may be Unbounded.
type Mode struct {
	Channels   int
	SampleRate int
	Max        int
	Nominal    int
	Min        int
	Management Management
}

// Packet is a compressed unit produced by an Engine. Its representation is
// private to the engine that produced it; the only valid use is handing it
// back to the same engine's PacketIn.
type Packet any

// Page is one framed container page as written to the output.
type Page struct {
	Header      []byte
	Body        []byte
	EndOfStream bool
}

// Len is the number of bytes the page occupies in the output.
func (p Page) Len() int { return len(p.Header) + len(p.Body) }

// Engine is the psychoacoustic encoder and container multiplexer pair an
// export drives. Calls are made from a single goroutine.
//
// The acquisition order is Init (encoder info), Start (analysis state, block
// scratch, packet stream). Clear releases whatever was acquired in reverse
// order and must be safe to call after a failed Init or Start.
type Engine interface {
	// Init selects the encoding mode. It returns an error wrapping
	// ErrInvalidMode when the combination is unsupported, in which case the
	// engine holds no resources.
	Init(mode Mode) error
	// Start allocates analysis and block state and opens the packet stream
	// with the given serial number.
	Start(serial uint32) error
	// Headers builds the identification, comment and codebook packets.
	Headers(comments []string) (ident, comment, codebook Packet, err error)

	// Buffer exposes per-channel storage for the next frames samples.
	Buffer(frames int) [][]float32
	// Wrote commits frames samples from the last Buffer call. Zero marks
	// the end of input.
	Wrote(frames int) error
	// BlockOut reports whether a block is ready for analysis.
	BlockOut() bool
	// Analyze runs analysis on the current block and registers it for
	// bitrate accounting.
	Analyze() error
	// FlushPacket returns the next finished packet, if any.
	FlushPacket() (Packet, bool)

	// PacketIn submits a packet to the container stream.
	PacketIn(p Packet) error
	// PageOut returns a page once enough data has accumulated.
	PageOut() (Page, bool)
	// Flush forces out a page with whatever data is pending.
	Flush() (Page, bool)

	// Clear releases all resources acquired by Init and Start.
	Clear()
}
