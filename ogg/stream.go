// SPDX-License-Identifier: EPL-2.0

package ogg

import (
	gogg "github.com/thesyncim/gopus/container/ogg"

	"github.com/ik5/oggexport/codec"
)

const (
	// pageFill is the nominal body size after which a page is emitted.
	pageFill = 4096
	// maxSegments is the capacity of a page's segment table.
	maxSegments = 255
	// headerSize is the fixed part of a page header.
	headerSize = 27
	// noGranule is stored for pages on which no packet ends.
	noGranule = -1
)

// Packet is one packet submitted to a Stream.
type Packet struct {
	Data []byte
	// GranulePos is the stream position at the end of the packet.
	GranulePos int64
	// EOS marks the last packet of the logical stream.
	EOS bool
}

// Stream welds packets into pages of one logical bitstream, following the
// same pagination rules as libogg so that output is interchangeable with it.
type Stream struct {
	serial   uint32
	body     []byte
	lacing   []byte
	granules []int64

	sequence   uint32
	granulePos int64

	started    bool // BOS page emitted
	midPacket  bool // next page continues a packet
	eos        bool // EOS packet submitted
	eosEmitted bool
}

// NewStream returns a Stream for the logical bitstream serial.
func NewStream(serial uint32) *Stream {
	return &Stream{serial: serial}
}

// PacketIn appends p to the stream. Packets after an EOS packet are rejected.
func (s *Stream) PacketIn(p Packet) error {
	if s.eos {
		return ErrStreamEnded
	}

	n := len(p.Data)
	s.body = append(s.body, p.Data...)
	for range n / 255 {
		s.lacing = append(s.lacing, 255)
		s.granules = append(s.granules, noGranule)
	}
	s.lacing = append(s.lacing, byte(n%255))
	s.granules = append(s.granules, p.GranulePos)

	s.granulePos = p.GranulePos
	s.eos = p.EOS

	return nil
}

// PageOut returns the next page if one is complete: the body passed the
// nominal size, the segment table is full, the stream ended, or it is the
// initial page.
func (s *Stream) PageOut() (codec.Page, bool) {
	pending := len(s.lacing) > 0
	force := (s.eos && pending) ||
		len(s.body) > pageFill ||
		len(s.lacing) >= maxSegments ||
		(pending && !s.started)

	return s.page(force)
}

// Flush returns a page holding whatever data is pending, regardless of
// size. It returns false when nothing is pending.
func (s *Stream) Flush() (codec.Page, bool) {
	return s.page(true)
}

// EndOfStream reports whether the EOS page has been emitted.
func (s *Stream) EndOfStream() bool { return s.eosEmitted }

func (s *Stream) page(force bool) (codec.Page, bool) {
	maxVals := min(len(s.lacing), maxSegments)
	if maxVals == 0 {
		return codec.Page{}, false
	}

	var (
		vals    int
		granule int64 = noGranule
	)

	if !s.started {
		// The first page carries only the first packet.
		granule = 0
		for vals < maxVals {
			done := s.lacing[vals] < 255
			vals++
			if done {
				break
			}
		}
	} else {
		acc, packetsDone, justDone := 0, 0, 0
		for ; vals < maxVals; vals++ {
			if acc > pageFill && justDone >= 4 {
				force = true
				break
			}
			acc += int(s.lacing[vals])
			if s.lacing[vals] < 255 {
				granule = s.granules[vals]
				packetsDone++
				justDone = packetsDone
			} else {
				justDone = 0
			}
		}
		if vals == maxSegments {
			force = true
		}
	}

	if !force {
		return codec.Page{}, false
	}

	var flags byte
	if s.midPacket {
		flags |= gogg.PageFlagContinuation
	}
	if !s.started {
		flags |= gogg.PageFlagBOS
	}
	if s.eos && vals == len(s.lacing) {
		flags |= gogg.PageFlagEOS
	}

	bodyLen := 0
	for _, v := range s.lacing[:vals] {
		bodyLen += int(v)
	}

	p := gogg.Page{
		HeaderType:   flags,
		GranulePos:   uint64(granule),
		SerialNumber: s.serial,
		PageSequence: s.sequence,
		Segments:     append([]byte(nil), s.lacing[:vals]...),
		Payload:      s.body[:bodyLen],
	}
	raw := p.Encode()
	split := headerSize + vals

	s.midPacket = s.lacing[vals-1] == 255
	s.body = append(s.body[:0], s.body[bodyLen:]...)
	s.lacing = append(s.lacing[:0], s.lacing[vals:]...)
	s.granules = append(s.granules[:0], s.granules[vals:]...)
	s.sequence++
	s.started = true
	eos := flags&gogg.PageFlagEOS != 0
	if eos {
		s.eosEmitted = true
	}

	return codec.Page{
		Header:      raw[:split:split],
		Body:        raw[split:],
		EndOfStream: eos,
	}, true
}
