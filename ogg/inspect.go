// SPDX-License-Identifier: EPL-2.0

package ogg

import (
	"errors"
	"fmt"
	"io"
)

// PageSummary describes one page of an inspected stream.
type PageSummary struct {
	Sequence   uint32
	GranulePos int64
	Size       int
	BOS        bool
	EOS        bool
	Continued  bool
	// PacketsDone is the number of packets completed up to and including
	// this page.
	PacketsDone int
}

// Report is the result of Inspect.
type Report struct {
	Serial       uint32
	Bytes        int64
	Packets      int
	FinalGranule int64
	EOS          bool
	Pages        []PageSummary
}

// HeaderPages returns how many leading pages it takes to complete the first
// n packets, and whether packet n starts on a fresh page.
func (r Report) HeaderPages(n int) (int, bool) {
	for i, p := range r.Pages {
		if p.PacketsDone >= n {
			fresh := p.PacketsDone == n
			if fresh && i+1 < len(r.Pages) {
				fresh = !r.Pages[i+1].Continued
			}
			return i + 1, fresh
		}
	}
	return len(r.Pages), false
}

// Inspect reads a whole single-stream Ogg file and checks its framing: a
// single serial number, BOS on the first page only, contiguous sequence
// numbers, and an EOS page at the end with nothing after it. The report is
// filled as far as the stream could be read, even when an error is returned.
func Inspect(r io.Reader) (Report, error) {
	var (
		rep     Report
		pr      = NewReader(r)
		partial bool
	)

	for {
		p, err := pr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rep, err
		}

		if len(rep.Pages) == 0 {
			if !p.IsBOS() {
				return rep, ErrMissingBOS
			}
			rep.Serial = p.SerialNumber
		} else {
			switch {
			case rep.EOS:
				return rep, ErrDataAfterEOS
			case p.SerialNumber != rep.Serial:
				return rep, fmt.Errorf("%w: %#x then %#x", ErrSerialMismatch, rep.Serial, p.SerialNumber)
			case p.PageSequence != uint32(len(rep.Pages)):
				return rep, fmt.Errorf("%w: got %d, want %d", ErrSequenceGap, p.PageSequence, len(rep.Pages))
			case p.IsBOS():
				return rep, fmt.Errorf("%w: page %d", ErrUnexpectedBOS, p.PageSequence)
			}
		}

		for _, v := range p.Segments {
			if v < 255 {
				rep.Packets++
			}
		}
		if len(p.Segments) > 0 {
			partial = p.Segments[len(p.Segments)-1] == 255
		}

		granule := int64(p.GranulePos)
		if granule != noGranule {
			rep.FinalGranule = granule
		}

		rep.Bytes += int64(headerSize + len(p.Segments) + len(p.Payload))
		rep.EOS = p.IsEOS()
		rep.Pages = append(rep.Pages, PageSummary{
			Sequence:    p.PageSequence,
			GranulePos:  granule,
			Size:        headerSize + len(p.Segments) + len(p.Payload),
			BOS:         p.IsBOS(),
			EOS:         p.IsEOS(),
			Continued:   p.IsContinuation(),
			PacketsDone: rep.Packets,
		})
	}

	if !rep.EOS {
		return rep, ErrMissingEOS
	}
	if partial {
		return rep, fmt.Errorf("%w: last packet unterminated", ErrMissingEOS)
	}

	return rep, nil
}
