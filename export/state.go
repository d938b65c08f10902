// SPDX-License-Identifier: EPL-2.0

package export

import "fmt"

// State is the lifecycle stage of an Encoder.
type State int

const (
	// Created holds no codec resources.
	Created State = iota
	// HeadersEmitted means setup succeeded and the header pages are written.
	HeadersEmitted
	// Encoding means audio has been submitted.
	Encoding
	// Finalizing is entered while Close flushes the trailing blocks.
	Finalizing
	// Closed is terminal; every codec resource has been released.
	Closed
)

func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case HeadersEmitted:
		return "headers-emitted"
	case Encoding:
		return "encoding"
	case Finalizing:
		return "finalizing"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats counts what an Encoder has produced so far.
type Stats struct {
	Frames  int64
	Packets int
	Pages   int
	Bytes   int64
}
