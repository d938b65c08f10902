// SPDX-License-Identifier: EPL-2.0

package codec

import "errors"

var (
	// ErrInvalidMode indicates the engine rejected the channel, rate and
	// bitrate combination.
	ErrInvalidMode = errors.New("invalid parameters for bitrate")

	// ErrNotStarted indicates a stream operation before Start.
	ErrNotStarted = errors.New("engine not started")

	// ErrForeignPacket indicates a packet not produced by the engine.
	ErrForeignPacket = errors.New("packet from a different engine")
)
