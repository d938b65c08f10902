// SPDX-License-Identifier: EPL-2.0

package ogg

import "errors"

var (
	// ErrStreamEnded indicates a packet submitted after the EOS packet.
	ErrStreamEnded = errors.New("ogg: packet after end of stream")

	// ErrMissingBOS indicates the first page lacks the BOS flag.
	ErrMissingBOS = errors.New("ogg: first page is not marked beginning of stream")

	// ErrMissingEOS indicates the stream ended without an EOS page.
	ErrMissingEOS = errors.New("ogg: last page is not marked end of stream")

	// ErrUnexpectedBOS indicates a BOS flag past the first page.
	ErrUnexpectedBOS = errors.New("ogg: beginning of stream flag after first page")

	// ErrSerialMismatch indicates pages from more than one logical stream.
	ErrSerialMismatch = errors.New("ogg: serial number changed within stream")

	// ErrSequenceGap indicates a missing or reordered page.
	ErrSequenceGap = errors.New("ogg: page sequence gap")

	// ErrDataAfterEOS indicates pages following the EOS page.
	ErrDataAfterEOS = errors.New("ogg: data after end of stream")
)
