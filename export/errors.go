// SPDX-License-Identifier: EPL-2.0

package export

import "errors"

var (
	// ErrShortWrite indicates the sink accepted fewer bytes than a page holds.
	ErrShortWrite = errors.New("short write to output")

	// ErrSinkClosed indicates the sink was closed under the encoder.
	ErrSinkClosed = errors.New("output closed")

	// ErrClosed indicates use of an encoder after Close.
	ErrClosed = errors.New("encoder closed")

	// ErrInputEnded indicates audio submitted after the end of input.
	ErrInputEnded = errors.New("input already ended")

	// ErrBatchTooShort indicates a batch holding fewer samples than
	// frames*channels.
	ErrBatchTooShort = errors.New("batch shorter than frame count")

	// ErrInvalidChannels indicates a channel count below one.
	ErrInvalidChannels = errors.New("invalid channel count")

	// ErrNilSink indicates a missing output writer.
	ErrNilSink = errors.New("nil output")

	// ErrNilEngine indicates a missing codec engine.
	ErrNilEngine = errors.New("nil codec engine")
)
