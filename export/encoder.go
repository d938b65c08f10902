// SPDX-License-Identifier: EPL-2.0

package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/ik5/oggexport/codec"
	"github.com/ik5/oggexport/settings"
	"github.com/ik5/oggexport/utils"
)

// Encoder streams float audio into an Ogg Vorbis file. It owns its engine
// for its whole life and writes pages to the sink as soon as they are
// complete. An Encoder is not safe for concurrent use.
type Encoder struct {
	w        io.Writer
	engine   codec.Engine
	log      *slog.Logger
	rng      *rand.Rand
	channels int
	settings settings.Output
	serial   uint32

	state State
	ok    bool
	ended bool
	eos   bool
	err   error
	stats Stats
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Encoder) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRand sets the source of stream serial numbers. The default is seeded
// from the wall clock.
func WithRand(r *rand.Rand) Option {
	return func(e *Encoder) {
		if r != nil {
			e.rng = r
		}
	}
}

// New sets up the engine for channels and out, then writes the header pages
// to w. The caller keeps ownership of w and must not write to it until the
// Encoder is closed.
//
// When the rate in out exceeds settings.MaxSampleRate it is clamped; the
// settings actually used are available from Settings. On error every engine
// resource acquired so far has been released.
func New(w io.Writer, engine codec.Engine, channels int, out settings.Output, opts ...Option) (*Encoder, error) {
	switch {
	case w == nil:
		return nil, ErrNilSink
	case engine == nil:
		return nil, ErrNilEngine
	case channels < 1:
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	e := &Encoder{
		w:        w,
		engine:   engine,
		log:      slog.Default(),
		channels: channels,
		state:    Created,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		now := uint64(time.Now().UnixNano())
		e.rng = rand.New(rand.NewPCG(now, now>>1))
	}

	if err := e.setup(out); err != nil {
		e.state = Closed
		return nil, err
	}

	if err := e.emitHeaders(); err != nil {
		e.engine.Clear()
		e.state = Closed
		return nil, err
	}

	e.ok = true
	e.state = HeadersEmitted

	return e, nil
}

// Submit encodes frames interleaved frames from batch, scaling every sample
// by gain. Submitting zero frames marks the end of input and makes the
// engine emit its final blocks; Close does this itself. Once input has
// ended, further zero-frame submits do nothing and audio is rejected with
// ErrInputEnded.
//
// After a write to the sink fails, Submit keeps returning that error and
// does no further work.
func (e *Encoder) Submit(batch []float32, frames int, gain float32) error {
	if e.state == Closed {
		return ErrClosed
	}
	if e.err != nil {
		return e.err
	}
	if frames < 0 || len(batch) < frames*e.channels {
		return fmt.Errorf("%w: %d samples for %d frames of %d channels",
			ErrBatchTooShort, len(batch), frames, e.channels)
	}
	if e.ended {
		if frames > 0 {
			return ErrInputEnded
		}
		return nil
	}

	if e.state == HeadersEmitted && frames > 0 {
		e.state = Encoding
	}

	if err := e.encode(batch, frames, gain); err != nil {
		e.err = err
		return err
	}

	return nil
}

func (e *Encoder) encode(batch []float32, frames int, gain float32) error {
	if frames > 0 {
		utils.Deinterleave(e.engine.Buffer(frames), batch, frames, gain)
	}

	if frames == 0 {
		e.ended = true
	}
	if err := e.engine.Wrote(frames); err != nil {
		return fmt.Errorf("committing samples: %w", err)
	}
	e.stats.Frames += int64(frames)

	for e.engine.BlockOut() {
		if err := e.engine.Analyze(); err != nil {
			return fmt.Errorf("analysing block: %w", err)
		}

		for p, ok := e.engine.FlushPacket(); ok; p, ok = e.engine.FlushPacket() {
			e.stats.Packets++
			if err := e.deliverPacket(p); err != nil {
				return err
			}
		}
	}

	return nil
}

// deliverPacket hands p to the container and writes every page that became
// complete. Draining stops at the end-of-stream page.
func (e *Encoder) deliverPacket(p codec.Packet) error {
	if err := e.engine.PacketIn(p); err != nil {
		return fmt.Errorf("submitting packet: %w", err)
	}

	for !e.eos {
		page, ok := e.engine.PageOut()
		if !ok {
			break
		}

		if err := e.writePage(page); err != nil {
			e.log.Error("failed writing to output", "serial", e.serial, "error", err)
			return err
		}

		if page.EndOfStream {
			e.eos = true
		}
	}

	return nil
}

func (e *Encoder) writePage(p codec.Page) error {
	n, err := e.w.Write(p.Header)
	if err == nil && n == len(p.Header) {
		var m int
		m, err = e.w.Write(p.Body)
		n += m
	}

	if err != nil || n != p.Len() {
		return writeError(n, p.Len(), err)
	}

	e.stats.Pages++
	e.stats.Bytes += int64(n)

	return nil
}

func writeError(n, want int, err error) error {
	switch {
	case errors.Is(err, fs.ErrClosed), errors.Is(err, io.ErrClosedPipe):
		return fmt.Errorf("%w: %w", ErrSinkClosed, err)
	case err != nil:
		return fmt.Errorf("%w: wrote %d of %d bytes: %w", ErrShortWrite, n, want, err)
	default:
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrShortWrite, n, want)
	}
}

// Close flushes the blocks still held by the engine, writes the final pages
// and releases the engine. The flush is skipped when an earlier write
// failed. Close returns the first error the Encoder met; calling it again
// does nothing and returns nil.
func (e *Encoder) Close() error {
	if e.state == Closed {
		return nil
	}

	if !e.ok {
		e.state = Closed
		return nil
	}

	e.state = Finalizing
	if e.err == nil && !e.ended {
		if err := e.encode(nil, 0, 1); err != nil {
			e.err = err
		}
	}

	e.engine.Clear()
	e.ok = false
	e.state = Closed

	if e.err == nil && !e.eos {
		e.log.Warn("stream finished without end-of-stream page", "serial", e.serial)
	}

	e.log.Debug("encoder closed",
		"serial", e.serial,
		"frames", e.stats.Frames,
		"packets", e.stats.Packets,
		"pages", e.stats.Pages,
		"bytes", e.stats.Bytes)

	return e.err
}

// Settings returns the settings in effect, after sample rate clamping.
func (e *Encoder) Settings() settings.Output { return e.settings }

// Channels returns the channel count fixed at setup.
func (e *Encoder) Channels() int { return e.channels }

// SampleRate returns the effective sample rate.
func (e *Encoder) SampleRate() int { return e.settings.SampleRate }

// Serial returns the stream serial number.
func (e *Encoder) Serial() uint32 { return e.serial }

// State returns the lifecycle state.
func (e *Encoder) State() State { return e.state }

// Stats returns the running totals.
func (e *Encoder) Stats() Stats { return e.stats }

// EndOfStream reports whether the end-of-stream page has been written.
func (e *Encoder) EndOfStream() bool { return e.eos }

// Err returns the first error met while encoding, if any.
func (e *Encoder) Err() error { return e.err }
