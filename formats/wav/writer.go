// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/oggexport/audio"
	"github.com/ik5/oggexport/utils"
)

// Writer stores float samples as 16-bit PCM WAV. The RIFF sizes are filled
// in by Close, which is why the output must seek.
type Writer struct {
	enc      *wav.Encoder
	channels int
	buf      *goaudio.IntBuffer
	frames   int64
}

func NewWriter(w io.WriteSeeker, sampleRate, channels int) *Writer {
	return &Writer{
		enc:      wav.NewEncoder(w, sampleRate, 16, channels, formatPCM),
		channels: channels,
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}
}

// Write appends interleaved samples; len(samples) must be a multiple of
// the channel count.
func (w *Writer) Write(samples []float32) error {
	if len(samples)%w.channels != 0 {
		return audio.ErrInvalidDstSize
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]
	for i, v := range samples {
		w.buf.Data[i] = int(utils.Float32ToInt16(v))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav: %w", err)
	}
	w.frames += int64(len(samples) / w.channels)

	return nil
}

// Frames returns the number of frames written.
func (w *Writer) Frames() int64 { return w.frames }

// Close finalizes the headers. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}

// WriteSource copies src into w as 16-bit WAV and returns the number of
// frames written. src is not closed.
func WriteSource(w io.WriteSeeker, src audio.Source) (int64, error) {
	out := NewWriter(w, src.SampleRate(), src.Channels())

	buf := make([]float32, max(src.BufSize()-src.BufSize()%src.Channels(), 1024*src.Channels()))
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if werr := out.Write(buf[:n-n%src.Channels()]); werr != nil {
				return out.Frames(), werr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out.Frames(), fmt.Errorf("reading source: %w", err)
		}
	}

	return out.Frames(), out.Close()
}
