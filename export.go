// SPDX-License-Identifier: EPL-2.0

package oggexport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/ik5/oggexport/audio"
	"github.com/ik5/oggexport/codec"
	"github.com/ik5/oggexport/export"
	"github.com/ik5/oggexport/settings"
)

// BatchFrames is the default number of frames handed to the encoder per
// submission.
const BatchFrames = 1024

type config struct {
	log     *slog.Logger
	rng     *rand.Rand
	gain    float32
	batch   int
	quick   bool
	quality audio.Quality
}

// Option adjusts an Export.
type Option func(*config)

// WithLogger sets the logger for the export and its encoder. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithGain scales every sample before encoding. The default is 1.
func WithGain(g float32) Option {
	return func(c *config) { c.gain = g }
}

// WithBatchFrames sets the frames per submission. Values below 1 are
// ignored.
func WithBatchFrames(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.batch = n
		}
	}
}

// WithQuickResample uses cubic interpolation instead of the polyphase
// resampler when the source rate differs from the output rate.
func WithQuickResample() Option {
	return func(c *config) { c.quick = true }
}

// WithResampleQuality sets the polyphase resampler preset.
func WithResampleQuality(q audio.Quality) Option {
	return func(c *config) { c.quality = q }
}

// WithRand sets the source of the stream serial number.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// Result summarizes a finished export.
type Result struct {
	// Settings are the settings in effect after defaults and clamping.
	Settings settings.Output
	Serial   uint32
	export.Stats
	Elapsed time.Duration
}

// Export encodes src into w as Ogg Vorbis using eng. The source is remixed
// to the channel layout of out and resampled to the effective output rate
// when needed. Export stops early when ctx is done; the encoder is closed
// in every case, so w always ends with a complete stream unless a write
// failed. src is not closed.
func Export(ctx context.Context, src audio.Source, w io.Writer, eng codec.Engine, out settings.Output, opts ...Option) (Result, error) {
	cfg := config{
		log:     slog.Default(),
		gain:    1,
		batch:   BatchFrames,
		quality: audio.QualityHigh,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	out = out.WithDefaults()
	channels := out.StereoMode.Channels()

	encOpts := []export.Option{export.WithLogger(cfg.log)}
	if cfg.rng != nil {
		encOpts = append(encOpts, export.WithRand(cfg.rng))
	}

	enc, err := export.New(w, eng, channels, out, encOpts...)
	if err != nil {
		return Result{}, err
	}

	res := Result{Settings: enc.Settings(), Serial: enc.Serial()}

	pipeline, err := cfg.pipeline(src, channels, enc.SampleRate())
	if err == nil {
		err = pump(ctx, pipeline, enc, cfg)
	}

	if cerr := enc.Close(); err == nil {
		err = cerr
	}

	res.Stats = enc.Stats()
	res.Elapsed = time.Since(start)

	if err != nil {
		cfg.log.Error("export failed", "serial", res.Serial, "frames", res.Frames, "error", err)
		return res, err
	}

	cfg.log.Info("export finished",
		"serial", res.Serial,
		"rate", res.Settings.SampleRate,
		"channels", channels,
		"frames", res.Frames,
		"pages", res.Pages,
		"bytes", res.Bytes,
		"elapsed", res.Elapsed)

	return res, nil
}

func (c config) pipeline(src audio.Source, channels, rate int) (audio.Source, error) {
	s := audio.Adapt(src, channels)
	if s.SampleRate() == rate {
		return s, nil
	}

	c.log.Debug("resampling", "from", s.SampleRate(), "to", rate, "quick", c.quick)
	if c.quick {
		return audio.NewResampler(s, rate), nil
	}

	r, err := audio.NewHQResampler(s, rate, c.quality)
	if err != nil {
		return nil, fmt.Errorf("resampler: %w", err)
	}
	return r, nil
}

func pump(ctx context.Context, src audio.Source, enc *export.Encoder, cfg config) error {
	channels := enc.Channels()
	buf := make([]float32, cfg.batch*channels)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := src.ReadSamples(buf)
		if frames := n / channels; frames > 0 {
			if serr := enc.Submit(buf, frames, cfg.gain); serr != nil {
				return serr
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading source: %w", err)
		}
	}
}
