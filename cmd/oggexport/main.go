// SPDX-License-Identifier: EPL-2.0

// Command oggexport converts WAV, AIFF, MP3, Ogg Vorbis and FLAC files to
// Ogg Vorbis.
//
// Usage:
//
//	oggexport [flags] input output.ogg
//	oggexport -probe file.ogg
//	oggexport -decode file.ogg out.wav
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ik5/oggexport"
	"github.com/ik5/oggexport/codec/vorbis"
	"github.com/ik5/oggexport/formats"
	"github.com/ik5/oggexport/metadata"
	"github.com/ik5/oggexport/settings"
)

var errUsage = errors.New("usage")

type options struct {
	out     settings.Output
	vbr     bool
	mono    bool
	gain    float64
	quick   bool
	verbose bool
	probe   bool
	decode  bool
}

func parse(args []string, stderr io.Writer) (options, []string, error) {
	var o options

	fs := flag.NewFlagSet("oggexport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: oggexport [flags] input output.ogg")
		fmt.Fprintln(stderr, "       oggexport -probe file.ogg")
		fmt.Fprintln(stderr, "       oggexport -decode file.ogg out.wav")
		fs.PrintDefaults()
	}

	fs.IntVar(&o.out.SampleRate, "rate", settings.DefaultSampleRate, "output sample rate in Hz (at most 48000)")
	fs.IntVar(&o.out.Bitrate.Nominal, "bitrate", settings.DefaultBitrate, "nominal bitrate in kbps")
	fs.BoolVar(&o.vbr, "vbr", false, "variable bitrate")
	fs.IntVar(&o.out.Bitrate.Min, "min-bitrate", 0, "minimum bitrate in kbps with -vbr (0 = unbounded)")
	fs.IntVar(&o.out.Bitrate.Max, "max-bitrate", 0, "maximum bitrate in kbps with -vbr (0 = unbounded)")
	fs.BoolVar(&o.mono, "mono", false, "mix down to one channel")
	fs.Float64Var(&o.gain, "gain", 1, "linear gain applied before encoding")
	fs.BoolVar(&o.quick, "quick", false, "use the fast cubic resampler")
	fs.StringVar(&o.out.Tags.Title, "title", "", "TITLE comment")
	fs.StringVar(&o.out.Tags.Artist, "artist", "", "ARTIST comment")
	fs.StringVar(&o.out.Tags.Album, "album", "", "ALBUM comment")
	fs.StringVar(&o.out.Tags.Genre, "genre", "", "GENRE comment")
	fs.StringVar(&o.out.Tags.Year, "year", "", "YEAR comment")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.BoolVar(&o.probe, "probe", false, "inspect an Ogg Vorbis file")
	fs.BoolVar(&o.decode, "decode", false, "decode an Ogg Vorbis file to 16-bit WAV")

	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}

	if o.vbr {
		o.out.Bitrate.Mode = settings.Variable
	}
	if o.mono {
		o.out.StereoMode = settings.Mono
	}

	want := 2
	if o.probe {
		want = 1
	}
	if fs.NArg() != want || (o.probe && o.decode) {
		fs.Usage()
		return o, nil, errUsage
	}

	return o, fs.Args(), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, files, err := parse(args, stderr)
	if err != nil {
		return err
	}

	log := newLogger(stderr, o.verbose)
	switch {
	case o.probe:
		return probe(files[0], stdout)
	case o.decode:
		return decode(files[0], files[1], log)
	default:
		return encode(ctx, o, files[0], files[1], log)
	}
}

func encode(ctx context.Context, o options, inPath, outPath string, log *slog.Logger) (err error) {
	dec, err := formats.Registry().Lookup(inPath)
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}

	src, err := dec.Decode(in)
	if err != nil {
		in.Close()
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	defer src.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
		if err != nil && !interrupted(err) {
			os.Remove(outPath)
		}
	}()

	log.Debug("exporting",
		"input", inPath,
		"rate", src.SampleRate(),
		"channels", src.Channels(),
		"comments", metadata.Comments(o.out.Tags))

	opts := []oggexport.Option{
		oggexport.WithLogger(log),
		oggexport.WithGain(float32(o.gain)),
	}
	if o.quick {
		opts = append(opts, oggexport.WithQuickResample())
	}

	_, err = oggexport.Export(ctx, src, out, vorbis.NewEngine(), o.out, opts...)

	return err
}

// interrupted reports whether err stopped an export that still closed its
// stream, leaving a playable partial file.
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "oggexport:", err)
		stop()
		os.Exit(1)
	}
}
