// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/oggexport/formats/vorbis"
	"github.com/ik5/oggexport/formats/wav"
	"github.com/ik5/oggexport/ogg"
)

// probe prints the page structure and stream headers of an Ogg Vorbis file.
func probe(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rep, err := ogg.Inspect(f)
	fmt.Fprintf(w, "serial:   %#08x\n", rep.Serial)
	fmt.Fprintf(w, "pages:    %d\n", len(rep.Pages))
	fmt.Fprintf(w, "packets:  %d\n", rep.Packets)
	fmt.Fprintf(w, "bytes:    %d\n", rep.Bytes)
	fmt.Fprintf(w, "granule:  %d\n", rep.FinalGranule)
	if n, fresh := rep.HeaderPages(3); fresh {
		fmt.Fprintf(w, "headers:  %d pages\n", n)
	} else {
		fmt.Fprintln(w, "headers:  audio shares a header page")
	}
	if err != nil {
		return fmt.Errorf("framing: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	info, err := vorbis.Probe(f)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "rate:     %d Hz\n", info.SampleRate)
	fmt.Fprintf(w, "channels: %d\n", info.Channels)
	fmt.Fprintf(w, "bitrate:  %d/%d/%d bps (min/nominal/max)\n", info.Minimum, info.Nominal, info.Maximum)
	fmt.Fprintf(w, "frames:   %d\n", info.Frames)
	fmt.Fprintf(w, "peak:     %.3f\n", info.Peak)
	fmt.Fprintf(w, "vendor:   %s\n", info.Vendor)
	for _, c := range info.Comments {
		fmt.Fprintf(w, "comment:  %s\n", c)
	}

	return nil
}

// decode renders an Ogg Vorbis file to 16-bit WAV.
func decode(inPath, outPath string, log *slog.Logger) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}

	src, err := vorbis.Decoder{}.Decode(in)
	if err != nil {
		in.Close()
		return err
	}
	defer src.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	frames, err := wav.WriteSource(out, src)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outPath)
		return err
	}

	log.Info("decoded", "input", inPath, "output", outPath, "frames", frames, "rate", src.SampleRate())

	return nil
}
