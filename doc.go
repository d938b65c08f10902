// SPDX-License-Identifier: EPL-2.0

// Package oggexport renders audio to Ogg Vorbis files.
//
// The encoder core lives in the export package: it sets up a codec engine
// from the output settings, writes the three Vorbis header pages, encodes
// interleaved float batches and finalizes the stream. Export ties it to the
// rest of the module: it remixes and resamples an audio.Source to match the
// output settings and feeds it to the encoder in fixed-size batches.
//
// # Quick Start
//
//	in, _ := os.Open("mix.wav")
//	src, _ := wav.Decoder{}.Decode(in)
//	defer src.Close()
//
//	f, _ := os.Create("mix.ogg")
//	defer f.Close()
//
//	res, err := oggexport.Export(ctx, src, f, vorbis.NewEngine(), settings.Output{
//	    SampleRate: 44100,
//	    Bitrate:    settings.Bitrate{Mode: settings.Constant, Nominal: 160},
//	    Tags:       metadata.Tags{Title: "Mix"},
//	})
//
// # Packages
//
//   - export: the streaming encoder (setup, headers, blocks, pages, lifecycle)
//   - codec: the engine contract; codec/vorbis implements it with libvorbis
//   - ogg: pure-Go Ogg pagination and a stream inspector
//   - settings, metadata: output configuration and Vorbis comments
//   - audio: sources, channel adaptation and resampling
//   - formats/...: WAV, AIFF, MP3, Ogg Vorbis and FLAC input decoders
//
// # Sample Rates
//
// Vorbis output is capped at 48 kHz. Higher requested rates are clamped and
// the source is resampled; Result.Settings reports the rate actually used.
package oggexport
