// SPDX-License-Identifier: EPL-2.0

// Package audio provides the pull-based sample pipeline that feeds the
// encoder.
//
// # Source Interface
//
// Every decoder and processor implements Source, so stages chain:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1, 1]. ReadSamples returns io.EOF
// once the stream is done; closing a processor closes its source.
//
// # Channel Layout
//
// MonoMixer averages all channels into one and Upmixer spreads a source over
// more channels. Adapt picks between them for a target channel count:
//
//	src = audio.Adapt(src, out.StereoMode.Channels())
//
// # Resampling
//
// HQResampler runs a polyphase filter per channel and is what exports use.
// Resampler is a cubic interpolator with a simple low-pass when
// downsampling; it is faster and meant for previews.
//
//	r, err := audio.NewHQResampler(src, 48000, audio.QualityHigh)
//
// # Format Registry
//
// Registry maps file extensions to decoders:
//
//	reg := audio.NewRegistry()
//	reg.Register(wav.Decoder{}, "wav", "wave")
//	dec, err := reg.Lookup("take1.wav")
package audio
