// SPDX-License-Identifier: EPL-2.0

// Package wav reads integer PCM WAV files of any common bit depth and
// writes 16-bit WAV, both through github.com/go-audio/wav.
//
//	src, err := wav.Decoder{}.Decode(f)
//
// Writer and WriteSource produce 16-bit files; the CLI uses them to render
// a finished Ogg file back to PCM for listening checks:
//
//	frames, err := wav.WriteSource(out, src)
package wav
