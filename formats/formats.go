// SPDX-License-Identifier: EPL-2.0

// Package formats wires the input decoders into an audio.Registry.
package formats

import (
	"github.com/ik5/oggexport/audio"
	"github.com/ik5/oggexport/formats/aiff"
	"github.com/ik5/oggexport/formats/flac"
	"github.com/ik5/oggexport/formats/mp3"
	"github.com/ik5/oggexport/formats/vorbis"
	"github.com/ik5/oggexport/formats/wav"
)

// Registry returns a registry holding every decoder, keyed by the usual
// file extensions.
func Registry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(wav.Decoder{}, "wav", "wave")
	r.Register(aiff.Decoder{}, "aiff", "aif")
	r.Register(mp3.Decoder{}, "mp3")
	r.Register(vorbis.Decoder{}, "ogg", "oga")
	r.Register(flac.Decoder{}, "flac")

	return r
}
