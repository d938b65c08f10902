// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis with github.com/jfreymuth/oggvorbis.
//
// Decoder turns an .ogg input into an audio.Source. Probe reads back a
// finished export and reports its rate, channels, bitrates, comments and
// decoded length:
//
//	info, err := vorbis.Probe(f)
//	title, _ := info.Comment("TITLE")
package vorbis
