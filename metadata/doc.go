// SPDX-License-Identifier: EPL-2.0

// Package metadata assembles the user comments embedded in the Vorbis comment
// header of an exported stream.
//
// Every stream carries a fixed product comment first, followed by whichever
// optional tags are present:
//
//	comments := metadata.Comments(metadata.Tags{Title: "Song", Year: "2026"})
//	// ["ENCODER=oggexport", "TITLE=Song", "YEAR=2026"]
//
// The codec does not interpret the entries; they are copied into the header
// verbatim.
package metadata
