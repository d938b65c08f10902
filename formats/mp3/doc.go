// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 input with github.com/hajimehoshi/go-mp3. The
// decoder always yields stereo; mono files come out with both channels
// equal.
package mp3
