// SPDX-License-Identifier: EPL-2.0

// Package pcm turns the integer buffers of the go-audio decoders into
// normalized float32 sources. The wav and aiff packages build on it.
package pcm
