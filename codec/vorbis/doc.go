// SPDX-License-Identifier: EPL-2.0

// Package vorbis implements codec.Engine on top of libvorbis and libogg.
// Building it requires cgo and the libvorbis, libvorbisenc and libogg
// development headers.
package vorbis
