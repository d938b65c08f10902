// SPDX-License-Identifier: EPL-2.0

// Package codec defines the narrow contract between an export session and the
// codec library that does the actual compression and container framing.
//
// An Engine is driven through the same operations as libvorbis and libogg:
//
//	mode setup      Init, Start
//	headers         Headers, PacketIn, Flush
//	analysis        Buffer, Wrote, BlockOut, Analyze
//	packet drain    FlushPacket, PacketIn
//	page drain      PageOut
//	teardown        Clear
//
// The libvorbis implementation lives in codec/vorbis. Framing logic can be
// tested against any other implementation of Engine.
package codec
