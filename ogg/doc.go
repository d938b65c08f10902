// SPDX-License-Identifier: EPL-2.0

// Package ogg implements the Ogg container side of an export: a packet to
// page multiplexer with libogg's pagination rules, and a page reader used to
// check produced files.
//
// Pages are serialized and parsed with github.com/thesyncim/gopus/container/ogg,
// which provides the page layout and the Ogg CRC.
//
// # Writing
//
//	s := ogg.NewStream(serial)
//	s.PacketIn(ogg.Packet{Data: ident})
//	for page, ok := s.Flush(); ok; page, ok = s.Flush() {
//	    w.Write(page.Header)
//	    w.Write(page.Body)
//	}
//
// # Checking
//
//	rep, err := ogg.Inspect(f)
//	headerPages, fresh := rep.HeaderPages(3)
package ogg
