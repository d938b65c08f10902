// SPDX-License-Identifier: EPL-2.0

// Package codectest provides a fake codec.Engine for exercising export
// framing without libvorbis.
package codectest
