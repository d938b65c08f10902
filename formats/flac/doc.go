// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC input frame by frame with
// github.com/mewkiz/flac.
package flac
