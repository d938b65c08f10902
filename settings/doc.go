// SPDX-License-Identifier: EPL-2.0

// Package settings holds the output settings of an export: sample rate,
// bitrate mode and values, channel layout, bit depth and metadata tags.
//
// Settings are plain values. Setting up an encoder never mutates the value it
// was given; the effective settings (for example a clamped sample rate) are
// returned separately.
package settings
