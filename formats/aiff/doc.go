// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 8, 16, 24 and 32-bit AIFF input with
// github.com/go-audio/aiff.
package aiff
