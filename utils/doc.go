// SPDX-License-Identifier: EPL-2.0

// Package utils holds small sample-level helpers shared by the decoders,
// the resamplers and the encoder.
package utils
