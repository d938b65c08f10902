// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	return max(-1, min(1, x))
}

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping
// values outside [-1, 1].
func Float32ToInt16(x float32) int16 {
	return int16(Clamp(x) * 32767)
}

// IntToFloat32 normalizes a signed PCM sample of the given bit depth to
// [-1, 1). Depths outside 1..32 are treated as 16.
func IntToFloat32(v int, bitDepth int) float32 {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	return float32(float64(v) / scale)
}

// Deinterleave splits frames frames of interleaved src into the per-channel
// slices of dst, multiplying each sample by gain. dst must hold one slice of
// at least frames samples per channel.
func Deinterleave(dst [][]float32, src []float32, frames int, gain float32) {
	channels := len(dst)
	if channels == 0 {
		return
	}

	for f := range frames {
		base := f * channels
		for c, ch := range dst {
			ch[f] = src[base+c] * gain
		}
	}
}

// Interleave is the inverse of Deinterleave without gain. It appends to dst
// and returns the extended slice.
func Interleave(dst []float32, src [][]float32, frames int) []float32 {
	for f := range frames {
		for _, ch := range src {
			dst = append(dst, ch[f])
		}
	}
	return dst
}
