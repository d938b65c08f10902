// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		delta          float64
	}{
		{name: "start returns y1", y0: 0, y1: 1, y2: 2, y3: 3, x: 0, want: 1, delta: 1e-6},
		{name: "end returns y2", y0: 0, y1: 1, y2: 2, y3: 3, x: 1, want: 2, delta: 1e-6},
		{name: "linear ramp stays linear", y0: 1, y1: 2, y2: 3, y3: 4, x: 0.25, want: 2.25, delta: 1e-5},
		{name: "symmetric crossing", y0: -1, y1: -0.5, y2: 0.5, y3: 1, x: 0.5, want: 0, delta: 1e-6},
		{name: "silence", x: 0.7, want: 0, delta: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestCubicInterpolateEndpoints(t *testing.T) {
	t.Parallel()

	for i := range 64 {
		y := float32(i) / 8
		assert.InDelta(t, y+0.25, CubicInterpolate(y-0.125, y+0.25, y-0.5, y, 0), 1e-6)
		assert.InDelta(t, y-0.5, CubicInterpolate(y-0.125, y+0.25, y-0.5, y, 1), 1e-5)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	b.ReportAllocs()

	var sink float32
	for i := range b.N {
		sink += CubicInterpolate(0.1, 0.5, 0.3, -0.2, float32(i%100)/100)
	}
	_ = sink
}
