// SPDX-License-Identifier: EPL-2.0

package codec

import (
	"errors"
	"fmt"
	"testing"
)

func TestPage_Len(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page Page
		want int
	}{
		{"empty", Page{}, 0},
		{"header only", Page{Header: make([]byte, 28)}, 28},
		{"header and body", Page{Header: make([]byte, 30), Body: make([]byte, 4000)}, 4030},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.page.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrInvalidMode_Wrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("vorbis: %w", ErrInvalidMode)
	if !errors.Is(err, ErrInvalidMode) {
		t.Error("errors.Is() failed for wrapped ErrInvalidMode")
	}
	if errors.Is(err, ErrNotStarted) {
		t.Error("errors.Is() matched an unrelated sentinel")
	}
}
