package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsStructural(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "object reference", err: ErrInvalidObjectReference, want: true},
		{name: "wrapped composition mismatch", err: fmt.Errorf("compose: %w", ErrCompositionMismatch), want: true},
		{name: "timeline order", err: ErrInvalidTimelineOrder, want: true},
		{name: "config error", err: ErrInvalidConfig, want: false},
		{name: "unrelated", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStructural(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	inner := errors.New("inner")
	err := NewUserError("something went wrong", inner)

	assert.Contains(t, err.Error(), "something went wrong")
	assert.ErrorIs(t, err, inner)
}
