package pipeline

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateVoidPending, "VoidPending"},
		{StateNull, "Null"},
		{StateReady, "Ready"},
		{StatePaused, "Paused"},
		{StatePlaying, "Playing"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrUnavailable))
	assert.True(t, IsTransient(fmt.Errorf("query duration: %w", ErrUnavailable)))
	assert.False(t, IsTransient(ErrClosed))
	assert.False(t, IsTransient(errors.New("boom")))
	assert.False(t, IsTransient(nil))
}

func TestErrorMessage_Error(t *testing.T) {
	assert.Equal(t, "decoder: not negotiated", ErrorMessage{Source: "decoder", Text: "not negotiated"}.Error())
	assert.Equal(t, "not negotiated", ErrorMessage{Text: "not negotiated"}.Error())
}
