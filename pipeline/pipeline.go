// Package pipeline describes what the tutorials need from a media engine:
// state control, time queries, seeking and a serialized message bus.
package pipeline

import (
	"errors"
	"time"
)

type State int

const (
	StateVoidPending State = iota
	StateNull
	StateReady
	StatePaused
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateVoidPending:
		return "VoidPending"
	case StateNull:
		return "Null"
	case StateReady:
		return "Ready"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

type SeekFlags uint

const (
	SeekFlagFlush SeekFlags = 1 << iota
	SeekFlagKeyUnit
)

// Seeking is the answer to a seeking query in time format.
type Seeking struct {
	Enabled bool
	Start   time.Duration
	End     time.Duration
}

var (
	// ErrUnavailable marks a query or seek the engine could not answer right
	// now, e.g. a duration that is not known yet. Callers retry later.
	ErrUnavailable = errors.New("not available")
	// ErrClosed is returned once the pipeline has been released.
	ErrClosed = errors.New("pipeline closed")
)

// IsTransient reports whether err is worth retrying on the next poll.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// Pipeline is a constructed graph owned by the engine.
type Pipeline interface {
	Name() string
	SetState(State) error
	QueryPosition() (time.Duration, error)
	QueryDuration() (time.Duration, error)
	QuerySeeking() (Seeking, error)
	Seek(position time.Duration, flags SeekFlags) error
}

// Bus is the pipeline's message channel.
type Bus interface {
	// Pop waits up to timeout for the next message. ok is false on timeout.
	Pop(timeout time.Duration) (msg Message, ok bool)
	// Interrupt wakes up a pending Pop.
	Interrupt()
}
