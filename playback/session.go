package playback

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
)

// Session is the state of one run of the controller loop. It is owned by
// the loop and handed to each handler by pointer.
type Session struct {
	ID uuid.UUID

	playing     bool
	terminate   bool
	seekEnabled bool
	seekDone    bool
	duration    mo.Option[time.Duration]
	position    time.Duration

	err        error
	statusLine bool
}

func newSession() *Session {
	return &Session{
		ID:       uuid.New(),
		duration: mo.None[time.Duration](),
	}
}

func (s *Session) Playing() bool                      { return s.playing }
func (s *Session) Terminated() bool                   { return s.terminate }
func (s *Session) SeekEnabled() bool                  { return s.seekEnabled }
func (s *Session) SeekDone() bool                     { return s.seekDone }
func (s *Session) Duration() mo.Option[time.Duration] { return s.duration }
func (s *Session) Position() time.Duration            { return s.position }

// Err is the pipeline error that ended the session, if any.
func (s *Session) Err() error { return s.err }

func (s *Session) setDuration(d time.Duration) {
	s.duration = mo.Some(d)
}

func (s *Session) terminateWith(err error) {
	s.terminate = true
	if s.err == nil {
		s.err = err
	}
}
