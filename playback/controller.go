// Package playback drives a pipeline from its bus: it reacts to errors,
// end of stream, duration and state changes, reports the playback position
// on every poll timeout and performs at most one automatic seek per session.
package playback

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mengelbart/gst-tutorials/pipeline"

	"github.com/sirupsen/logrus"
)

const (
	DefaultPollInterval  = 100 * time.Millisecond
	DefaultSeekThreshold = 10 * time.Second
	DefaultSeekTarget    = 30 * time.Second
)

type Controller struct {
	pipeline pipeline.Pipeline
	bus      pipeline.Bus
	log      *logrus.Entry

	pollInterval  time.Duration
	autoSeek      bool
	seekThreshold time.Duration
	seekTarget    time.Duration
	statusWriter  io.Writer
}

func NewController(p pipeline.Pipeline, bus pipeline.Bus, log *logrus.Entry, options ...func(*Controller)) *Controller {
	c := &Controller{
		pipeline:      p,
		bus:           bus,
		log:           log.WithField("component", "playback"),
		pollInterval:  DefaultPollInterval,
		seekThreshold: DefaultSeekThreshold,
		seekTarget:    DefaultSeekTarget,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func SetPollInterval(d time.Duration) func(*Controller) {
	return func(c *Controller) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// EnableAutoSeek makes the controller seek to target once the position has
// passed threshold, if the media is seekable.
func EnableAutoSeek(threshold, target time.Duration) func(*Controller) {
	return func(c *Controller) {
		c.autoSeek = true
		c.seekThreshold = threshold
		c.seekTarget = target
	}
}

// ReportPosition writes a status line to w on every poll while playing.
func ReportPosition(w io.Writer) func(*Controller) {
	return func(c *Controller) {
		c.statusWriter = w
	}
}

// Run polls the bus until the session terminates or ctx is done, then sets
// the pipeline to StateNull. The returned error is the pipeline error that
// ended the session, if any.
func (c *Controller) Run(ctx context.Context) (*Session, error) {
	s := newSession()
	log := c.log.WithField("session", s.ID.String())

	stop := context.AfterFunc(ctx, c.bus.Interrupt)
	defer stop()

	for !s.terminate {
		if ctx.Err() != nil {
			log.Info("interrupted, stopping")
			s.terminate = true
			break
		}
		msg, ok := c.bus.Pop(c.pollInterval)
		if ok {
			c.handleMessage(s, log, msg)
		} else {
			c.handleTimeout(s, log)
		}
	}

	if s.statusLine {
		fmt.Fprintln(c.statusWriter)
	}
	if err := c.pipeline.SetState(pipeline.StateNull); err != nil {
		log.WithError(err).Error("failed to stop pipeline")
		if s.err == nil {
			return s, fmt.Errorf("stop pipeline: %w", err)
		}
	}
	return s, s.err
}

func (c *Controller) handleMessage(s *Session, log *logrus.Entry, msg pipeline.Message) {
	if s.terminate {
		return
	}
	switch m := msg.(type) {
	case pipeline.ErrorMessage:
		log.WithField("debug", m.Debug).Errorf("error received from element %v: %v", m.Source, m.Text)
		s.terminateWith(m)
	case pipeline.EOSMessage:
		log.Info("end of stream reached")
		s.terminate = true
	case pipeline.DurationChangedMessage:
		c.refreshDuration(s, log)
	case pipeline.StateChangedMessage:
		c.handleStateChanged(s, log, m)
	default:
		log.Tracef("ignoring %T from %v", msg, msg.SourceName())
	}
}

func (c *Controller) handleStateChanged(s *Session, log *logrus.Entry, m pipeline.StateChangedMessage) {
	if !m.FromPipeline {
		return
	}
	log.Infof("pipeline changed state from %v to %v", m.Old, m.New)
	s.playing = m.New == pipeline.StatePlaying
	if s.playing {
		c.querySeeking(s, log)
	}
}

func (c *Controller) querySeeking(s *Session, log *logrus.Entry) {
	seeking, err := c.pipeline.QuerySeeking()
	if err != nil {
		c.fail(s, log, "seeking query", err)
		return
	}
	s.seekEnabled = seeking.Enabled
	if seeking.Enabled {
		log.Infof("seeking is enabled from %v to %v", FormatClockTime(seeking.Start), FormatClockTime(seeking.End))
	} else {
		log.Info("seeking is disabled")
	}
}

func (c *Controller) refreshDuration(s *Session, log *logrus.Entry) {
	d, err := c.pipeline.QueryDuration()
	if err != nil {
		c.fail(s, log, "duration query", err)
		return
	}
	s.setDuration(d)
}

func (c *Controller) handleTimeout(s *Session, log *logrus.Entry) {
	if s.terminate || !s.playing {
		return
	}
	position, err := c.pipeline.QueryPosition()
	if err != nil {
		c.fail(s, log, "position query", err)
		return
	}
	s.position = position

	if s.duration.IsAbsent() {
		c.refreshDuration(s, log)
		if s.terminate {
			return
		}
	}

	if c.statusWriter != nil {
		fmt.Fprintf(c.statusWriter, "\rPosition %v / %v", FormatClockTime(position), formatOptionalClockTime(s.duration))
		s.statusLine = true
	}

	if c.autoSeek && s.seekEnabled && !s.seekDone && position > c.seekThreshold {
		c.seek(s, log)
	}
}

func (c *Controller) seek(s *Session, log *logrus.Entry) {
	log.Infof("reached %v, performing seek to %v", FormatClockTime(c.seekThreshold), FormatClockTime(c.seekTarget))
	if err := c.pipeline.Seek(c.seekTarget, pipeline.SeekFlagFlush|pipeline.SeekFlagKeyUnit); err != nil {
		c.fail(s, log, "seek", err)
		return
	}
	s.seekDone = true
}

// fail skips the current action on transient errors and ends the session on
// everything else.
func (c *Controller) fail(s *Session, log *logrus.Entry, action string, err error) {
	if pipeline.IsTransient(err) {
		log.WithError(err).Debugf("%v failed, retrying on next poll", action)
		return
	}
	log.WithError(err).Errorf("%v failed", action)
	s.terminateWith(fmt.Errorf("%v: %w", action, err))
}

// Play sets p to playing and runs a controller on bus. If p cannot be
// started it is set back to StateNull right away.
func Play(ctx context.Context, p pipeline.Pipeline, bus pipeline.Bus, log *logrus.Entry, options ...func(*Controller)) error {
	if err := p.SetState(pipeline.StatePlaying); err != nil {
		if stopErr := p.SetState(pipeline.StateNull); stopErr != nil {
			log.WithError(stopErr).Warn("failed to stop pipeline")
		}
		return err
	}
	_, err := NewController(p, bus, log, options...).Run(ctx)
	return err
}
