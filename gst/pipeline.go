// Package gst binds the tutorial pipelines to GStreamer through go-gst.
package gst

import (
	"fmt"
	"sync"
	"time"

	"github.com/mengelbart/gst-tutorials/pipeline"

	gogst "github.com/go-gst/go-gst/gst"
)

var initOnce sync.Once

// Init initializes GStreamer once per process.
func Init() {
	initOnce.Do(func() {
		gogst.Init(nil)
	})
}

// Pipeline adapts a top level GStreamer element (a pipeline or playbin) to
// pipeline.Pipeline.
type Pipeline struct {
	element *gogst.Element
	bus     *Bus
}

func newPipeline(element *gogst.Element) *Pipeline {
	return &Pipeline{
		element: element,
		bus:     &Bus{bus: element.GetBus(), owner: element},
	}
}

func (p *Pipeline) Bus() *Bus {
	return p.bus
}

func (p *Pipeline) Name() string {
	return p.element.GetName()
}

func (p *Pipeline) SetState(s pipeline.State) error {
	if err := p.element.SetState(toGstState(s)); err != nil {
		return fmt.Errorf("set %v to %v: %w", p.Name(), s, err)
	}
	return nil
}

func (p *Pipeline) QueryPosition() (time.Duration, error) {
	ok, pos := p.element.QueryPosition(gogst.FormatTime)
	if !ok {
		return 0, fmt.Errorf("position: %w", pipeline.ErrUnavailable)
	}
	return time.Duration(pos), nil
}

func (p *Pipeline) QueryDuration() (time.Duration, error) {
	ok, dur := p.element.QueryDuration(gogst.FormatTime)
	if !ok || dur < 0 {
		return 0, fmt.Errorf("duration: %w", pipeline.ErrUnavailable)
	}
	return time.Duration(dur), nil
}

func (p *Pipeline) QuerySeeking() (pipeline.Seeking, error) {
	q := gogst.NewSeekingQuery(gogst.FormatTime)
	if !p.element.Query(q) {
		return pipeline.Seeking{}, fmt.Errorf("seeking: %w", pipeline.ErrUnavailable)
	}
	_, seekable, start, end := q.ParseSeeking()
	return pipeline.Seeking{
		Enabled: seekable,
		Start:   time.Duration(start),
		End:     time.Duration(end),
	}, nil
}

func (p *Pipeline) Seek(position time.Duration, flags pipeline.SeekFlags) error {
	if !p.element.SeekSimple(position.Nanoseconds(), gogst.FormatTime, toGstSeekFlags(flags)) {
		return fmt.Errorf("seek to %v: %w", position, pipeline.ErrUnavailable)
	}
	return nil
}

func toGstState(s pipeline.State) gogst.State {
	switch s {
	case pipeline.StateNull:
		return gogst.StateNull
	case pipeline.StateReady:
		return gogst.StateReady
	case pipeline.StatePaused:
		return gogst.StatePaused
	case pipeline.StatePlaying:
		return gogst.StatePlaying
	default:
		return gogst.StateVoidPending
	}
}

func fromGstState(s gogst.State) pipeline.State {
	switch s {
	case gogst.StateNull:
		return pipeline.StateNull
	case gogst.StateReady:
		return pipeline.StateReady
	case gogst.StatePaused:
		return pipeline.StatePaused
	case gogst.StatePlaying:
		return pipeline.StatePlaying
	default:
		return pipeline.StateVoidPending
	}
}

func toGstSeekFlags(flags pipeline.SeekFlags) gogst.SeekFlags {
	var f gogst.SeekFlags
	if flags&pipeline.SeekFlagFlush != 0 {
		f |= gogst.SeekFlagFlush
	}
	if flags&pipeline.SeekFlagKeyUnit != 0 {
		f |= gogst.SeekFlagKeyUnit
	}
	return f
}
