package gst

import (
	"time"

	"github.com/mengelbart/gst-tutorials/pipeline"

	gogst "github.com/go-gst/go-gst/gst"
)

const interruptStructure = "gsttut-interrupt"

type Bus struct {
	bus   *gogst.Bus
	owner *gogst.Element
}

func (b *Bus) Pop(timeout time.Duration) (pipeline.Message, bool) {
	msg := b.bus.TimedPop(gogst.ClockTime(timeout.Nanoseconds()))
	if msg == nil {
		return nil, false
	}
	return convertMessage(msg, b.owner), true
}

// Interrupt posts an application message so that a pending Pop returns.
func (b *Bus) Interrupt() {
	b.bus.Post(gogst.NewApplicationMessage(b.owner, gogst.NewStructure(interruptStructure)))
}

// convertMessage maps msg to pipeline.Message. Sources are element paths;
// state changes posted by owner itself are marked FromPipeline.
func convertMessage(msg *gogst.Message, owner *gogst.Element) pipeline.Message {
	source := sourcePath(msg)
	switch msg.Type() {
	case gogst.MessageError:
		gerr := msg.ParseError()
		return pipeline.ErrorMessage{
			Source: source,
			Text:   gerr.Error(),
			Debug:  gerr.DebugString(),
		}
	case gogst.MessageEOS:
		return pipeline.EOSMessage{Source: source}
	case gogst.MessageDurationChanged:
		return pipeline.DurationChangedMessage{Source: source}
	case gogst.MessageStateChanged:
		old, current := msg.ParseStateChanged()
		return pipeline.StateChangedMessage{
			Source:       source,
			FromPipeline: postedBy(msg, owner),
			Old:          fromGstState(old),
			New:          fromGstState(current),
		}
	default:
		return pipeline.OtherMessage{Source: source, Kind: msg.TypeName()}
	}
}
