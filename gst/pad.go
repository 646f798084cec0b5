package gst

import (
	"fmt"

	"github.com/mengelbart/gst-tutorials/padlink"

	gogst "github.com/go-gst/go-gst/gst"
)

type SrcPad struct {
	pad *gogst.Pad
}

func (p *SrcPad) Name() string {
	return p.pad.GetName()
}

func (p *SrcPad) CapsName() (string, bool) {
	caps := p.pad.GetCurrentCaps()
	if caps == nil || caps.GetSize() == 0 {
		return "", false
	}
	return caps.GetStructureAt(0).Name(), true
}

func (p *SrcPad) Link(sink padlink.SinkPad) error {
	s, ok := sink.(*SinkPad)
	if !ok {
		return fmt.Errorf("cannot link %v to %T", p.Name(), sink)
	}
	if ret := p.pad.Link(s.pad); ret != gogst.PadLinkOK {
		return fmt.Errorf("link %v to %v: %v", p.Name(), s.Name(), ret.String())
	}
	return nil
}

type SinkPad struct {
	pad *gogst.Pad
}

func staticSinkPad(e *gogst.Element) (*SinkPad, error) {
	pad := e.GetStaticPad("sink")
	if pad == nil {
		return nil, fmt.Errorf("%v has no static sink pad", e.GetName())
	}
	return &SinkPad{pad: pad}, nil
}

func (p *SinkPad) Name() string {
	return p.pad.GetName()
}

func (p *SinkPad) IsLinked() bool {
	return p.pad.IsLinked()
}
