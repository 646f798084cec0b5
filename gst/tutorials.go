package gst

import (
	"fmt"

	"github.com/mengelbart/gst-tutorials/padlink"

	gogst "github.com/go-gst/go-gst/gst"
	"github.com/sirupsen/logrus"
)

// NewPlaybin creates a playbin element named "playbin" playing uri.
func NewPlaybin(uri string) (*Pipeline, error) {
	Init()
	playbin, err := gogst.NewElementWithName("playbin", "playbin")
	if err != nil {
		return nil, fmt.Errorf("create playbin: %w", err)
	}
	if err := playbin.SetProperty("uri", uri); err != nil {
		return nil, fmt.Errorf("set playbin uri: %w", err)
	}
	return newPipeline(playbin), nil
}

// NewConceptsPipeline builds
// videotestsrc pattern=<pattern> ! vertigotv ! videoconvert ! autovideosink
// element by element and links it statically.
func NewConceptsPipeline(pattern string) (*Pipeline, error) {
	Init()
	source, err := gogst.NewElementWithName("videotestsrc", "source")
	if err != nil {
		return nil, fmt.Errorf("create videotestsrc: %w", err)
	}
	// pattern is an enum, SetArg accepts its nick or its value
	source.SetArg("pattern", pattern)
	elems, err := newElements([][2]string{
		{"vertigotv", "vertigo"},
		{"videoconvert", "convertor"},
		{"autovideosink", "sink"},
	})
	if err != nil {
		return nil, err
	}
	elems = append([]*gogst.Element{source}, elems...)

	p, err := gogst.NewPipeline("test-pipeline")
	if err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}
	if err := p.AddMany(elems...); err != nil {
		return nil, fmt.Errorf("add elements: %w", err)
	}
	if err := gogst.ElementLinkMany(elems...); err != nil {
		return nil, fmt.Errorf("link elements: %w", err)
	}
	return newPipeline(p.Element), nil
}

// NewDynamicPipeline builds a uridecodebin whose pads are linked at runtime
// to an audio chain (audioconvert ! audioresample ! autoaudiosink) and, if
// withVideo is set, to a video chain (videoconvert ! autovideosink).
func NewDynamicPipeline(uri string, withVideo bool, log *logrus.Entry) (*Pipeline, *padlink.Linker, error) {
	Init()
	source, err := gogst.NewElementWithName("uridecodebin", "source")
	if err != nil {
		return nil, nil, fmt.Errorf("create uridecodebin: %w", err)
	}
	if err := source.SetProperty("uri", uri); err != nil {
		return nil, nil, fmt.Errorf("set uridecodebin uri: %w", err)
	}

	p, err := gogst.NewPipeline("dynamic-pipeline")
	if err != nil {
		return nil, nil, fmt.Errorf("create pipeline: %w", err)
	}
	if err := p.Add(source); err != nil {
		return nil, nil, fmt.Errorf("add source: %w", err)
	}

	registry := padlink.NewRegistry()
	chains := []chain{audioChain}
	if withVideo {
		chains = append(chains, videoChain)
	}
	for _, c := range chains {
		elems, err := newElements(c.elements)
		if err != nil {
			return nil, nil, err
		}
		if err := p.AddMany(elems...); err != nil {
			return nil, nil, fmt.Errorf("add %v chain: %w", c.category, err)
		}
		if err := gogst.ElementLinkMany(elems...); err != nil {
			return nil, nil, fmt.Errorf("link %v chain: %w", c.category, err)
		}
		sink, err := staticSinkPad(elems[0])
		if err != nil {
			return nil, nil, err
		}
		if err := registry.Register(c.category, sink); err != nil {
			return nil, nil, err
		}
	}

	linker := padlink.NewLinker(registry, log)
	if _, err := source.Connect("pad-added", func(self *gogst.Element, pad *gogst.Pad) {
		linker.HandlePadAdded(self.GetName(), &SrcPad{pad: pad})
	}); err != nil {
		return nil, nil, fmt.Errorf("connect pad-added: %w", err)
	}
	return newPipeline(p.Element), linker, nil
}

// chain is a statically linked run of elements whose first element's sink
// pad receives one category of dynamic pads.
type chain struct {
	category padlink.Category
	elements [][2]string
}

var (
	audioChain = chain{padlink.Audio, [][2]string{{"audioconvert", "convert"}, {"audioresample", "resample"}, {"autoaudiosink", "audiosink"}}}
	videoChain = chain{padlink.Video, [][2]string{{"videoconvert", "vconvert"}, {"autovideosink", "videosink"}}}
)

// newElements creates elements from (factory, name) pairs.
func newElements(specs [][2]string) ([]*gogst.Element, error) {
	elems := make([]*gogst.Element, 0, len(specs))
	for _, s := range specs {
		e, err := gogst.NewElementWithName(s[0], s[1])
		if err != nil {
			return nil, fmt.Errorf("create %v: %w", s[0], err)
		}
		elems = append(elems, e)
	}
	return elems, nil
}
