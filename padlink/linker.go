// Package padlink links pads that a decoding element exposes at runtime to
// the matching pre-built downstream chain, one link per content category.
package padlink

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type Outcome int

const (
	OutcomeNoCaps Outcome = iota
	OutcomeUnsupported
	OutcomeAlreadyLinked
	OutcomeLinked
	OutcomeLinkFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoCaps:
		return "no-caps"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeAlreadyLinked:
		return "already-linked"
	case OutcomeLinked:
		return "linked"
	case OutcomeLinkFailed:
		return "link-failed"
	default:
		return "unknown"
	}
}

// Linker reacts to pad-added notifications. The engine may call it from its
// streaming threads, so calls are serialized.
type Linker struct {
	mu       sync.Mutex
	registry *Registry
	log      *logrus.Entry
}

func NewLinker(r *Registry, log *logrus.Entry) *Linker {
	return &Linker{
		registry: r,
		log:      log.WithField("component", "padlink"),
	}
}

// HandlePadAdded links pad to the registered sink of its category, unless
// that category is unsupported or already linked. A failed link is logged
// and otherwise ignored.
func (l *Linker) HandlePadAdded(element string, pad SrcPad) Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	log := l.log.WithFields(logrus.Fields{"element": element, "pad": pad.Name()})
	log.Infof("received new pad %v from %v", pad.Name(), element)

	capsName, ok := pad.CapsName()
	if !ok {
		log.Debug("pad has no caps yet, ignoring")
		return OutcomeNoCaps
	}

	category := ParseCategory(capsName)
	e := l.registry.lookup(category)
	if category == Unsupported || e == nil {
		log.Infof("pad has type %v which is not supported, ignoring", capsName)
		return OutcomeUnsupported
	}
	if e.linked || e.sink.IsLinked() {
		log.Infof("%v is already linked, ignoring", category)
		return OutcomeAlreadyLinked
	}

	if err := pad.Link(e.sink); err != nil {
		log.WithError(err).Warnf("type is %v (%v) but link failed", capsName, category)
		return OutcomeLinkFailed
	}
	e.linked = true
	log.Infof("link succeeded (type %v, %v)", capsName, category)
	return OutcomeLinked
}
