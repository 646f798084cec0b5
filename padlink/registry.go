package padlink

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var (
	ErrUnsupportedCategory = errors.New("unsupported category")
	ErrAlreadyRegistered   = errors.New("category already registered")
)

// SinkPad is the input connection point of a pre-built downstream chain.
type SinkPad interface {
	Name() string
	IsLinked() bool
}

// SrcPad is an output connection point that appeared at runtime.
type SrcPad interface {
	Name() string
	// CapsName returns the name of the first structure of the pad's current
	// caps. ok is false while no caps have been negotiated.
	CapsName() (name string, ok bool)
	Link(sink SinkPad) error
}

type entry struct {
	category Category
	sink     SinkPad
	linked   bool
}

// Registry maps categories to sink pads in registration order.
type Registry struct {
	entries []*entry
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(c Category, sink SinkPad) error {
	if c == Unsupported {
		return fmt.Errorf("register %v: %w", sink.Name(), ErrUnsupportedCategory)
	}
	if r.lookup(c) != nil {
		return fmt.Errorf("register %v: %w", c, ErrAlreadyRegistered)
	}
	r.entries = append(r.entries, &entry{category: c, sink: sink})
	return nil
}

// Categories returns the registered categories in registration order.
func (r *Registry) Categories() []Category {
	return lo.Map(r.entries, func(e *entry, _ int) Category {
		return e.category
	})
}

// Linked reports whether the category has been linked, either by us or by
// someone else who linked the sink pad directly.
func (r *Registry) Linked(c Category) bool {
	e := r.lookup(c)
	if e == nil {
		return false
	}
	return e.linked || e.sink.IsLinked()
}

func (r *Registry) lookup(c Category) *entry {
	e, ok := lo.Find(r.entries, func(e *entry) bool {
		return e.category == c
	})
	if !ok {
		return nil
	}
	return e
}
