package padlink

import (
	"strings"

	"github.com/samber/lo"
)

type Category int

const (
	Unsupported Category = iota
	Audio
	Video
)

func (c Category) String() string {
	switch c {
	case Audio:
		return "audio"
	case Video:
		return "video"
	default:
		return "unsupported"
	}
}

type categoryPrefix struct {
	prefix   string
	category Category
}

// prefixes must not overlap, the first match wins.
var categoryPrefixes = []categoryPrefix{
	{prefix: "audio/x-raw", category: Audio},
	{prefix: "video/x-raw", category: Video},
}

// ParseCategory maps the name of a caps structure, e.g. "audio/x-raw", to a
// Category.
func ParseCategory(capsName string) Category {
	p, ok := lo.Find(categoryPrefixes, func(p categoryPrefix) bool {
		return strings.HasPrefix(capsName, p.prefix)
	})
	if !ok {
		return Unsupported
	}
	return p.category
}
