package playback

import (
	"fmt"
	"time"

	"github.com/samber/mo"
)

// FormatClockTime renders d as h:mm:ss.nnnnnnnnn.
func FormatClockTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	ns := d % time.Second
	return fmt.Sprintf("%d:%02d:%02d.%09d", h, m, s, ns)
}

func formatOptionalClockTime(d mo.Option[time.Duration]) string {
	if v, ok := d.Get(); ok {
		return FormatClockTime(v)
	}
	return "--:--:--.---------"
}
