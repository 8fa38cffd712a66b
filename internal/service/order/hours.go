package order

import "time"

// Hours is the storefront's daily opening window, in local hours-of-day.
// The original house opens 18:00 and closes 23:00.
type Hours struct {
	Opening int
	Closing int
}

// OpenAt reports whether the storefront accepts orders at t.
func (h Hours) OpenAt(t time.Time) bool {
	hour := t.Hour()
	return hour >= h.Opening && hour < h.Closing
}
