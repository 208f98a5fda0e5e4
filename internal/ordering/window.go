package ordering

import (
	"fmt"
	"math"
	"time"
)

// DefaultCutoffHour is used whenever site config does not carry a valid hour.
const DefaultCutoffHour = 18

// DateKeyLayout is the canonical sortable key for a delivery day.
const DateKeyLayout = "2006-01-02"

// ResolveCutoffHour validates a configured cutoff hour. Only a finite whole
// number in [0,23] passes through; anything else (missing, NaN, fractional,
// out of range) falls back to DefaultCutoffHour. Never fails.
func ResolveCutoffHour(configured *float64) int {
	if configured == nil {
		return DefaultCutoffHour
	}
	f := *configured
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return DefaultCutoffHour
	}
	h := int(f)
	if h < 0 || h > 23 {
		return DefaultCutoffHour
	}
	return h
}

// WindowClosed reports whether same-day ordering has closed: the local
// hour-of-day has reached the cutoff. With cutoff 0 the window is closed
// from midnight onward.
func WindowClosed(now time.Time, cutoffHour int) bool {
	return now.Hour() >= cutoffHour
}

// DeliveryDate returns the scheduled delivery day for an order placed at now.
// Delivery is never same-day: one day out while the window is open, two days
// out once the cutoff has passed.
func DeliveryDate(now time.Time, cutoffHour int) time.Time {
	days := 1
	if WindowClosed(now, cutoffHour) {
		days = 2
	}
	y, m, d := now.Date()
	return time.Date(y, m, d+days, 0, 0, 0, 0, now.Location())
}

// DeliveryDateKey is DeliveryDate rendered as a YYYY-MM-DD join key.
func DeliveryDateKey(now time.Time, cutoffHour int) string {
	return DeliveryDate(now, cutoffHour).Format(DateKeyLayout)
}

// DeliveryLabel renders the delivery day for display, e.g. "Monday, 2 March".
// The date value always matches DeliveryDateKey.
func DeliveryLabel(now time.Time, cutoffHour int) string {
	return DeliveryDate(now, cutoffHour).Format("Monday, 2 January")
}

// CutoffTimeLabel renders the cutoff hour on a 12-hour clock. Hours 0 and 12
// both display as 12.
func CutoffTimeLabel(cutoffHour int) string {
	period := "AM"
	if cutoffHour >= 12 {
		period = "PM"
	}
	display := cutoffHour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:00 %s", display, period)
}
