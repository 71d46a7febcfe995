package display

import (
	"fmt"
	"math"
)

// FormatHours renders fractional hours as "HH:MM". Whole hours are truncated,
// the remainder is rounded to the nearest minute and 60 minutes carry into the hour.
func FormatHours(hours float64) string {
	if math.IsNaN(hours) || hours <= 0 {
		return "00:00"
	}
	whole := math.Trunc(hours)
	h := int(whole)
	m := int(math.Round((hours - whole) * 60))
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatMinutes renders a minute count as "HH:MM".
func FormatMinutes(minutes int) string {
	return FormatHours(float64(minutes) / 60)
}
