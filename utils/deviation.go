package utils

import (
	"fmt"
)

// PresentableDeviation formats a schedule deviation in seconds for display.
// Positive deviations mean the vehicle is running behind its schedule.
func PresentableDeviation(deviationSec int64) string {
	suffix := "late"
	if deviationSec < 0 {
		suffix = "early"
		deviationSec = -deviationSec
	}
	if deviationSec == 0 {
		return "on time"
	}
	m := deviationSec / 60
	s := deviationSec % 60
	switch {
	case m == 0:
		return fmt.Sprintf("%ds %s", s, suffix)
	case s == 0:
		return fmt.Sprintf("%dm %s", m, suffix)
	default:
		return fmt.Sprintf("%dm%02ds %s", m, s, suffix)
	}
}
