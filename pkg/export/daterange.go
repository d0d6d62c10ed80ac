package export

import (
	"fmt"
	"time"
)

// Date-range presets. These are the only user-tunable range options.
const (
	RangeTwoWeeks = "2w"
	RangeMonth    = "month"
	RangeAll      = "all"
)

// RangeFrom resolves a preset to the export's lower date bound. nil means
// unbounded.
func RangeFrom(preset string, now time.Time) (*time.Time, error) {
	switch preset {
	case RangeTwoWeeks:
		t := now.AddDate(0, 0, -14)
		return &t, nil
	case RangeMonth:
		t := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &t, nil
	case RangeAll:
		return nil, nil
	}
	return nil, fmt.Errorf("unknown range preset %q (want %s, %s or %s)", preset, RangeTwoWeeks, RangeMonth, RangeAll)
}
