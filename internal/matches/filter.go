package matches

import (
	"errors"
	"fmt"
)

// ErrNoReference is returned when no record carries the start-event key, so
// there is nothing to anchor the video timeline against.
var ErrNoReference = errors.New("no match contains the start event key")

// FilterRange keeps records whose match number lies in the inclusive range
// [lo, hi]. Records without a number are dropped. Callers that want all
// records simply don't filter.
func FilterRange(records []Record, lo, hi float64) []Record {
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if r.HasNumber && r.Number >= lo && r.Number <= hi {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ReferenceTime finds the anchor timestamp: the start-event time, in
// seconds, of the lowest-numbered record that carries the start-event key.
// All video positions are computed relative to this value.
func ReferenceTime(records []Record, startKey string) (float64, error) {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	SortByNumber(sorted)

	for _, r := range sorted {
		if ms, ok := r.Event(startKey); ok {
			return float64(ms) / 1000, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrNoReference, startKey)
}
