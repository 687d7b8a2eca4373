// Package matches loads and selects match records exported by the event
// logging system. A record is a JSON object with a numeric match number, an
// optional name, and any number of event-key fields holding millisecond
// wall-clock timestamps.
package matches

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Record is a single match entry from the export. It is read-only once
// loaded; event keys are whatever the logging system emitted (MATCH_START,
// MATCH_POST, SHOW_PREVIEW, ...).
type Record struct {
	Number    float64
	HasNumber bool
	Name      string
	Events    map[string]int64
}

// UnmarshalJSON decodes a match object. Besides the reserved "number" and
// "name" fields, every numeric field is treated as an event timestamp in
// milliseconds; non-numeric extras are ignored.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Events = make(map[string]int64)
	for key, val := range raw {
		switch key {
		case "name":
			if err := json.Unmarshal(val, &r.Name); err != nil {
				return fmt.Errorf("match name: %w", err)
			}
		case "number":
			if err := json.Unmarshal(val, &r.Number); err != nil {
				return fmt.Errorf("match number: %w", err)
			}
			r.HasNumber = true
		default:
			var ms int64
			if err := json.Unmarshal(val, &ms); err != nil {
				continue
			}
			r.Events[key] = ms
		}
	}

	return nil
}

// Event returns the millisecond timestamp for an event key.
func (r *Record) Event(key string) (int64, bool) {
	ms, ok := r.Events[key]
	return ms, ok
}

// DisplayName returns the match name, falling back to Match_<number>.
func (r *Record) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	if !r.HasNumber {
		return "Match_unknown"
	}
	return "Match_" + strconv.FormatFloat(r.Number, 'f', -1, 64)
}

// sortKey orders records by match number; records without a number sort
// as zero.
func (r *Record) sortKey() float64 {
	if !r.HasNumber {
		return 0
	}
	return r.Number
}

// SortByNumber sorts records by ascending match number, in place. The sort
// is stable so records without a number keep their file order.
func SortByNumber(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].sortKey() < records[j].sortKey()
	})
}
