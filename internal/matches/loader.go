package matches

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMatchesKey is returned when the export file parses as JSON but has no
// top-level "matches" key.
var ErrMatchesKey = errors.New(`no "matches" key in export file`)

// Load reads a match export file: a JSON object whose "matches" key holds
// an array of match records.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	raw, ok := doc["matches"]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrMatchesKey)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return records, nil
}
