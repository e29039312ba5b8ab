package model

import (
	"encoding/json"
	"sort"
)

// NormalizedRecord is one row of a base-100 comparison series. Values holds
// the rescaled value per tracked key; a key is missing when its first
// observation was zero and rescaling is undefined.
type NormalizedRecord struct {
	Date   string
	Values map[string]float64
}

// MarshalJSON flattens the per-key values next to the date, producing the
// same row shape the comparison chart consumes ({date, nikel, emas, ...}).
func (n NormalizedRecord) MarshalJSON() ([]byte, error) {
	row := make(map[string]interface{}, len(n.Values)+1)
	row["date"] = n.Date
	keys := make([]string, 0, len(n.Values))
	for k := range n.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		row[k] = n.Values[k]
	}
	return json.Marshal(row)
}
