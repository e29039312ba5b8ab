package calculator

import "NickelSentinel/internal/model"

// Normalize rescales each tracked key onto a base-100 index anchored at the
// first record, so commodities with very different price levels compare on
// one axis. A key whose first value is zero is omitted from every record
// rather than divided by. Dates pass through unchanged.
func Normalize(records []model.CommodityRecord, keys []string) []model.NormalizedRecord {
	if len(records) == 0 {
		return []model.NormalizedRecord{}
	}
	first := records[0]

	normalized := make([]model.NormalizedRecord, 0, len(records))
	for _, rec := range records {
		row := model.NormalizedRecord{Date: rec.Date, Values: make(map[string]float64, len(keys))}
		for _, key := range keys {
			base, ok := first.ValueFor(key)
			if !ok || base == 0 {
				continue
			}
			if v, ok := rec.ValueFor(key); ok {
				row.Values[key] = v / base * 100
			}
		}
		normalized = append(normalized, row)
	}
	return normalized
}
