package calculator

import (
	"sort"

	"NickelSentinel/internal/model"
)

// Merge reconciles the historical and predicted series into one record per
// date in the union of both date sets, sorted ascending. A date missing
// from one source is carried as an explicit absent marker; there is no
// interpolation or forward-fill.
func Merge(historical, predicted model.Series) []model.MergedRecord {
	histByDate := make(map[string]float64, len(historical))
	for _, p := range historical {
		histByDate[p.Date] = p.Price
	}
	predByDate := make(map[string]float64, len(predicted))
	for _, p := range predicted {
		predByDate[p.Date] = p.Price
	}

	seen := make(map[string]bool, len(histByDate)+len(predByDate))
	dates := make([]string, 0, len(histByDate)+len(predByDate))
	for _, s := range []model.Series{historical, predicted} {
		for _, p := range s {
			if !seen[p.Date] {
				seen[p.Date] = true
				dates = append(dates, p.Date)
			}
		}
	}
	// ISO dates: lexicographic sort is chronological.
	sort.Strings(dates)

	merged := make([]model.MergedRecord, 0, len(dates))
	for _, date := range dates {
		rec := model.MergedRecord{Date: date, Historical: model.Absent, Predicted: model.Absent}
		if v, ok := histByDate[date]; ok {
			rec.Historical = model.Price(v)
		}
		if v, ok := predByDate[date]; ok {
			rec.Predicted = model.Price(v)
		}
		merged = append(merged, rec)
	}
	return merged
}

// FilterByRange returns the records whose date falls within [start, end],
// both bounds inclusive. The input is not mutated.
func FilterByRange(records []model.MergedRecord, start, end string) []model.MergedRecord {
	filtered := make([]model.MergedRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date >= start && rec.Date <= end {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
