package calculator

import (
	"math"

	"NickelSentinel/internal/model"
)

// ComputeChanges derives month-over-month change records from a series.
// The first point is compared against anchorPrice, since it has no
// predecessor; every later point is compared against the prior point of the
// same series. ChangePercent is rounded to two decimal places.
//
// A zero previous price cannot occur with well-formed upstream data, but it
// must not crash the pipeline: the percentage is reported as 0 in that case.
func ComputeChanges(series model.Series, anchorPrice float64) []model.ChangeRecord {
	changes := make([]model.ChangeRecord, 0, len(series))
	for i, point := range series {
		prev := anchorPrice
		if i > 0 {
			prev = series[i-1].Price
		}

		change := point.Price - prev
		percent := 0.0
		if prev != 0 {
			percent = math.Round(change/prev*100*100) / 100
		}

		changes = append(changes, model.ChangeRecord{
			Date:          point.Date,
			PreviousPrice: prev,
			Price:         point.Price,
			ChangeUSD:     change,
			ChangePercent: percent,
			Direction:     classifyDirection(change),
		})
	}
	return changes
}

func classifyDirection(change float64) model.Direction {
	switch {
	case change > 0:
		return model.DirectionUp
	case change < 0:
		return model.DirectionDown
	default:
		return model.DirectionFlat
	}
}
