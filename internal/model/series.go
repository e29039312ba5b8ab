package model

// PricePoint is a single monthly price observation.
// Date is an ISO calendar date (YYYY-MM-DD); lexicographic order on it is
// chronological order, which merge and range filtering rely on.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Series is an ordered, date-keyed sequence of price observations.
// Dates are unique within a series and ascending, but not necessarily
// contiguous or regularly spaced.
type Series []PricePoint

// Prices returns the price column of the series.
func (s Series) Prices() []float64 {
	prices := make([]float64, len(s))
	for i, p := range s {
		prices[i] = p.Price
	}
	return prices
}

// Last returns the final point of the series, or false when empty.
func (s Series) Last() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[len(s)-1], true
}

// CommodityRecord holds one month of the three tracked commodity prices.
type CommodityRecord struct {
	Date     string  `json:"date"`
	Nikel    float64 `json:"nikel"`
	Emas     float64 `json:"emas"`
	Batubara float64 `json:"batubara"`
}

// CommodityKeys lists the tracked commodity fields in display order.
var CommodityKeys = []string{"nikel", "emas", "batubara"}

// ValueFor returns the record's value for a tracked key.
func (c CommodityRecord) ValueFor(key string) (float64, bool) {
	switch key {
	case "nikel":
		return c.Nikel, true
	case "emas":
		return c.Emas, true
	case "batubara":
		return c.Batubara, true
	default:
		return 0, false
	}
}
