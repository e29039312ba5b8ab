package model

import "encoding/json"

// OptionalPrice distinguishes "no observation at this date" from a zero
// price. The zero value is absent.
type OptionalPrice struct {
	Value float64
	Valid bool
}

// Price wraps a present value.
func Price(v float64) OptionalPrice {
	return OptionalPrice{Value: v, Valid: true}
}

// Absent is the explicit missing-value marker.
var Absent = OptionalPrice{}

// MarshalJSON emits the bare number, or null when absent, matching the
// shape the chart layer expects.
func (o OptionalPrice) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON accepts a number or null.
func (o *OptionalPrice) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Absent
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Price(v)
	return nil
}

// MergedRecord is one row of the reconciled historical/predicted dataset.
// Every date present in either source series appears exactly once; a date
// missing from one source carries an absent marker, never zero.
type MergedRecord struct {
	Date       string        `json:"date"`
	Historical OptionalPrice `json:"historical"`
	Predicted  OptionalPrice `json:"predicted"`
}
