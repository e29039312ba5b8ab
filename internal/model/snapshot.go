package model

import "time"

// Snapshot is the complete output of one refresh cycle: the five fetched
// resources plus the reconciled dataset and the derived insight.
//
// Cycle is a monotonically increasing sequence number assigned when the
// cycle starts; the store uses it to discard results that are overtaken by
// a later cycle before they land.
type Snapshot struct {
	Cycle     uint64    `json:"cycle"`
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetchedAt"`

	Metrics      *Metrics          `json:"metrics"`
	Historical   Series            `json:"historical"`
	Predictions  Series            `json:"predictions"`
	PriceChanges []ChangeRecord    `json:"priceChanges"`
	Commodities  []CommodityRecord `json:"commodities"`

	Merged  []MergedRecord `json:"merged"`
	Insight *Insight       `json:"insight"`
}
