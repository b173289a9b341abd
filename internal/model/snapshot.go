package model

import "time"

// Source identifies where an orchestrated price came from.
type Source string

const (
	SourceLive    Source = "live"
	SourceHistory Source = "history"
	SourceNone    Source = "none"
)

// Quote is one orchestrated price.
type Quote struct {
	Metal   string  `json:"metal"`
	PerGram float64 `json:"per_gram"`
	Source  Source  `json:"source"`
	Reason  string  `json:"reason,omitempty"`
}

// Snapshot is the result of one acquisition run. Prices always carries
// every entry of Metals.
type Snapshot struct {
	RefreshID  string       `json:"refresh_id"`
	Prices     PriceMapping `json:"prices"`
	Quotes     []Quote      `json:"quotes"`
	LiveReason string       `json:"live_reason,omitempty"`
	BuiltAt    time.Time    `json:"built_at"`
}
