package model

import "strings"

// OuncesPerGramDivisor converts a per-troy-ounce price into the per-gram
// figure shown on the dashboard. It is an approximation, not 31.1035.
const OuncesPerGramDivisor = 28

// DefaultPeriod is the lookback used for history requests.
const DefaultPeriod = "1y"

// Metal pairs a display name with the provider ticker used for fallback.
type Metal struct {
	Name   string
	Ticker string
}

// Metals is the fixed table driving every per-metal loop.
var Metals = []Metal{
	{Name: "Gold", Ticker: "GC=F"},
	{Name: "Silver", Ticker: "SI=F"},
	{Name: "Platinum", Ticker: "PL=F"},
	{Name: "Palladium", Ticker: "PA=F"},
}

// LookupMetal finds a metal by name, ignoring case.
func LookupMetal(name string) (Metal, bool) {
	for _, m := range Metals {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Metal{}, false
}

// PerGram converts a per-ounce price.
func PerGram(perOunce float64) float64 {
	return perOunce / OuncesPerGramDivisor
}

// PriceMapping maps metal name to per-gram price.
type PriceMapping map[string]float64
