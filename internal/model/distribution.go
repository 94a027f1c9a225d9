package model

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Distribution maps each page to a non-negative real value.
// Distributions produced by the rank estimators sum to 1.0 within
// floating-point tolerance. A Distribution is a derived, read-only
// output; callers must not mutate one after receiving it.
type Distribution map[string]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	values := make([]float64, 0, len(d))
	for _, v := range d {
		values = append(values, v)
	}
	return floats.Sum(values)
}

// Pages returns the pages of the distribution in sorted order.
// Report writers rely on this for stable output.
func (d Distribution) Pages() []string {
	pages := make([]string, 0, len(d))
	for page := range d {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// Clone returns an independent copy of the distribution.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for page, v := range d {
		out[page] = v
	}
	return out
}
