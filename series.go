package whatif

import (
	"iter"
	"slices"
	"sort"
)

// PricePoint is one observation of an asset price.
type PricePoint struct {
	Date   Date
	Price  float64 // always > 0 within a valid series
	Volume int64   // traded volume, 0 when the source does not report one
}

// PriceSeries stores a chronological series of prices for one asset.
// Dates are unique and the series is always sorted ascending.
type PriceSeries struct {
	days    []Date
	prices  []float64
	volumes []int64
}

// Len returns the number of points in the series.
func (s *PriceSeries) Len() int { return len(s.days) }

// chronological is a private implementation to keep the series sorted by date.
type chronological struct{ *PriceSeries }

func (c chronological) Len() int           { return len(c.days) }
func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }
func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.prices[i], c.prices[j] = c.prices[j], c.prices[i]
	c.volumes[i], c.volumes[j] = c.volumes[j], c.volumes[i]
}

func (s *PriceSeries) sort() { sort.Sort(chronological{s}) }

// Append adds a point to the series. An existing value at that date is
// overwritten, giving priority to the last data seen.
func (s *PriceSeries) Append(p PricePoint) *PriceSeries {
	if i := slices.Index(s.days, p.Date); i >= 0 {
		s.prices[i], s.volumes[i] = p.Price, p.Volume
		return s
	}
	inOrder := len(s.days) == 0 || s.days[len(s.days)-1].Before(p.Date)
	s.days = append(s.days, p.Date)
	s.prices = append(s.prices, p.Price)
	s.volumes = append(s.volumes, p.Volume)
	if !inOrder {
		s.sort()
	}
	return s
}

// point returns the i-th point of the series.
func (s *PriceSeries) point(i int) PricePoint {
	return PricePoint{Date: s.days[i], Price: s.prices[i], Volume: s.volumes[i]}
}

// First returns the earliest point of the series, and false when empty.
func (s *PriceSeries) First() (PricePoint, bool) {
	if len(s.days) == 0 {
		return PricePoint{}, false
	}
	return s.point(0), true
}

// Last returns the latest point of the series, and false when empty.
func (s *PriceSeries) Last() (PricePoint, bool) {
	if len(s.days) == 0 {
		return PricePoint{}, false
	}
	return s.point(len(s.days) - 1), true
}

// Points returns an iterator over all points in chronological order.
func (s *PriceSeries) Points() iter.Seq[PricePoint] {
	return func(yield func(PricePoint) bool) {
		for i := range s.days {
			if !yield(s.point(i)) {
				return
			}
		}
	}
}

// search locates day in the series. When not found, the returned index is the
// insertion position.
func (s *PriceSeries) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(s.days, day, Date.Compare)
}

// Nearest returns the point whose date has the minimum absolute distance to
// day. When two candidates are equidistant, the earlier one wins.
// It returns false when the series is empty.
func (s *PriceSeries) Nearest(day Date) (PricePoint, bool) {
	if len(s.days) == 0 {
		return PricePoint{}, false
	}
	i, found := s.search(day)
	if found {
		return s.point(i), true
	}
	switch {
	case i == 0:
		return s.point(0), true
	case i == len(s.days):
		return s.point(len(s.days) - 1), true
	}
	before, after := s.days[i-1], s.days[i]
	if day.Sub(before) <= after.Sub(day) {
		return s.point(i - 1), true
	}
	return s.point(i), true
}

// AtOrAfter returns the first point dated on or after day, falling back to the
// last available point when day is beyond the series end.
// It returns false when the series is empty.
func (s *PriceSeries) AtOrAfter(day Date) (PricePoint, bool) {
	if len(s.days) == 0 {
		return PricePoint{}, false
	}
	i, found := s.search(day)
	if found {
		return s.point(i), true
	}
	if i == len(s.days) {
		return s.point(len(s.days) - 1), true
	}
	return s.point(i), true
}

// Window extracts the sub-series covering rng: every point inside the range,
// extended with the nearest point to each boundary when the boundary itself
// has no exact match. The receiver is left untouched.
func (s *PriceSeries) Window(rng Range) *PriceSeries {
	out := new(PriceSeries)
	if p, ok := s.Nearest(rng.From); ok {
		out.Append(p)
	}
	for i := range s.days {
		if rng.Contains(s.days[i]) {
			out.Append(s.point(i))
		}
	}
	if p, ok := s.Nearest(rng.To); ok {
		out.Append(p)
	}
	return out
}

// CoversYears reports whether the series has at least one point in every
// calendar year spanned by rng.
func (s *PriceSeries) CoversYears(rng Range) bool {
	seen := make(map[int]bool, len(s.days))
	for _, d := range s.days {
		seen[d.Year()] = true
	}
	for y := range rng.Years() {
		if !seen[y] {
			return false
		}
	}
	return true
}
