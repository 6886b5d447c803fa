package whatif

import "testing"

func seriesOf(points ...PricePoint) *PriceSeries {
	s := new(PriceSeries)
	for _, p := range points {
		s.Append(p)
	}
	return s
}

func TestAppendKeepsChronologicalOrder(t *testing.T) {
	s := seriesOf(
		PricePoint{Date: NewDate(2021, 1, 1), Price: 3},
		PricePoint{Date: NewDate(2019, 1, 1), Price: 1},
		PricePoint{Date: NewDate(2020, 1, 1), Price: 2},
	)

	first, _ := s.First()
	last, _ := s.Last()
	if first.Date != NewDate(2019, 1, 1) || last.Date != NewDate(2021, 1, 1) {
		t.Errorf("series not sorted: first %v last %v", first.Date, last.Date)
	}

	// Appending an existing date overwrites, it does not duplicate.
	s.Append(PricePoint{Date: NewDate(2020, 1, 1), Price: 42})
	if s.Len() != 3 {
		t.Fatalf("Len() = %d want 3", s.Len())
	}
	if p, _ := s.Nearest(NewDate(2020, 1, 1)); p.Price != 42 {
		t.Errorf("overwrite failed, price = %v want 42", p.Price)
	}
}

func TestNearest(t *testing.T) {
	s := seriesOf(
		PricePoint{Date: NewDate(2020, 1, 10), Price: 1},
		PricePoint{Date: NewDate(2020, 1, 20), Price: 2},
		PricePoint{Date: NewDate(2020, 1, 30), Price: 3},
	)

	testCases := []struct {
		name string
		day  Date
		want Date
	}{
		{"exact match", NewDate(2020, 1, 20), NewDate(2020, 1, 20)},
		{"closer to earlier", NewDate(2020, 1, 13), NewDate(2020, 1, 10)},
		{"closer to later", NewDate(2020, 1, 18), NewDate(2020, 1, 20)},
		{"equidistant prefers earlier", NewDate(2020, 1, 15), NewDate(2020, 1, 10)},
		{"before the series", NewDate(2019, 6, 1), NewDate(2020, 1, 10)},
		{"after the series", NewDate(2021, 6, 1), NewDate(2020, 1, 30)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := s.Nearest(tc.day)
			if !ok {
				t.Fatal("Nearest() reported empty series")
			}
			if p.Date != tc.want {
				t.Errorf("Nearest(%v) = %v want %v", tc.day, p.Date, tc.want)
			}
		})
	}

	if _, ok := new(PriceSeries).Nearest(NewDate(2020, 1, 1)); ok {
		t.Error("Nearest() on empty series should report false")
	}
}

func TestAtOrAfter(t *testing.T) {
	s := seriesOf(
		PricePoint{Date: NewDate(2020, 1, 10), Price: 1},
		PricePoint{Date: NewDate(2020, 1, 20), Price: 2},
	)

	if p, _ := s.AtOrAfter(NewDate(2020, 1, 11)); p.Date != NewDate(2020, 1, 20) {
		t.Errorf("AtOrAfter() = %v want 2020-01-20", p.Date)
	}
	if p, _ := s.AtOrAfter(NewDate(2020, 1, 10)); p.Date != NewDate(2020, 1, 10) {
		t.Errorf("AtOrAfter() exact = %v want 2020-01-10", p.Date)
	}
	// Beyond the end, the last available point stands in.
	if p, _ := s.AtOrAfter(NewDate(2022, 1, 1)); p.Date != NewDate(2020, 1, 20) {
		t.Errorf("AtOrAfter() past end = %v want 2020-01-20", p.Date)
	}
}

func TestWindow(t *testing.T) {
	s := seriesOf(
		PricePoint{Date: NewDate(2019, 12, 1), Price: 1},
		PricePoint{Date: NewDate(2020, 2, 1), Price: 2},
		PricePoint{Date: NewDate(2020, 6, 1), Price: 3},
		PricePoint{Date: NewDate(2021, 3, 1), Price: 4},
	)

	w := s.Window(NewRange(NewDate(2020, 1, 15), NewDate(2020, 7, 1)))

	// Nearest point to each boundary plus everything inside; here both
	// boundary picks already sit inside the range, so no extra points.
	if w.Len() != 2 {
		t.Fatalf("Window() Len = %d want 2", w.Len())
	}
	first, _ := w.First()
	last, _ := w.Last()
	if first.Date != NewDate(2020, 2, 1) || last.Date != NewDate(2020, 6, 1) {
		t.Errorf("Window() = [%v, %v]", first.Date, last.Date)
	}

	if s.Len() != 4 {
		t.Error("Window() mutated the receiver")
	}
}

func TestCoversYears(t *testing.T) {
	s := seriesOf(
		PricePoint{Date: NewDate(2019, 6, 1), Price: 1},
		PricePoint{Date: NewDate(2020, 6, 1), Price: 2},
		PricePoint{Date: NewDate(2022, 6, 1), Price: 3},
	)

	if !s.CoversYears(NewRange(NewDate(2019, 3, 1), NewDate(2020, 9, 1))) {
		t.Error("CoversYears() = false for fully covered span")
	}
	// 2021 has no point: the whole request is a miss, not just that year.
	if s.CoversYears(NewRange(NewDate(2019, 3, 1), NewDate(2022, 9, 1))) {
		t.Error("CoversYears() = true despite a gap year")
	}
}
