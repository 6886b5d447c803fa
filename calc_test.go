package whatif

import (
	"errors"
	"math"
	"testing"
)

// relTol compares with the 1e-9 relative tolerance of floating point checks.
func relTol(t *testing.T, name string, got, want float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if diff > 1e-9*math.Max(math.Abs(got), math.Abs(want)) {
		t.Errorf("%s = %v want %v", name, got, want)
	}
}

func dailySeries(from Date, prices ...float64) *PriceSeries {
	s := new(PriceSeries)
	for i, p := range prices {
		s.Append(PricePoint{Date: from.Add(i), Price: p})
	}
	return s
}

func TestSingleLotReturns(t *testing.T) {
	buy := NewDate(2011, 2, 1)
	series := seriesOf(
		PricePoint{Date: buy, Price: 1.0},
		PricePoint{Date: NewDate(2016, 6, 1), Price: 600},
		PricePoint{Date: NewDate(2021, 11, 1), Price: 61000},
	)
	asset, _ := LookupAsset("bitcoin")

	r, err := ComputeReturns(asset, SingleSchedule{Amount: USD(100), Date: buy}, series)
	if err != nil {
		t.Fatal(err)
	}

	relTol(t, "shares", r.TotalShares.AsFloat(), 100/1.0)
	relTol(t, "finalValue", r.FinalValue.AsFloat(), r.TotalShares.AsFloat()*r.SellPrice)
	relTol(t, "percentGain", float64(r.PercentGain), (r.FinalValue.AsFloat()-100)/100*100)
	if r.BuyPrice != 1.0 || r.SellPrice != 61000 {
		t.Errorf("buy/sell prices = %v/%v", r.BuyPrice, r.SellPrice)
	}

	// CAGR round-trips: (1+CAGR)^years * invested == finalValue.
	years := float64(NewDate(2021, 11, 1).Sub(buy)) / 365
	back := math.Pow(1+float64(r.CAGR)/100, years) * r.TotalInvested.AsFloat()
	relTol(t, "CAGR round-trip", back, r.FinalValue.AsFloat())
}

func TestPeriodicReturns(t *testing.T) {
	series := dailySeries(NewDate(2020, 1, 1),
		10, 11, 12, 13, 14, 15, 16,
		17, 18, 19, 20, 21, 22, 23,
		24, 25)
	asset, _ := LookupAsset("apple")

	r, err := ComputeReturns(asset, PeriodicSchedule{Amount: USD(70), Every: Weekly}, series)
	if err != nil {
		t.Fatal(err)
	}

	// Contributions land on points 0, 7 and 14.
	if len(r.Lots) != 3 {
		t.Fatalf("lots = %d want 3", len(r.Lots))
	}
	// totalInvested == events x amount, exactly.
	if !r.TotalInvested.Equal(USD(210)) {
		t.Errorf("TotalInvested = %v want $210.00 exactly", r.TotalInvested)
	}
	wantShares := 70.0/10 + 70.0/17 + 70.0/24
	relTol(t, "shares", r.TotalShares.AsFloat(), wantShares)
	relTol(t, "finalValue", r.FinalValue.AsFloat(), wantShares*25)
}

func TestSteppedReturns(t *testing.T) {
	series := seriesOf(
		PricePoint{Date: NewDate(2020, 1, 1), Price: 10},
		PricePoint{Date: NewDate(2020, 6, 1), Price: 20},
		PricePoint{Date: NewDate(2021, 1, 1), Price: 40},
	)
	asset, _ := LookupAsset("tesla")

	// Deliberately unsorted input: the schedule sorts internally.
	sched := SteppedSchedule{Lots: []Lot{
		{Date: NewDate(2020, 5, 20), Amount: USD(300)},
		{Date: NewDate(2020, 1, 1), Amount: USD(100)},
	}}

	r, err := ComputeReturns(asset, sched, series)
	if err != nil {
		t.Fatal(err)
	}

	// totalInvested == sum of lots, exactly, regardless of input order.
	if !r.TotalInvested.Equal(USD(400)) {
		t.Errorf("TotalInvested = %v want $400.00 exactly", r.TotalInvested)
	}
	if r.Lots[0].Date != NewDate(2020, 1, 1) {
		t.Error("lots were not sorted by date")
	}
	// The second lot prices at the first point at or after 2020-05-20.
	relTol(t, "second lot price", r.Lots[1].Price, 20)
	relTol(t, "shares", r.TotalShares.AsFloat(), 100.0/10+300.0/20)
	relTol(t, "finalValue", r.FinalValue.AsFloat(), (100.0/10+300.0/20)*40)
}

func TestInvalidAmountRejectedBeforeResolution(t *testing.T) {
	// A resolver with no sources panics if consulted; validation must reject
	// the zero amount before any resolution is attempted.
	r := &Resolver{}

	_, err := Calculate(r, "bitcoin", SingleSchedule{Amount: USD(0), Date: NewDate(2011, 2, 1)},
		NewDate(2011, 2, 1), NewDate(2021, 11, 1))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("error = %v want ErrInvalidAmount", err)
	}

	_, err = Calculate(r, "bitcoin", SingleSchedule{Amount: USD(-5), Date: NewDate(2011, 2, 1)},
		NewDate(2011, 2, 1), NewDate(2021, 11, 1))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("error = %v want ErrInvalidAmount", err)
	}
}

func TestSameDayRangeRejected(t *testing.T) {
	series := dailySeries(NewDate(2020, 1, 1), 10)
	asset, _ := LookupAsset("apple")

	_, err := ComputeReturns(asset, SingleSchedule{Amount: USD(100), Date: NewDate(2020, 1, 1)}, series)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("error = %v want ErrInvalidRange (CAGR undefined over zero days)", err)
	}
}

func TestValueSeries(t *testing.T) {
	series := dailySeries(NewDate(2020, 1, 1), 10, 20, 40)
	asset, _ := LookupAsset("apple")

	r, err := ComputeReturns(asset, SingleSchedule{Amount: USD(100), Date: NewDate(2020, 1, 1)}, series)
	if err != nil {
		t.Fatal(err)
	}

	vs := r.ValueSeries()
	if len(vs) != 3 {
		t.Fatalf("ValueSeries() len = %d want 3", len(vs))
	}
	relTol(t, "day 1 value", vs[0].Value.AsFloat(), 100)
	relTol(t, "day 3 value", vs[2].Value.AsFloat(), 400)
	relTol(t, "day 3 percent", float64(vs[2].PercentGain), 300)
}

func TestScheduleValidation(t *testing.T) {
	testCases := []struct {
		name  string
		sched Schedule
	}{
		{"zero single amount", SingleSchedule{Amount: USD(0)}},
		{"negative periodic amount", PeriodicSchedule{Amount: USD(-1), Every: Weekly}},
		{"zero frequency", PeriodicSchedule{Amount: USD(10), Every: 0}},
		{"no lots", SteppedSchedule{}},
		{"zero lot amount", SteppedSchedule{Lots: []Lot{{Date: NewDate(2020, 1, 1), Amount: USD(0)}}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.sched.Validate(); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("Validate() = %v want ErrInvalidAmount", err)
			}
		})
	}
}
