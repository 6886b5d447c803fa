package whatif

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidAmount is returned when a contribution amount is not positive.
var ErrInvalidAmount = errors.New("invalid amount")

// daysPerYear is the day-count convention used for annualizing returns.
const daysPerYear = 365.0

// Lot is one contribution event: an amount invested on a date.
type Lot struct {
	Date   Date
	Amount Money
}

// LotResult is a lot after pricing against the resolved series.
type LotResult struct {
	Date   Date
	Amount Money
	Price  float64
	Shares Quantity
}

// Frequency is the cadence of a periodic schedule, expressed as a step in
// data points over the resolved series. Daily series make these roughly
// calendar-accurate; coarser snapshots make them a coarse approximation,
// which is accepted.
type Frequency int

const (
	Weekly  Frequency = 7
	Monthly Frequency = 30
)

func (f Frequency) String() string {
	switch f {
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	}
	return fmt.Sprintf("every %d points", int(f))
}

// Schedule is a contribution plan. The three strategies (single lot, periodic
// contribution, arbitrary stepped lots) are all expressed as "a sequence of
// lots", priced against a resolved series.
type Schedule interface {
	// Validate rejects ill-formed plans before any price resolution happens.
	Validate() error
	// resolve prices the plan's lots against the series.
	resolve(series *PriceSeries) ([]LotResult, error)
}

// SingleSchedule invests one amount on one date.
type SingleSchedule struct {
	Amount Money
	Date   Date
}

func (s SingleSchedule) Validate() error {
	if !s.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be > 0, got %s", ErrInvalidAmount, s.Amount)
	}
	return nil
}

func (s SingleSchedule) resolve(series *PriceSeries) ([]LotResult, error) {
	p, ok := series.Nearest(s.Date)
	if !ok {
		return nil, errors.New("empty price series")
	}
	return []LotResult{{
		Date:   p.Date,
		Amount: s.Amount,
		Price:  p.Price,
		Shares: s.Amount.DivPrice(USD(p.Price)),
	}}, nil
}

// PeriodicSchedule invests a fixed amount at a fixed cadence over the whole
// series (dollar-cost averaging).
type PeriodicSchedule struct {
	Amount Money
	Every  Frequency
}

func (s PeriodicSchedule) Validate() error {
	if !s.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be > 0, got %s", ErrInvalidAmount, s.Amount)
	}
	if s.Every <= 0 {
		return fmt.Errorf("%w: frequency must be > 0, got %d", ErrInvalidAmount, s.Every)
	}
	return nil
}

func (s PeriodicSchedule) resolve(series *PriceSeries) ([]LotResult, error) {
	if series.Len() == 0 {
		return nil, errors.New("empty price series")
	}
	var lots []LotResult
	i := 0
	for p := range series.Points() {
		if i%int(s.Every) == 0 {
			lots = append(lots, LotResult{
				Date:   p.Date,
				Amount: s.Amount,
				Price:  p.Price,
				Shares: s.Amount.DivPrice(USD(p.Price)),
			})
		}
		i++
	}
	return lots, nil
}

// SteppedSchedule invests a user-supplied set of lots. Lots are sorted by
// date internally, so input order does not matter.
type SteppedSchedule struct {
	Lots []Lot
}

func (s SteppedSchedule) Validate() error {
	if len(s.Lots) == 0 {
		return fmt.Errorf("%w: at least one lot is required", ErrInvalidAmount)
	}
	for _, lot := range s.Lots {
		if !lot.Amount.IsPositive() {
			return fmt.Errorf("%w: lot on %s has amount %s, must be > 0", ErrInvalidAmount, lot.Date, lot.Amount)
		}
	}
	return nil
}

func (s SteppedSchedule) resolve(series *PriceSeries) ([]LotResult, error) {
	if series.Len() == 0 {
		return nil, errors.New("empty price series")
	}
	sorted := slices.Clone(s.Lots)
	slices.SortStableFunc(sorted, func(a, b Lot) int { return a.Date.Compare(b.Date) })

	lots := make([]LotResult, 0, len(sorted))
	for _, lot := range sorted {
		// Nearest available point at or after the contribution date, not
		// interpolated.
		p, _ := series.AtOrAfter(lot.Date)
		lots = append(lots, LotResult{
			Date:   lot.Date,
			Amount: lot.Amount,
			Price:  p.Price,
			Shares: lot.Amount.DivPrice(USD(p.Price)),
		})
	}
	return lots, nil
}

// CalculationResult is what an investment plan would be worth over the
// resolved series. Derived, never persisted: computed fresh on every request
// and owned by the caller.
type CalculationResult struct {
	Asset         Asset
	TotalInvested Money
	TotalShares   Quantity
	FinalValue    Money
	Gain          Money
	PercentGain   Percent
	CAGR          Percent
	BuyPrice      float64 // price of the first lot
	SellPrice     float64 // last available price
	Lots          []LotResult
	Series        *PriceSeries
	Synthetic     bool
	Source        string
}

// ComputeReturns prices a schedule against a resolved series and derives the
// financial metrics. It is a pure function: no I/O, and the series is not
// mutated.
func ComputeReturns(asset Asset, schedule Schedule, series *PriceSeries) (*CalculationResult, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	lots, err := schedule.resolve(series)
	if err != nil {
		return nil, err
	}

	var invested Money
	var shares Quantity
	for _, lot := range lots {
		invested = invested.Add(lot.Amount)
		shares = shares.Add(lot.Shares)
	}

	last, _ := series.Last()
	finalValue := USD(last.Price).Mul(shares)
	gain := finalValue.Sub(invested)
	percentGain := Percent(100 * gain.AsFloat() / invested.AsFloat())

	days := last.Date.Sub(lots[0].Date)
	if days <= 0 {
		return nil, fmt.Errorf("%w: nothing elapses between %s and %s", ErrInvalidRange, lots[0].Date, last.Date)
	}
	years := float64(days) / daysPerYear
	cagr := Percent(100 * (math.Pow(finalValue.AsFloat()/invested.AsFloat(), 1/years) - 1))

	return &CalculationResult{
		Asset:         asset,
		TotalInvested: invested,
		TotalShares:   shares,
		FinalValue:    finalValue,
		Gain:          gain,
		PercentGain:   percentGain,
		CAGR:          cagr,
		BuyPrice:      lots[0].Price,
		SellPrice:     last.Price,
		Lots:          lots,
		Series:        series,
	}, nil
}

// PortfolioPoint is the value of the position at one point of the series.
type PortfolioPoint struct {
	Date        Date
	Price       float64
	Value       Money
	Gain        Money
	PercentGain Percent
}

// ValueSeries derives the position's value over time: at each price point,
// the shares bought so far times the price, against the amount invested so
// far.
func (r *CalculationResult) ValueSeries() []PortfolioPoint {
	out := make([]PortfolioPoint, 0, r.Series.Len())
	var invested Money
	var shares Quantity
	next := 0
	for p := range r.Series.Points() {
		for next < len(r.Lots) && !r.Lots[next].Date.After(p.Date) {
			invested = invested.Add(r.Lots[next].Amount)
			shares = shares.Add(r.Lots[next].Shares)
			next++
		}
		value := USD(p.Price).Mul(shares)
		gain := value.Sub(invested)
		pt := PortfolioPoint{Date: p.Date, Price: p.Price, Value: value, Gain: gain}
		if !invested.IsZero() {
			pt.PercentGain = Percent(100 * gain.AsFloat() / invested.AsFloat())
		}
		out = append(out, pt)
	}
	return out
}

// Calculate runs the full pipeline: validate the schedule, resolve prices for
// the asset over [from, to], and compute the returns. The schedule is
// validated first so an invalid amount is rejected before any resolution
// work.
func Calculate(r *Resolver, assetID string, schedule Schedule, from, to Date) (*CalculationResult, error) {
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	res, err := r.Resolve(assetID, from, to)
	if err != nil {
		return nil, err
	}
	result, err := ComputeReturns(res.Asset, schedule, res.Series)
	if err != nil {
		return nil, err
	}
	result.Synthetic = res.Synthetic
	result.Source = res.Source
	return result, nil
}
