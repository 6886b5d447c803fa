package whatif

import (
	"errors"
	"fmt"
	"log"
)

// ErrInvalidRange is returned when the requested dates do not form a valid
// buy/sell interval.
var ErrInvalidRange = errors.New("invalid date range")

// Resolution is the outcome of a successful price resolution.
type Resolution struct {
	Asset  Asset
	Range  Range
	Series *PriceSeries
	// Synthetic is true when the series comes from the generator rather than
	// real data, so callers can warn the user about simulated prices.
	Synthetic bool
	Source    string
}

// priceSource is one step of the resolution chain: a source either produces a
// usable series for the request, or reports a miss so the next source is
// tried. Misses carry no error: remote failures are absorbed here.
type priceSource interface {
	name() string
	tryResolve(asset Asset, rng Range) (*PriceSeries, bool)
}

// Resolver resolves an asset and date range to a price series by trying an
// ordered list of sources: bundled snapshots first, then the remote APIs,
// then the synthetic generator, which always succeeds.
type Resolver struct {
	sources []priceSource
}

// NewResolver assembles the standard chain from its collaborators.
func NewResolver(store *SnapshotStore, stocks *AlphaVantage, coins *CoinGecko, gen *Generator) *Resolver {
	return &Resolver{sources: []priceSource{
		&snapshotSource{store: store},
		&alphaVantageSource{api: stocks},
		&coinGeckoSource{api: coins},
		&syntheticSource{gen: gen},
	}}
}

// NewDefaultResolver returns a resolver over the bundled snapshots, the real
// remote endpoints, and a randomly seeded generator.
func NewDefaultResolver() *Resolver {
	return NewResolver(NewSnapshotStore(), NewAlphaVantage(), NewCoinGecko(), NewGenerator())
}

// Resolve returns the price series for an asset over [from, to].
//
// Unknown assets and invalid ranges fail fast; everything else resolves, in
// the worst case to a synthetic series flagged as such.
func (r *Resolver) Resolve(assetID string, from, to Date) (*Resolution, error) {
	asset, err := LookupAsset(assetID)
	if err != nil {
		return nil, err
	}
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return nil, fmt.Errorf("%w: %s is not before %s", ErrInvalidRange, from, to)
	}
	rng := Range{From: from, To: to}

	for _, src := range r.sources {
		series, ok := src.tryResolve(asset, rng)
		if !ok {
			continue
		}
		return &Resolution{
			Asset:     asset,
			Range:     rng,
			Series:    series,
			Synthetic: src.name() == "synthetic",
			Source:    src.name(),
		}, nil
	}
	// Unreachable: the synthetic source always resolves.
	return nil, fmt.Errorf("no source could resolve %q over %s", assetID, rng)
}

// snapshotSource serves the bundled class-specific snapshots. A hit requires
// the snapshot to have at least one point in every calendar year spanned by
// the request; partial coverage is a miss for the whole request.
type snapshotSource struct {
	store *SnapshotStore
}

func (s *snapshotSource) name() string { return "snapshot" }

func (s *snapshotSource) tryResolve(asset Asset, rng Range) (*PriceSeries, bool) {
	var (
		snapshot *PriceSeries
		found    bool
		err      error
	)
	switch asset.Category {
	case Commodity, Index:
		snapshot, found, err = s.store.Commodity(asset.Symbol)
	case Crypto:
		snapshot, found, err = s.store.Crypto(asset.Symbol)
	case Stock:
		snapshot, found, err = s.store.Stock(asset.Symbol)
	}
	if err != nil {
		log.Printf("snapshot load failed for %q (ignored): %v", asset.ID, err)
		return nil, false
	}
	if !found || !snapshot.CoversYears(rng) {
		return nil, false
	}
	window := snapshot.Window(rng)
	if window.Len() == 0 {
		return nil, false
	}
	return window, true
}

// alphaVantageSource serves stock, commodity and index tickers from the
// remote daily-series API. Failures of any kind are a miss, never an error.
type alphaVantageSource struct {
	api *AlphaVantage
}

func (s *alphaVantageSource) name() string { return "alphavantage" }

func (s *alphaVantageSource) tryResolve(asset Asset, rng Range) (*PriceSeries, bool) {
	switch asset.Category {
	case Stock, Commodity, Index:
	default:
		return nil, false
	}
	series, err := s.api.Daily(asset.Symbol, rng)
	if err != nil {
		log.Printf("alpha vantage miss for %q (ignored): %v", asset.Symbol, err)
		return nil, false
	}
	if series.Len() == 0 {
		return nil, false
	}
	return series, true
}

// coinGeckoSource serves the crypto allowlist from the coin market-chart API.
type coinGeckoSource struct {
	api *CoinGecko
}

func (s *coinGeckoSource) name() string { return "coingecko" }

func (s *coinGeckoSource) tryResolve(asset Asset, rng Range) (*PriceSeries, bool) {
	if asset.Category != Crypto {
		return nil, false
	}
	series, err := s.api.Range(asset.ID, rng)
	if err != nil {
		log.Printf("coingecko miss for %q (ignored): %v", asset.ID, err)
		return nil, false
	}
	if series.Len() == 0 {
		return nil, false
	}
	return series, true
}

// syntheticSource is the terminal fallback.
type syntheticSource struct {
	gen *Generator
}

func (s *syntheticSource) name() string { return "synthetic" }

func (s *syntheticSource) tryResolve(asset Asset, rng Range) (*PriceSeries, bool) {
	return s.gen.GenerateSeries(asset.ID, rng), true
}
