package whatif

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// CoinGecko fetches historical coin prices from the CoinGecko
// market_chart/range endpoint. No credential is needed.
type CoinGecko struct {
	BaseURL string // endpoint root, overridable in tests
	Client  *http.Client
}

// NewCoinGecko returns a client against the real endpoint.
func NewCoinGecko() *CoinGecko {
	return &CoinGecko{
		BaseURL: "https://api.coingecko.com/api/v3",
		Client:  newDailyCachingClient(),
	}
}

/*
	{
	  "prices": [[1641024000000, 47345.22], [1641060000000, 46811.77]],
	  "market_caps": [],
	  "total_volumes": []
	}
*/

// Range returns the daily price series for a coin identifier (e.g. "bitcoin")
// over rng. The endpoint returns multiple intraday samples as
// [timestamp, price] pairs; they are collapsed to one representative price
// per calendar day, the last one seen.
func (cg *CoinGecko) Range(coinID string, rng Range) (*PriceSeries, error) {
	addr := fmt.Sprintf("%s/coins/%s/market_chart/range?vs_currency=usd&from=%d&to=%d",
		cg.BaseURL, url.PathEscape(coinID), rng.From.Unix(), rng.To.Add(1).Unix())

	var jobj any
	if err := jwget(cg.Client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", coinID, err)
	}

	path := "$.prices"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing %q: %q %w", coinID, path, err)
	}
	samples, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: %q not a list", coinID, path)
	}

	// Last-seen sample wins for each day.
	perDay := make(map[Date]float64)
	for _, jsample := range samples {
		pair, ok := jsample.([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		ms, okTS := pair[0].(float64) // timestamps come back in milliseconds
		price, okPrice := pair[1].(float64)
		if !okTS || !okPrice || price <= 0 {
			continue
		}
		perDay[DateOfUnix(int64(ms)/1000)] = price
	}

	s := new(PriceSeries)
	for day, price := range perDay {
		if rng.Contains(day) {
			s.Append(PricePoint{Date: day, Price: price})
		}
	}
	return s, nil
}
