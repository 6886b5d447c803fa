package whatif

import (
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

const alphaVantageKeyEnv = "ALPHAVANTAGE_API_KEY"

var alphaVantageKeyFlag = flag.String("alphavantage-api-key", "", "Alpha Vantage API key used to fetch daily stock prices.\n If missing it is read from the environment variable \""+alphaVantageKeyEnv+"\". You can get one at https://www.alphavantage.co/")

func alphaVantageKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *alphaVantageKeyFlag == "" {
		*alphaVantageKeyFlag = os.Getenv(alphaVantageKeyEnv)
	}
	return *alphaVantageKeyFlag
}

// AlphaVantage fetches daily close prices for stock and commodity tickers
// from the Alpha Vantage TIME_SERIES_DAILY endpoint.
//
// The free tier allows 5 requests per minute and 500 per day, so responses go
// through the daily disk cache.
type AlphaVantage struct {
	BaseURL string // endpoint, overridable in tests
	Client  *http.Client
	Key     string
}

// NewAlphaVantage returns a client against the real endpoint, with the API
// key taken from the flag or environment.
func NewAlphaVantage() *AlphaVantage {
	return &AlphaVantage{
		BaseURL: "https://www.alphavantage.co/query",
		Client:  newDailyCachingClient(),
		Key:     alphaVantageKey(),
	}
}

/*
	{
	  "Meta Data": {
	    "2. Symbol": "AAPL",
	    "3. Last Refreshed": "2024-01-01"
	  },
	  "Time Series (Daily)": {
	    "2024-01-01": {
	      "1. open": "187.15",
	      "4. close": "185.64",
	      "5. volume": "82488700"
	    }
	  }
	}
*/

// Daily returns the close price series for symbol over rng, ascending.
func (av *AlphaVantage) Daily(symbol string, rng Range) (*PriceSeries, error) {
	if av.Key == "" {
		return nil, fmt.Errorf("alpha vantage API key is not set, use -alphavantage-api-key or %s", alphaVantageKeyEnv)
	}
	addr := fmt.Sprintf("%s?function=TIME_SERIES_DAILY&symbol=%s&outputsize=full&apikey=%s",
		av.BaseURL, url.QueryEscape(symbol), av.Key)

	var jobj any
	if err := jwget(av.Client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	path := `$["Time Series (Daily)"]`
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		// Rate-limit notes and error messages come back as 200s without the
		// series key, so a missing key is just "no data".
		return nil, fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	days, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error parsing %q: %q not an object", symbol, path)
	}

	s := new(PriceSeries)
	for dayStr, jrow := range days {
		day, err := ParseDate(dayStr)
		if err != nil || !rng.Contains(day) {
			continue
		}
		row, ok := jrow.(map[string]any)
		if !ok {
			continue
		}
		closeStr, _ := row["4. close"].(string)
		price, err := strconv.ParseFloat(closeStr, 64)
		if err != nil || price <= 0 {
			continue
		}
		var volume int64
		if volStr, ok := row["5. volume"].(string); ok {
			volume, _ = strconv.ParseInt(volStr, 10, 64)
		}
		s.Append(PricePoint{Date: day, Price: price, Volume: volume})
	}
	return s, nil
}
