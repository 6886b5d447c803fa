package whatif

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAlphaVantageDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `{
			"Time Series (Daily)": {
				"2023-01-03": {"4. close": "108.10", "5. volume": "231402800"},
				"2023-01-04": {"4. close": "not-a-number", "5. volume": "1"},
				"2023-01-05": {"4. close": "110.34"},
				"2024-01-05": {"4. close": "238.45", "5. volume": "92379400"}
			}
		}`)
	}))
	defer srv.Close()

	av := &AlphaVantage{BaseURL: srv.URL, Client: srv.Client(), Key: "test"}
	s, err := av.Daily("TSLA", NewRange(NewDate(2023, 1, 1), NewDate(2023, 12, 31)))
	if err != nil {
		t.Fatal(err)
	}

	// The malformed close is skipped, the out-of-range 2024 row is filtered,
	// the missing volume defaults to zero.
	if s.Len() != 2 {
		t.Fatalf("Len() = %d want 2", s.Len())
	}
	first, _ := s.First()
	if first.Date != NewDate(2023, 1, 3) || first.Price != 108.10 || first.Volume != 231402800 {
		t.Errorf("first = %+v", first)
	}
	last, _ := s.Last()
	if last.Volume != 0 {
		t.Errorf("missing volume = %d want 0", last.Volume)
	}
}

func TestAlphaVantageRateLimitNote(t *testing.T) {
	// Rate limiting comes back as a 200 with a note instead of the series.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`)
	}))
	defer srv.Close()

	av := &AlphaVantage{BaseURL: srv.URL, Client: srv.Client(), Key: "test"}
	if _, err := av.Daily("TSLA", NewRange(NewDate(2023, 1, 1), NewDate(2023, 12, 31))); err == nil {
		t.Error("expected an error when the series key is missing")
	}
}

func TestAlphaVantageRequiresKey(t *testing.T) {
	av := &AlphaVantage{BaseURL: "http://127.0.0.1:1", Client: http.DefaultClient}
	if _, err := av.Daily("TSLA", NewRange(NewDate(2023, 1, 1), NewDate(2023, 12, 31))); err == nil {
		t.Error("expected an error without an API key")
	}
}
