package whatif

import (
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Bundled historical snapshots. The file layout (column order, comment and
// header conventions) is fixed: the parsers below depend on it.
//
//go:embed snapshots/*.csv
var snapshotFS embed.FS

const (
	goldFile   = "snapshots/GOLD-DATA.csv"
	sp500File  = "snapshots/SP500-DATA.csv"
	stocksFile = "snapshots/DATA-CRUDA-STOCKS_clean.csv"
)

// cryptoFiles is the fixed allowlist of coins with a bundled snapshot.
var cryptoFiles = map[string]string{
	"BTC":  "snapshots/Bitcoin-Data.csv",
	"ETH":  "snapshots/Ethereum-Data.csv",
	"DOGE": "snapshots/Dogecoin-Data.csv",
}

// commodityFiles maps commodity/index tickers to their snapshot.
var commodityFiles = map[string]string{
	"GOLD": goldFile,
	"SPY":  sp500File,
}

// stockNames maps the company names used in the stock snapshot's section
// headers to their tickers. A section with a name outside this map is ignored.
var stockNames = map[string]string{
	"Apple":              "AAPL",
	"Amazon":             "AMZN",
	"Microsoft":          "MSFT",
	"Alphabet":           "GOOGL",
	"Meta Platforms":     "META",
	"Netflix":            "NFLX",
	"JPMorgan Chase":     "JPM",
	"Berkshire Hathaway": "BRK.A",
	"Oracle":             "ORCL",
}

// SnapshotStore loads and caches the bundled snapshots.
//
// Each snapshot is parsed at most once per process: the cache is write-once
// then read-only, and concurrent first loads are collapsed into a single
// parse by a singleflight group.
type SnapshotStore struct {
	fsys fs.FS

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]*PriceSeries
}

// NewSnapshotStore returns a store backed by the embedded snapshot files.
func NewSnapshotStore() *SnapshotStore { return NewSnapshotStoreFS(snapshotFS) }

// NewSnapshotStoreFS returns a store reading snapshots from fsys. Tests use it
// to substitute fixture data for the bundled files.
func NewSnapshotStoreFS(fsys fs.FS) *SnapshotStore {
	return &SnapshotStore{fsys: fsys, cache: make(map[string]*PriceSeries)}
}

// load memoizes parse(content of path) under key.
func (st *SnapshotStore) load(key, path string, parse func(string) *PriceSeries) (*PriceSeries, error) {
	st.mu.Lock()
	if s, ok := st.cache[key]; ok {
		st.mu.Unlock()
		return s, nil
	}
	st.mu.Unlock()

	v, err, _ := st.group.Do(key, func() (any, error) {
		content, err := fs.ReadFile(st.fsys, path)
		if err != nil {
			return nil, fmt.Errorf("cannot read snapshot %s: %w", path, err)
		}
		s := parse(string(content))
		st.mu.Lock()
		st.cache[key] = s
		st.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PriceSeries), nil
}

// Commodity returns the snapshot series for a commodity or index ticker
// (GOLD, SPY), or false when the ticker has no bundled snapshot.
func (st *SnapshotStore) Commodity(symbol string) (*PriceSeries, bool, error) {
	path, ok := commodityFiles[symbol]
	if !ok {
		return nil, false, nil
	}
	s, err := st.load("commodity/"+symbol, path, parseCommodityCSV)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// Crypto returns the snapshot series for a coin ticker of the allowlist
// (BTC, ETH, DOGE), or false for any other ticker.
func (st *SnapshotStore) Crypto(symbol string) (*PriceSeries, bool, error) {
	path, ok := cryptoFiles[symbol]
	if !ok {
		return nil, false, nil
	}
	s, err := st.load("crypto/"+symbol, path, parseCryptoCSV)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// Stock returns the annual snapshot series for a stock ticker, or false when
// the bundled stock file has no section for it.
func (st *SnapshotStore) Stock(symbol string) (*PriceSeries, bool, error) {
	s, err := st.load("stock/"+symbol, stocksFile, func(text string) *PriceSeries {
		return parseStockSections(text)[symbol]
	})
	if err != nil {
		return nil, false, err
	}
	if s == nil || s.Len() == 0 {
		return nil, false, nil
	}
	return s, true, nil
}

// parseRow parses one "date,price" line. It returns false for anything that
// is not a well-formed row: malformed rows are absent, never fatal.
func parseRow(line string) (PricePoint, bool) {
	day, price, ok := strings.Cut(line, ",")
	if !ok {
		return PricePoint{}, false
	}
	on, err := ParseDate(strings.TrimSpace(day))
	if err != nil {
		return PricePoint{}, false
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || p <= 0 {
		return PricePoint{}, false
	}
	return PricePoint{Date: on, Price: p}, true
}

// parseCommodityCSV parses a commodity snapshot: a leading block of '#'
// comment lines, a header, then "date,price" rows.
func parseCommodityCSV(text string) *PriceSeries {
	s := new(PriceSeries)
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		if p, ok := parseRow(line); ok {
			s.Append(p)
		}
	}
	return s
}

// parseCryptoCSV parses a coin snapshot: a header row then "date,price" rows.
func parseCryptoCSV(text string) *PriceSeries {
	s := new(PriceSeries)
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if p, ok := parseRow(lines[i]); ok {
			s.Append(p)
		}
	}
	return s
}

var stockSectionRe = regexp.MustCompile(`^# (.+) Historical`)

// parseStockSections parses the multi-section stock snapshot. Each section is
// introduced by a comment line naming the company; subsequent rows are
// "year,average,open,high,low,close,change". The close price stands for the
// whole year, dated December 31. Sections for companies outside stockNames
// are dropped.
func parseStockSections(text string) map[string]*PriceSeries {
	out := make(map[string]*PriceSeries)
	var current *PriceSeries
	for _, line := range strings.Split(text, "\n") {
		if m := stockSectionRe.FindStringSubmatch(line); m != nil {
			symbol, known := stockNames[strings.TrimSpace(m[1])]
			current = nil
			if known {
				current = new(PriceSeries)
				out[symbol] = current
			}
			continue
		}
		if current == nil || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 6 {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue // header row, or a malformed year
		}
		closePrice, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
		if err != nil || closePrice <= 0 {
			continue
		}
		current.Append(PricePoint{Date: NewDate(year, time.December, 31), Price: closePrice})
	}
	return out
}
