package whatif

import (
	"errors"
	"fmt"
	"iter"
)

// Category classifies an asset for price-source selection.
type Category string

const (
	Crypto    Category = "crypto"
	Stock     Category = "stock"
	Commodity Category = "commodity"
	Index     Category = "index"
)

// ErrUnknownAsset is returned when a requested identifier has no descriptor.
var ErrUnknownAsset = errors.New("no such asset")

// Asset describes one investable asset of the catalog.
// Descriptors are static: defined at process start, never mutated.
type Asset struct {
	ID          string   // stable key, e.g. "bitcoin"
	Symbol      string   // ticker, e.g. "BTC"
	Name        string   // display name
	Category    Category // crypto | stock | commodity | index
	Icon        string
	Color       string
	Description string
}

// catalog is the fixed set of supported assets, in display order.
var catalog = []Asset{
	{ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", Category: Crypto, Icon: "₿", Color: "#F7931A", Description: "The original cryptocurrency"},
	{ID: "ethereum", Symbol: "ETH", Name: "Ethereum", Category: Crypto, Icon: "Ξ", Color: "#627EEA", Description: "Smart contract platform"},
	{ID: "dogecoin", Symbol: "DOGE", Name: "Dogecoin", Category: Crypto, Icon: "Ð", Color: "#C2A633", Description: "The meme cryptocurrency"},
	{ID: "tesla", Symbol: "TSLA", Name: "Tesla", Category: Stock, Icon: "T", Color: "#CC0000", Description: "Electric vehicle pioneer"},
	{ID: "nvidia", Symbol: "NVDA", Name: "NVIDIA", Category: Stock, Icon: "N", Color: "#76B900", Description: "AI and graphics processing"},
	{ID: "apple", Symbol: "AAPL", Name: "Apple", Category: Stock, Icon: "A", Color: "#000000", Description: "Consumer technology giant"},
	{ID: "amazon", Symbol: "AMZN", Name: "Amazon", Category: Stock, Icon: "A", Color: "#FF9900", Description: "E-commerce and cloud computing"},
	{ID: "google", Symbol: "GOOGL", Name: "Google", Category: Stock, Icon: "G", Color: "#4285F4", Description: "Search and technology"},
	{ID: "microsoft", Symbol: "MSFT", Name: "Microsoft", Category: Stock, Icon: "M", Color: "#00A4EF", Description: "Software and cloud services"},
	{ID: "netflix", Symbol: "NFLX", Name: "Netflix", Category: Stock, Icon: "N", Color: "#E50914", Description: "Streaming entertainment"},
	{ID: "gold", Symbol: "GOLD", Name: "Gold", Category: Commodity, Icon: "Au", Color: "#FFD700", Description: "Precious metal store of value"},
	{ID: "sp500", Symbol: "SPY", Name: "S&P 500", Category: Index, Icon: "S", Color: "#1F77B4", Description: "US stock market index"},
}

var catalogByID = func() map[string]*Asset {
	m := make(map[string]*Asset, len(catalog))
	for i := range catalog {
		m[catalog[i].ID] = &catalog[i]
	}
	return m
}()

// Assets returns an iterator over all supported assets, in display order.
func Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range catalog {
			if !yield(a) {
				return
			}
		}
	}
}

// LookupAsset resolves an asset identifier to its descriptor.
// It returns ErrUnknownAsset for identifiers outside the catalog.
func LookupAsset(id string) (Asset, error) {
	a, ok := catalogByID[id]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q", ErrUnknownAsset, id)
	}
	return *a, nil
}
