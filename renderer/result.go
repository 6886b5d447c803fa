// Package renderer turns calculation results and catalog content into
// markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/contrafactum/whatif"
)

// ResultMarkdown renders a full investment report for one calculation.
func ResultMarkdown(r *whatif.CalculationResult) string {
	var b strings.Builder

	first := r.Lots[0]
	last := r.Lots[len(r.Lots)-1]
	fmt.Fprintf(&b, "# What if you had invested in %s?\n\n", r.Asset.Name)
	fmt.Fprintf(&b, "%s %s (%s), from %s to %s\n\n", r.Asset.Icon, r.Asset.Name, r.Asset.Symbol, first.Date, lastSeriesDate(r))

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Invested | %s |\n", r.TotalInvested)
	fmt.Fprintf(&b, "| Final Value | %s |\n", r.FinalValue)
	fmt.Fprintf(&b, "| Gain | %s |\n", r.Gain.SignedString())
	fmt.Fprintf(&b, "| Return | %s |\n", r.PercentGain.SignedString())
	fmt.Fprintf(&b, "| Annualized (CAGR) | %s |\n", r.CAGR.SignedString())
	fmt.Fprintf(&b, "| Shares | %s |\n", r.TotalShares)
	fmt.Fprintf(&b, "| First Buy Price | %s |\n", price(r.BuyPrice))
	fmt.Fprintf(&b, "| Final Price | %s |\n", price(r.SellPrice))
	fmt.Fprintln(&b)

	if len(r.Lots) > 1 {
		fmt.Fprint(&b, "## Contributions\n\n")
		fmt.Fprintf(&b, "%d contributions, from %s to %s.\n\n", len(r.Lots), first.Date, last.Date)
		fmt.Fprintln(&b, "| Date | Amount | Price | Shares |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|")
		for _, lot := range r.Lots {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", lot.Date, lot.Amount, price(lot.Price), lot.Shares)
		}
		fmt.Fprintln(&b)
	}

	values := r.ValueSeries()
	fmt.Fprint(&b, "## Timeline\n\n")
	fmt.Fprintf(&b, "```\n%s\n```\n\n", Sparkline(values, 60))
	fmt.Fprintln(&b, "| Date | Price | Value | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, p := range sampleTimeline(values, 12) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Date, price(p.Price), p.Value, p.PercentGain.SignedString())
	}
	fmt.Fprintln(&b)

	if r.Synthetic {
		fmt.Fprint(&b, "> Note: no historical data was available for this request. Prices are\n")
		fmt.Fprint(&b, "> simulated and the result is illustrative, not historical.\n\n")
	} else {
		fmt.Fprintf(&b, "Data source: %s.\n\n", r.Source)
	}
	fmt.Fprint(&b, "*Educational purposes only. Past performance does not guarantee future results.*\n")

	return b.String()
}

// price formats a raw price with sensible precision: sub-dollar assets like
// early Dogecoin need more digits than a share of stock.
func price(v float64) string {
	if v < 1 {
		return fmt.Sprintf("$%.4f", v)
	}
	return fmt.Sprintf("$%.2f", v)
}

func lastSeriesDate(r *whatif.CalculationResult) whatif.Date {
	p, _ := r.Series.Last()
	return p.Date
}

// sampleTimeline keeps at most n rows, always including the first and last.
func sampleTimeline(values []whatif.PortfolioPoint, n int) []whatif.PortfolioPoint {
	if len(values) <= n {
		return values
	}
	out := make([]whatif.PortfolioPoint, 0, n)
	step := float64(len(values)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		out = append(out, values[int(float64(i)*step+0.5)])
	}
	out[n-1] = values[len(values)-1]
	return out
}
