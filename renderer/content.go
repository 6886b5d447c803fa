package renderer

import (
	"fmt"
	"strings"

	"github.com/contrafactum/whatif"
)

// AssetsMarkdown renders the asset catalog.
func AssetsMarkdown() string {
	var b strings.Builder
	fmt.Fprint(&b, "# Supported Assets\n\n")
	fmt.Fprintln(&b, "| | Asset | Symbol | Category | |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|")
	for a := range whatif.Assets() {
		fmt.Fprintf(&b, "| %s | %s (`%s`) | %s | %s | %s |\n", a.Icon, a.Name, a.ID, a.Symbol, a.Category, a.Description)
	}
	return b.String()
}

// ScenariosMarkdown renders the list of curated scenarios.
func ScenariosMarkdown(scenarios []whatif.Scenario) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Curated Scenarios\n\n")
	for _, s := range scenarios {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		fmt.Fprintf(&b, "`%s` — %s\n\n", s.ID, s.Description)
		fmt.Fprintf(&b, "%s invested in %s, %s to %s.\n\n", s.Amount, s.AssetID, s.BuyDate, s.SellDate)
	}
	return b.String()
}

// ScenarioMarkdown renders one replayed scenario: the narrative plus the
// outcome computed by the real pipeline.
func ScenarioMarkdown(s whatif.Scenario, r *whatif.CalculationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	fmt.Fprintf(&b, "%s\n\n", s.Story)

	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Invested | %s on %s |\n", r.TotalInvested, s.BuyDate)
	fmt.Fprintf(&b, "| Worth on %s | %s |\n", s.SellDate, r.FinalValue)
	fmt.Fprintf(&b, "| Return | %s |\n", r.PercentGain.SignedString())
	fmt.Fprintf(&b, "| Annualized (CAGR) | %s |\n", r.CAGR.SignedString())
	fmt.Fprintln(&b)

	if len(s.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(s.Tags, ", "))
	}
	if r.Synthetic {
		fmt.Fprint(&b, "> Note: prices for this replay are simulated, not historical.\n")
	}
	return b.String()
}

// StoriesMarkdown renders the educational stories.
func StoriesMarkdown(stories []whatif.Story) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Investment Stories\n\n")
	for _, s := range stories {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)
		fmt.Fprintf(&b, "%s\n\n", s.Content)
		fmt.Fprintf(&b, "**Lesson**: %s\n\n", s.Lesson)
	}
	return b.String()
}

// TipsMarkdown renders the daily tips.
func TipsMarkdown(tips []whatif.Tip) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Daily Tips\n\n")
	for _, tip := range tips {
		fmt.Fprintf(&b, "## %s\n\n", tip.Title)
		fmt.Fprintf(&b, "%s\n\n", tip.Content)
	}
	return b.String()
}

// LeaderboardMarkdown renders the best-performers board for one horizon.
func LeaderboardMarkdown(horizon string, entries []whatif.LeaderboardEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Top Performers (%s)\n\n", horizon)
	fmt.Fprintf(&b, "What a %s investment would have returned.\n\n", entries[0].Amount)
	fmt.Fprintln(&b, "| Rank | Asset | Return | Value |")
	fmt.Fprintln(&b, "|---:|:---|---:|---:|")
	for i, e := range entries {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, e.Symbol, e.Return.SignedString(), e.Value)
	}
	return b.String()
}
