// Package whatif answers one question: what would a past investment be worth
// today?
//
// Given an asset, a contribution schedule and a date range, it resolves a
// historical price series and derives the return metrics. Prices come from
// bundled snapshot tables when they cover the request, from a remote price
// API when they do not, and from a synthetic random walk as the terminal
// fallback, so a syntactically valid request always produces a chartable
// answer. Results carry a flag telling whether the series is synthetic, so
// user-facing code can warn about simulated data.
//
// This is an educational approximation: no guarantee of numerical accuracy
// against real markets is intended.
package whatif
