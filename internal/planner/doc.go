// Package planner selects the cheapest set of paths covering several
// destinations from one source.
//
// The graph engine supplies, per destination, a short ranked list of candidate
// paths with raw costs. Summing raw costs over-charges whenever chosen paths
// share devices or links, so Evaluate subtracts every double-counted node and
// edge cost once, and Search walks the cross-product of candidate lists to
// return the K cheapest combinations under that corrected pricing.
package planner
