// Package matching selects combinations of transaction aggregates whose
// summed amount approximates a bank statement amount. It is pure computation:
// no I/O, no mutation of inputs, deterministic for identical input ordering.
package matching

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// seedLimit bounds how many of the largest candidates are tried as the
	// starting element of a combination. Keeps the search at O(seedLimit*N)
	// instead of exact subset-sum.
	seedLimit = 10

	// earlyStopFraction stops extending a combination once its running sum is
	// already this close to the target.
	earlyStopFraction = 0.01
)

// Candidate is one aggregate eligible for inclusion in a suggestion.
type Candidate struct {
	ID              uuid.UUID
	Amount          decimal.Decimal
	TransactionDate time.Time
	PaymentMethodID *uuid.UUID
}

// Suggest returns an ordered subset of pool whose summed amount best
// approximates target within the given tolerance fraction, holding at most
// maxResults candidates.
//
// Each of the largest seedLimit candidates seeds a greedy pass over the
// remaining pool sorted by amount descending; a candidate joins the running
// combination when the sum stays at or below target*(1+tolerance). The best
// in-tolerance combination wins by absolute difference from target, ties
// broken by fewer candidates, and an exact match returns immediately. When no
// seed yields an in-tolerance combination, a single greedy fill bounded above
// by target plus the tolerance amount is returned instead.
func Suggest(target decimal.Decimal, pool []Candidate, tolerance float64, maxResults int) []Candidate {
	if len(pool) == 0 || maxResults <= 0 || !target.IsPositive() {
		return []Candidate{}
	}

	sorted := make([]Candidate, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})

	toleranceAmount := target.Mul(decimal.NewFromFloat(tolerance))
	upperBound := target.Add(toleranceAmount)
	earlyStop := target.Mul(decimal.NewFromFloat(earlyStopFraction))

	seeds := seedLimit
	if len(sorted) < seeds {
		seeds = len(sorted)
	}

	var best []Candidate
	var bestDiff decimal.Decimal

	for seed := 0; seed < seeds; seed++ {
		combination, sum := extendFromSeed(sorted, seed, upperBound, earlyStop, target, maxResults)

		diff := target.Sub(sum).Abs()
		if diff.GreaterThan(toleranceAmount) {
			continue
		}

		if best == nil || diff.LessThan(bestDiff) ||
			(diff.Equal(bestDiff) && len(combination) < len(best)) {
			best = combination
			bestDiff = diff
		}

		if bestDiff.IsZero() {
			return best
		}
	}

	if best != nil {
		return best
	}

	return greedyFill(sorted, upperBound, maxResults)
}

// extendFromSeed walks the sorted pool once, starting the running sum at the
// seed candidate and adding anything that keeps the sum at or below the upper
// bound.
func extendFromSeed(sorted []Candidate, seed int, upperBound, earlyStop, target decimal.Decimal, maxResults int) ([]Candidate, decimal.Decimal) {
	combination := []Candidate{sorted[seed]}
	sum := sorted[seed].Amount

	for i := 0; i < len(sorted); i++ {
		if i == seed {
			continue
		}
		if len(combination) >= maxResults {
			break
		}
		if target.Sub(sum).Abs().LessThanOrEqual(earlyStop) {
			break
		}

		next := sum.Add(sorted[i].Amount)
		if next.GreaterThan(upperBound) {
			continue
		}

		combination = append(combination, sorted[i])
		sum = next
	}

	return combination, sum
}

// greedyFill is the fallback pass: a descending-amount knapsack-style fill
// bounded above by the tolerance window, ignoring the lower bound.
func greedyFill(sorted []Candidate, upperBound decimal.Decimal, maxResults int) []Candidate {
	result := make([]Candidate, 0, maxResults)
	sum := decimal.Zero

	for _, candidate := range sorted {
		if len(result) >= maxResults {
			break
		}

		next := sum.Add(candidate.Amount)
		if next.GreaterThan(upperBound) {
			continue
		}

		result = append(result, candidate)
		sum = next
	}

	return result
}
