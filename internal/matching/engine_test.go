package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(amounts ...int64) []Candidate {
	pool := make([]Candidate, 0, len(amounts))
	for _, amount := range amounts {
		pool = append(pool, Candidate{
			ID:     uuid.New(),
			Amount: decimal.NewFromInt(amount),
		})
	}
	return pool
}

func sum(combination []Candidate) decimal.Decimal {
	total := decimal.Zero
	for _, c := range combination {
		total = total.Add(c.Amount)
	}
	return total
}

func TestSuggest_EmptyPool(t *testing.T) {
	result := Suggest(decimal.NewFromInt(500), nil, 0.05, 10)
	assert.Empty(t, result)
}

func TestSuggest_NonPositiveTarget(t *testing.T) {
	pool := candidates(100, 200)

	assert.Empty(t, Suggest(decimal.Zero, pool, 0.05, 10))
	assert.Empty(t, Suggest(decimal.NewFromInt(-100), pool, 0.05, 10))
}

func TestSuggest_ExactMatch(t *testing.T) {
	pool := candidates(100, 200, 300, 400)

	result := Suggest(decimal.NewFromInt(500), pool, 0.05, 10)

	require.NotEmpty(t, result)
	assert.True(t, sum(result).Equal(decimal.NewFromInt(500)),
		"expected exact sum 500, got %s", sum(result))
}

func TestSuggest_ToleranceSelectsSingleCandidate(t *testing.T) {
	// Target 100 with 5% tolerance allows [95, 105]. Only {95} qualifies:
	// 110 alone overshoots, and any multi-item combination exceeds the bound.
	pool := candidates(90, 95, 110)

	result := Suggest(decimal.NewFromInt(100), pool, 0.05, 10)

	require.Len(t, result, 1)
	assert.True(t, result[0].Amount.Equal(decimal.NewFromInt(95)))
}

func TestSuggest_PrefersFewerItemsOnTie(t *testing.T) {
	// Both {500} and {300, 200} hit the target exactly. The single candidate
	// seeds first in descending order, so the exact match short-circuits
	// before the two-item combination is ever assembled.
	pool := candidates(300, 200, 500)

	result := Suggest(decimal.NewFromInt(500), pool, 0.05, 10)

	require.Len(t, result, 1)
	assert.True(t, result[0].Amount.Equal(decimal.NewFromInt(500)))
}

func TestSuggest_RespectsMaxResults(t *testing.T) {
	pool := candidates(10, 10, 10, 10, 10, 10, 10, 10)

	result := Suggest(decimal.NewFromInt(80), pool, 0.5, 3)

	assert.LessOrEqual(t, len(result), 3)
}

func TestSuggest_FallbackWhenNothingInTolerance(t *testing.T) {
	// No combination lands within 1% of 1000, so the greedy fallback fills
	// up to the upper bound and ignores the lower one.
	pool := candidates(400, 300)

	result := Suggest(decimal.NewFromInt(1000), pool, 0.01, 10)

	require.Len(t, result, 2)
	assert.True(t, sum(result).Equal(decimal.NewFromInt(700)))
}

func TestSuggest_DoesNotMutateInput(t *testing.T) {
	pool := candidates(100, 400, 200, 300)
	original := make([]decimal.Decimal, len(pool))
	for i, c := range pool {
		original[i] = c.Amount
	}

	Suggest(decimal.NewFromInt(500), pool, 0.05, 10)

	for i, c := range pool {
		assert.True(t, c.Amount.Equal(original[i]), "pool order changed at index %d", i)
	}
}

func TestSuggest_Deterministic(t *testing.T) {
	pool := candidates(120, 80, 300, 210, 95, 440)
	target := decimal.NewFromInt(500)

	first := Suggest(target, pool, 0.05, 10)
	second := Suggest(target, pool, 0.05, 10)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestSuggest_LargePoolStaysBounded(t *testing.T) {
	amounts := make([]int64, 0, 500)
	for i := int64(1); i <= 500; i++ {
		amounts = append(amounts, i)
	}
	pool := candidates(amounts...)

	result := Suggest(decimal.NewFromInt(1000), pool, 0.05, 10)

	require.NotEmpty(t, result)
	assert.LessOrEqual(t, len(result), 10)

	diff := decimal.NewFromInt(1000).Sub(sum(result)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromInt(50)),
		"expected result within tolerance, diff %s", diff)
}
