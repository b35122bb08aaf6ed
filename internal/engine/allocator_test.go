package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/reelcut/internal/model"
)

func reel(serial, category string, length int64) model.Reel {
	return model.NewReel(serial, category, decimal.NewFromInt(length))
}

func cut(category string, length int64) model.CutRequest {
	return model.NewCutRequest(category, decimal.NewFromInt(length))
}

func lengths(assignments []model.Assignment) []int64 {
	out := make([]int64, len(assignments))
	for i, a := range assignments {
		out[i] = a.Length.IntPart()
	}
	return out
}

func TestAllocate_SingleCutFits(t *testing.T) {
	result := Allocate(
		[]model.Reel{reel("A", "X", 10)},
		[]model.CutRequest{cut("X", 6)},
	)

	require.Len(t, result.Usages, 1)
	assert.Equal(t, []int64{6}, lengths(result.Usages[0].Assignments))
	assert.True(t, result.Usages[0].Remaining.Equal(decimal.NewFromInt(4)))
	assert.Empty(t, result.Unassigned)
}

func TestAllocate_CutTooLong(t *testing.T) {
	result := Allocate(
		[]model.Reel{reel("A", "X", 5)},
		[]model.CutRequest{cut("X", 6)},
	)

	require.Len(t, result.Usages, 1)
	assert.Empty(t, result.Usages[0].Assignments)
	assert.True(t, result.Usages[0].Remaining.Equal(decimal.NewFromInt(5)))

	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, "X", result.Unassigned[0].Category)
	assert.True(t, result.Unassigned[0].Length.Equal(decimal.NewFromInt(6)))
}

func TestAllocate_DecreasingOrderSpillsToSecondReel(t *testing.T) {
	// Cuts are sorted descending: 8 goes on A (10 >= 8), then 7 does not
	// fit the remaining 2 on A and lands on B.
	result := Allocate(
		[]model.Reel{reel("A", "X", 10), reel("B", "X", 10)},
		[]model.CutRequest{cut("X", 7), cut("X", 8)},
	)

	require.Len(t, result.Usages, 2)
	assert.Equal(t, []int64{8}, lengths(result.Usages[0].Assignments))
	assert.Equal(t, []int64{7}, lengths(result.Usages[1].Assignments))
	assert.True(t, result.Usages[0].Remaining.Equal(decimal.NewFromInt(2)))
	assert.True(t, result.Usages[1].Remaining.Equal(decimal.NewFromInt(3)))
	assert.Empty(t, result.Unassigned)
}

func TestAllocate_NoReelForCategory(t *testing.T) {
	result := Allocate(
		[]model.Reel{reel("A", "X", 10)},
		[]model.CutRequest{cut("Y", 3), cut("Y", 2)},
	)

	require.Len(t, result.Unassigned, 2)
	for _, c := range result.Unassigned {
		assert.Equal(t, "Y", c.Category)
	}
	// The X reel is untouched.
	assert.Empty(t, result.Usages[0].Assignments)
	assert.True(t, result.Usages[0].Remaining.Equal(decimal.NewFromInt(10)))
}

func TestAllocate_EmptyInputs(t *testing.T) {
	result := Allocate(nil, nil)
	assert.Empty(t, result.Usages)
	assert.Empty(t, result.Unassigned)

	// Reels with no cuts come back whole.
	result = Allocate([]model.Reel{reel("A", "X", 10), reel("B", "Y", 4)}, nil)
	require.Len(t, result.Usages, 2)
	for _, u := range result.Usages {
		assert.Empty(t, u.Assignments)
		assert.True(t, u.Remaining.Equal(u.Reel.Length))
	}
	assert.Empty(t, result.Unassigned)

	// Cuts with no reels are all unassigned.
	result = Allocate(nil, []model.CutRequest{cut("X", 1)})
	assert.Empty(t, result.Usages)
	assert.Len(t, result.Unassigned, 1)
}

func TestAllocate_FirstFitPrefersEarlierReel(t *testing.T) {
	// Both reels can take the cut; the earlier-listed reel wins even though
	// the later one would be a tighter fit.
	result := Allocate(
		[]model.Reel{reel("A", "X", 100), reel("B", "X", 5)},
		[]model.CutRequest{cut("X", 5)},
	)

	assert.Equal(t, []int64{5}, lengths(result.Usages[0].Assignments))
	assert.Empty(t, result.Usages[1].Assignments)
}

func TestAllocate_CategoryIsolation(t *testing.T) {
	// Cuts of one item number never land on reels of another, and each
	// item number's outcome is unaffected by the other's demand.
	result := Allocate(
		[]model.Reel{reel("A", "X", 10), reel("B", "Y", 10)},
		[]model.CutRequest{cut("X", 9), cut("Y", 9), cut("X", 9)},
	)

	for _, u := range result.Usages {
		for _, a := range u.Assignments {
			assert.Equal(t, u.Reel.Category, a.Category)
			assert.Equal(t, u.Reel.Serial, a.Serial)
		}
	}
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, "X", result.Unassigned[0].Category)
}

func TestAllocate_EveryCutAccountedForExactlyOnce(t *testing.T) {
	cuts := []model.CutRequest{
		cut("X", 4), cut("X", 4), cut("X", 9), cut("Y", 2), cut("Z", 1),
	}
	result := Allocate([]model.Reel{reel("A", "X", 10), reel("B", "Y", 1)}, cuts)

	seen := make(map[string]int)
	for _, u := range result.Usages {
		for _, a := range u.Assignments {
			seen[a.CutID]++
		}
	}
	for _, c := range result.Unassigned {
		seen[c.ID]++
	}

	assert.Len(t, seen, len(cuts))
	for _, c := range cuts {
		assert.Equal(t, 1, seen[c.ID], "cut %s must appear exactly once", c.ID)
	}
}

func TestAllocate_CapacityConservation(t *testing.T) {
	result := Allocate(
		[]model.Reel{reel("A", "X", 20), reel("B", "X", 7)},
		[]model.CutRequest{cut("X", 6), cut("X", 6), cut("X", 6), cut("X", 6), cut("X", 6)},
	)

	for _, u := range result.Usages {
		sum := u.AssignedLength()
		assert.True(t, u.Remaining.Add(sum).Equal(u.Reel.Length),
			"reel %s: remaining %s + assigned %s != total %s",
			u.Reel.Serial, u.Remaining, sum, u.Reel.Length)
		assert.False(t, u.Remaining.IsNegative())
	}
}

func TestAllocate_DoesNotMutateInputs(t *testing.T) {
	reels := []model.Reel{reel("A", "X", 10)}
	cuts := []model.CutRequest{cut("X", 6), cut("X", 3)}
	originalLength := reels[0].Length

	_ = Allocate(reels, cuts)

	assert.True(t, reels[0].Length.Equal(originalLength))
	assert.True(t, cuts[0].Length.Equal(decimal.NewFromInt(6)))
	assert.True(t, cuts[1].Length.Equal(decimal.NewFromInt(3)))
}

func TestAllocate_Deterministic(t *testing.T) {
	reels := []model.Reel{
		reel("A", "X", 12), reel("B", "X", 8), reel("C", "Y", 5),
	}
	cuts := []model.CutRequest{
		cut("X", 5), cut("X", 5), cut("X", 7), cut("Y", 2), cut("Y", 4),
	}

	first := Allocate(reels, cuts)
	for i := 0; i < 10; i++ {
		again := Allocate(reels, cuts)
		require.Equal(t, first, again)
	}
}

func TestAllocate_EqualLengthTiesKeepInputOrder(t *testing.T) {
	// Two equal cuts but only room for one: the one listed first is placed,
	// the later one is reported unassigned.
	c1 := cut("X", 5)
	c2 := cut("X", 5)
	result := Allocate([]model.Reel{reel("A", "X", 5)}, []model.CutRequest{c1, c2})

	require.Len(t, result.Usages[0].Assignments, 1)
	assert.Equal(t, c1.ID, result.Usages[0].Assignments[0].CutID)
	require.Len(t, result.Unassigned, 1)
	assert.Equal(t, c2.ID, result.Unassigned[0].ID)
}

func TestAllocate_ZeroLengthCutPlacesTrivially(t *testing.T) {
	// The importer rejects non-positive lengths, but the algorithm itself
	// places a zero-length cut on the first reel of its item number.
	result := Allocate(
		[]model.Reel{reel("A", "X", 3)},
		[]model.CutRequest{cut("X", 3), cut("X", 0)},
	)

	assert.Equal(t, []int64{3, 0}, lengths(result.Usages[0].Assignments))
	assert.True(t, result.Usages[0].Remaining.IsZero())
	assert.Empty(t, result.Unassigned)
}

func TestAllocate_FractionalLengthsStayExact(t *testing.T) {
	d := decimal.RequireFromString
	reels := []model.Reel{model.NewReel("A", "X", d("1.0"))}
	cuts := []model.CutRequest{
		model.NewCutRequest("X", d("0.1")),
		model.NewCutRequest("X", d("0.2")),
		model.NewCutRequest("X", d("0.7")),
	}

	result := Allocate(reels, cuts)

	assert.Empty(t, result.Unassigned)
	assert.True(t, result.Usages[0].Remaining.IsZero(),
		"expected exact zero remaining, got %s", result.Usages[0].Remaining)
}
