// SPDX-License-Identifier: MIT
// Package pqueue tests heap and index invariants from inside the package so
// that every slot can be inspected after each operation.

package pqueue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// requireInvariants checks the heap property and index correctness over the
// live slots, and that every non-live vertex reports position ≥ size.
func requireInvariants(t *testing.T, h *IndexedMinHeap) {
	t.Helper()

	for i := 1; i < h.size; i++ {
		p := (i - 1) / 2
		require.LessOrEqualf(t, h.entries[p].Distance, h.entries[i].Distance,
			"heap property violated at slot %d (parent %d)", i, p)
	}
	live := make(map[int]bool, h.size)
	for i := 0; i < h.size; i++ {
		v := h.entries[i].Vertex
		require.Equalf(t, i, h.position[v], "position[%d] out of sync", v)
		live[v] = true
	}
	for v := range h.position {
		if !live[v] {
			require.GreaterOrEqualf(t, h.position[v], h.size, "vertex %d not live but position < size", v)
			require.Falsef(t, h.Contains(v), "Contains(%d) for non-live vertex", v)
		}
	}
}

func TestNew_BadCapacity(t *testing.T) {
	for _, c := range []int{0, -3} {
		h, err := New(c)
		require.ErrorIs(t, err, ErrBadCapacity)
		assert.Nil(t, h)
	}
}

func TestNew_Empty(t *testing.T) {
	h, err := New(4)
	require.NoError(t, err)

	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 4, h.Cap())
	for v := 0; v < 4; v++ {
		assert.False(t, h.Contains(v))
	}
	assert.False(t, h.Contains(-1))
	assert.False(t, h.Contains(4))

	_, err = h.ExtractMin()
	require.ErrorIs(t, err, ErrEmptyHeap)
	_, err = h.Peek()
	require.ErrorIs(t, err, ErrEmptyHeap)
}

func TestInsertInitial_Errors(t *testing.T) {
	h, err := New(2)
	require.NoError(t, err)

	require.ErrorIs(t, h.InsertInitial(-1, 0), ErrVertexOutOfRange)
	require.ErrorIs(t, h.InsertInitial(2, 0), ErrVertexOutOfRange)

	require.NoError(t, h.InsertInitial(0, 5))
	require.ErrorIs(t, h.InsertInitial(0, 1), ErrAlreadySeeded)
	require.NoError(t, h.InsertInitial(1, 3))
	requireInvariants(t, h)

	_, err = h.ExtractMin()
	require.NoError(t, err)
	require.ErrorIs(t, h.InsertInitial(1, 0), ErrSeedingClosed)
}

func TestInsertInitial_Full(t *testing.T) {
	h, err := New(1)
	require.NoError(t, err)
	require.NoError(t, h.InsertInitial(0, 1))

	// The only vertex is already live, but capacity is checked first.
	require.ErrorIs(t, h.InsertInitial(0, 1), ErrHeapFull)
}

func TestInsertInitial_UniformKeysKeepSeedOrder(t *testing.T) {
	const n = 7
	h, err := New(n)
	require.NoError(t, err)
	for v := 0; v < n; v++ {
		require.NoError(t, h.InsertInitial(v, math.MaxInt64))
	}

	for v := 0; v < n; v++ {
		assert.Equal(t, v, h.position[v])
		assert.Equal(t, v, h.entries[v].Vertex)
	}
	requireInvariants(t, h)
}

func TestExtractMin_RelocatesPositionPastSize(t *testing.T) {
	h, err := New(3)
	require.NoError(t, err)
	require.NoError(t, h.InsertInitial(0, 2))
	require.NoError(t, h.InsertInitial(1, 1))
	require.NoError(t, h.InsertInitial(2, 3))

	e, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, Entry{Vertex: 1, Distance: 1}, e)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 2, h.position[1], "extracted vertex keeps the old last slot")
	assert.False(t, h.Contains(1))
	requireInvariants(t, h)

	_, ok := h.Key(1)
	assert.False(t, ok)
	require.ErrorIs(t, h.DecreaseKey(1, 0), ErrNotInHeap)
}

func TestDecreaseKey(t *testing.T) {
	h, err := New(5)
	require.NoError(t, err)
	for v := 0; v < 5; v++ {
		require.NoError(t, h.InsertInitial(v, math.MaxInt64))
	}

	require.NoError(t, h.DecreaseKey(4, 10))
	requireInvariants(t, h)
	top, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, Entry{Vertex: 4, Distance: 10}, top)

	require.NoError(t, h.DecreaseKey(2, 3))
	requireInvariants(t, h)

	k, ok := h.Key(2)
	require.True(t, ok)
	assert.Equal(t, int64(3), k)

	// Equal key is accepted and is a no-op.
	require.NoError(t, h.DecreaseKey(2, 3))
	requireInvariants(t, h)

	require.ErrorIs(t, h.DecreaseKey(2, 4), ErrKeyIncrease)
	require.ErrorIs(t, h.DecreaseKey(9, 0), ErrNotInHeap)

	e, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, Entry{Vertex: 2, Distance: 3}, e)
}

func TestExtractMin_SingleEntry(t *testing.T) {
	h, err := New(1)
	require.NoError(t, err)
	require.NoError(t, h.InsertInitial(0, 0))

	e, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, Entry{Vertex: 0, Distance: 0}, e)
	assert.True(t, h.IsEmpty())
	assert.False(t, h.Contains(0))
}

// TestRandomOps interleaves decrease-key and extraction on random keys and
// checks the invariants after every call, plus monotone extraction order.
func TestRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(40)
		h, err := New(n)
		require.NoError(t, err)

		key := make([]int64, n)
		for v := 0; v < n; v++ {
			key[v] = 1000 + rng.Int63n(1000)
			require.NoError(t, h.InsertInitial(v, key[v]))
			requireInvariants(t, h)
		}

		var last int64 = math.MinInt64
		seen := make(map[int]bool, n)
		for !h.IsEmpty() {
			// A few decrease-keys on random live vertices; keys never drop
			// below last so extraction stays monotone.
			for k := 0; k < 3; k++ {
				v := rng.Intn(n)
				if !h.Contains(v) {
					continue
				}
				floor := last
				if floor < 0 {
					floor = 0
				}
				if key[v] <= floor {
					continue
				}
				nk := floor + rng.Int63n(key[v]-floor+1)
				require.NoError(t, h.DecreaseKey(v, nk))
				key[v] = nk
				requireInvariants(t, h)
			}

			e, err := h.ExtractMin()
			require.NoError(t, err)
			requireInvariants(t, h)

			require.GreaterOrEqual(t, e.Distance, last, "extraction order must be non-decreasing")
			require.Equal(t, key[e.Vertex], e.Distance)
			require.False(t, seen[e.Vertex], "vertex %d extracted twice", e.Vertex)
			seen[e.Vertex] = true
			last = e.Distance
		}
		assert.Len(t, seen, n)
	}
}
