package question

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedBank(n int) []Question {
	out := make([]Question, n)
	for i := range out {
		out[i] = sampleQuestion(fmt.Sprintf("q%d", i+1))
	}
	return out
}

func TestRandomDrawsDistinctQuestions(t *testing.T) {
	bank := NewBank(numberedBank(25), rand.New(rand.NewSource(7)))

	picked, err := bank.Random(5)
	require.NoError(t, err)
	require.Len(t, picked, 5)

	seen := map[string]bool{}
	for _, q := range picked {
		assert.False(t, seen[q.ID], "question %s drawn twice", q.ID)
		seen[q.ID] = true
	}
}

func TestRandomIsDeterministicForSeed(t *testing.T) {
	a := NewBank(numberedBank(25), rand.New(rand.NewSource(99)))
	b := NewBank(numberedBank(25), rand.New(rand.NewSource(99)))

	for i := 0; i < 3; i++ {
		left, err := a.Random(5)
		require.NoError(t, err)
		right, err := b.Random(5)
		require.NoError(t, err)
		assert.Equal(t, left, right)
	}
}

func TestRandomReshufflesEachCall(t *testing.T) {
	bank := NewBank(numberedBank(25), rand.New(rand.NewSource(1)))

	distinct := map[string]bool{}
	for i := 0; i < 20; i++ {
		picked, err := bank.Random(5)
		require.NoError(t, err)
		key := ""
		for _, q := range picked {
			key += q.ID + ","
		}
		distinct[key] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestRandomIsRoughlyUniform(t *testing.T) {
	bank := NewBank(numberedBank(4), rand.New(rand.NewSource(2024)))

	counts := map[string]int{}
	for i := 0; i < 4000; i++ {
		picked, err := bank.Random(1)
		require.NoError(t, err)
		counts[picked[0].ID]++
	}
	for id, n := range counts {
		assert.InDelta(t, 1000, n, 200, "question %s drawn %d times", id, n)
	}
	assert.Len(t, counts, 4)
}

func TestRandomFailsWhenBankTooSmall(t *testing.T) {
	bank := NewBank(numberedBank(3), nil)

	_, err := bank.Random(5)
	assert.True(t, errors.Is(err, ErrEmptyBank))

	empty := NewBank(nil, nil)
	_, err = empty.Random(1)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestBankReturnsCopies(t *testing.T) {
	bank := NewBank(numberedBank(5), rand.New(rand.NewSource(3)))

	picked, err := bank.Random(5)
	require.NoError(t, err)
	picked[0].Options[0] = "tampered"

	for _, q := range bank.All() {
		assert.Equal(t, "Venus", q.Options[0])
	}

	q, ok := bank.ByID("q3")
	require.True(t, ok)
	q.Options[1] = "tampered"
	again, _ := bank.ByID("q3")
	assert.Equal(t, "Mars", again.Options[1])

	_, ok = bank.ByID("missing")
	assert.False(t, ok)
	assert.Equal(t, 5, bank.Len())
}

func TestPublicViewOmitsAnswer(t *testing.T) {
	view := sampleQuestion("q1").Public()

	assert.Equal(t, "q1", view.ID)
	assert.Equal(t, []string{"Venus", "Mars", "Jupiter", "Saturn"}, view.Options)
	assert.Equal(t, DifficultyEasy, view.Difficulty)
}
