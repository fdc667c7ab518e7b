package question

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	assert.Equal(t, "q1", NextID(nil))
	assert.Equal(t, "q26", NextID(numberedBank(25)))
	assert.Equal(t, "q13", NextID([]Question{{ID: "q12b"}, {ID: "custom-99"}, {ID: "q3"}, {ID: "qx"}}))
}

func TestCreateAssignsNextID(t *testing.T) {
	q, res := Create("What is 2+2?", [OptionCount]string{"3", "4", "5", "6"}, 1, "Basic arithmetic.", "Science", DifficultyEasy, numberedBank(2))

	assert.Equal(t, "q3", q.ID)
	assert.True(t, res.Valid)

	_, res = Create("", [OptionCount]string{"3", "4", "5", "6"}, 1, "x", "Science", DifficultyEasy, nil)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, msgTextRequired)
}

func TestAddToDatabase(t *testing.T) {
	existing := numberedBank(2)

	updated, err := AddToDatabase(sampleQuestion("q3"), existing)
	require.NoError(t, err)
	assert.Len(t, updated, 3)
	assert.Len(t, existing, 2)

	_, err = AddToDatabase(sampleQuestion("q2"), existing)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Question ID 'q2' already exists"}, verr.Errors)

	bad := sampleQuestion("q4")
	bad.Category = ""
	same, err := AddToDatabase(bad, existing)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{msgCategoryRequired}, verr.Errors)
	assert.Equal(t, existing, same)
}

func TestValidateBatch(t *testing.T) {
	existing := numberedBank(2)
	bad := sampleQuestion("q5")
	bad.Difficulty = "impossible"

	res := ValidateBatch([]Question{sampleQuestion("q3"), sampleQuestion("q3"), sampleQuestion("q1"), bad}, existing)

	assert.False(t, res.Valid)
	assert.Len(t, res.Accept, 3)
	assert.Len(t, res.Reject, 1)
	assert.Contains(t, res.Errors, "Question q5: "+msgDifficultyInvalid)
	assert.Contains(t, res.Errors, "Duplicate IDs in batch: q3")
	assert.Contains(t, res.Errors, "IDs conflict with existing questions: q1")
	assert.Contains(t, res.Errors, "Combined database validation failed")

	clean := ValidateBatch([]Question{sampleQuestion("q3")}, existing)
	assert.True(t, clean.Valid)
	assert.Empty(t, clean.Errors)
}

func TestCategoryBalance(t *testing.T) {
	bank, err := Default()
	require.NoError(t, err)

	recs := CategoryBalance(bank, DefaultCategoryTarget)

	assert.Equal(t, []CategoryRecommendation{
		{Category: "Animals", Current: 6, Recommended: 32, Needed: 26},
		{Category: "Geography", Current: 8, Recommended: 31, Needed: 23},
		{Category: "Science", Current: 8, Recommended: 31, Needed: 23},
		{Category: "History", Current: 3, Recommended: 31, Needed: 28},
	}, recs)

	assert.Nil(t, CategoryBalance(nil, DefaultCategoryTarget))
}

func TestDifficultyBalance(t *testing.T) {
	bank, err := Default()
	require.NoError(t, err)

	recs := DifficultyBalance(bank, DefaultDifficultyTargets())

	assert.Equal(t, []DifficultyRecommendation{
		{Difficulty: DifficultyEasy, Current: 9, Recommended: 10, Needed: 1},
		{Difficulty: DifficultyMedium, Current: 12, Recommended: 10, Needed: 0},
		{Difficulty: DifficultyHard, Current: 4, Recommended: 5, Needed: 1},
	}, recs)
}
