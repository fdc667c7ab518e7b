package question

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidationError carries every message produced while checking a candidate question.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid question: " + strings.Join(e.Errors, "; ")
}

// NextID returns the next sequential "q<N>" identifier after the highest numeric one.
func NextID(existing []Question) string {
	maxID := 0
	for _, q := range existing {
		if !strings.HasPrefix(q.ID, "q") {
			continue
		}
		n, err := strconv.Atoi(leadingDigits(q.ID[1:]))
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("q%d", maxID+1)
}

// leadingDigits mirrors lenient integer parsing: "12b" yields "12".
func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

// Create assigns the next sequential ID and validates the new question.
func Create(text string, options [OptionCount]string, correct int, explanation, category string, difficulty Difficulty, existing []Question) (Question, Result) {
	q := Question{
		ID:            NextID(existing),
		Text:          text,
		Options:       options[:],
		CorrectAnswer: correct,
		Explanation:   explanation,
		Category:      category,
		Difficulty:    difficulty,
	}
	return q, ValidateQuestion(q)
}

// AddToDatabase appends q to existing when q is valid, its ID is free, and the
// resulting bank still validates. existing is never modified.
func AddToDatabase(q Question, existing []Question) ([]Question, error) {
	if res := ValidateQuestion(q); !res.Valid {
		return existing, &ValidationError{Errors: res.Errors}
	}
	for _, e := range existing {
		if e.ID == q.ID {
			return existing, &ValidationError{Errors: []string{fmt.Sprintf("Question ID '%s' already exists", q.ID)}}
		}
	}

	updated := make([]Question, 0, len(existing)+1)
	updated = append(updated, existing...)
	updated = append(updated, q)
	if !ValidateDatabase(updated).Valid {
		return existing, &ValidationError{Errors: []string{"Database validation failed after adding question"}}
	}
	return updated, nil
}

// BatchResult is the outcome of checking a batch of candidate questions.
type BatchResult struct {
	Valid  bool
	Errors []string
	Accept []Question
	Reject []Question
}

// ValidateBatch checks each candidate, duplicates within the batch, and ID conflicts with existing.
func ValidateBatch(batch, existing []Question) BatchResult {
	var out BatchResult

	for _, q := range batch {
		res := ValidateQuestion(q)
		if res.Valid {
			out.Accept = append(out.Accept, q)
			continue
		}
		out.Reject = append(out.Reject, q)
		out.Errors = append(out.Errors, fmt.Sprintf("Question %s: %s", q.ID, strings.Join(res.Errors, ", ")))
	}

	firstSeen := map[string]bool{}
	var inBatch []string
	for _, q := range batch {
		if firstSeen[q.ID] {
			inBatch = append(inBatch, q.ID)
			continue
		}
		firstSeen[q.ID] = true
	}
	if len(inBatch) > 0 {
		out.Errors = append(out.Errors, "Duplicate IDs in batch: "+strings.Join(inBatch, ", "))
	}

	existingIDs := make(map[string]struct{}, len(existing))
	for _, q := range existing {
		existingIDs[q.ID] = struct{}{}
	}
	var conflicts []string
	for _, q := range batch {
		if _, ok := existingIDs[q.ID]; ok {
			conflicts = append(conflicts, q.ID)
		}
	}
	if len(conflicts) > 0 {
		out.Errors = append(out.Errors, "IDs conflict with existing questions: "+strings.Join(conflicts, ", "))
	}

	if len(out.Accept) > 0 {
		combined := make([]Question, 0, len(existing)+len(out.Accept))
		combined = append(combined, existing...)
		combined = append(combined, out.Accept...)
		if !ValidateDatabase(combined).Valid {
			out.Errors = append(out.Errors, "Combined database validation failed")
		}
	}

	out.Valid = len(out.Errors) == 0 && len(out.Reject) == 0
	return out
}

// DefaultCategoryTarget is the bank size category recommendations aim for.
const DefaultCategoryTarget = 125

// CategoryRecommendation suggests how many questions a category still needs.
type CategoryRecommendation struct {
	Category    string `json:"category"`
	Current     int    `json:"current"`
	Recommended int    `json:"recommended"`
	Needed      int    `json:"needed"`
}

// CategoryBalance splits targetTotal evenly across the existing categories.
// The remainder goes to the first categories in order of appearance.
func CategoryBalance(questions []Question, targetTotal int) []CategoryRecommendation {
	counts := CategoryHistogram(questions)
	if len(counts) == 0 {
		return nil
	}
	per := targetTotal / len(counts)
	remainder := targetTotal % len(counts)

	out := make([]CategoryRecommendation, len(counts))
	for i, c := range counts {
		recommended := per
		if i < remainder {
			recommended++
		}
		out[i] = CategoryRecommendation{
			Category:    c.Category,
			Current:     c.Count,
			Recommended: recommended,
			Needed:      max(0, recommended-c.Count),
		}
	}
	return out
}

// DifficultyTargets are the desired shares of each difficulty.
type DifficultyTargets struct {
	Easy   float64
	Medium float64
	Hard   float64
}

// DefaultDifficultyTargets returns a 40/40/20 split.
func DefaultDifficultyTargets() DifficultyTargets {
	return DifficultyTargets{Easy: 0.4, Medium: 0.4, Hard: 0.2}
}

// DifficultyRecommendation suggests how many questions a difficulty still needs.
type DifficultyRecommendation struct {
	Difficulty  Difficulty `json:"difficulty"`
	Current     int        `json:"current"`
	Recommended int        `json:"recommended"`
	Needed      int        `json:"needed"`
}

// DifficultyBalance compares the current mix against targets scaled to the bank size.
func DifficultyBalance(questions []Question, targets DifficultyTargets) []DifficultyRecommendation {
	dist := DifficultyHistogram(questions)
	total := float64(len(questions))

	rows := []struct {
		d       Difficulty
		current int
		share   float64
	}{
		{DifficultyEasy, dist.Easy, targets.Easy},
		{DifficultyMedium, dist.Medium, targets.Medium},
		{DifficultyHard, dist.Hard, targets.Hard},
	}

	out := make([]DifficultyRecommendation, 0, len(rows))
	for _, r := range rows {
		recommended := int(math.Round(total * r.share))
		out = append(out, DifficultyRecommendation{
			Difficulty:  r.d,
			Current:     r.current,
			Recommended: recommended,
			Needed:      max(0, recommended-r.current),
		})
	}
	return out
}
