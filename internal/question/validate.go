package question

import (
	"fmt"
	"strings"
)

// Validation messages. Each check contributes at most one message per field.
const (
	msgIDRequired          = "Question ID is required and must be a non-empty string"
	msgTextRequired        = "Question text is required and must be a non-empty string"
	msgOptionsNotArray     = "Options must be an array"
	msgOptionCount         = "Question must have exactly 4 options"
	msgOptionsUnique       = "All options must be unique"
	msgAnswerNotNumber     = "Correct answer must be a number"
	msgAnswerOutOfRange    = "Correct answer index must be between 0 and 3"
	msgExplanationRequired = "Explanation is required and must be a non-empty string"
	msgCategoryRequired    = "Category is required and must be a non-empty string"
	msgDifficultyInvalid   = "Difficulty must be one of: easy, medium, hard"
)

// Result is the outcome of validating one question.
type Result struct {
	QuestionID string   `json:"questionId"`
	Valid      bool     `json:"isValid"`
	Errors     []string `json:"errors"`
	// Duplicate marks a question whose ID appears more than once in the bank.
	// It does not affect Valid.
	Duplicate bool `json:"duplicate,omitempty"`
}

// DifficultyDistribution counts questions per enumerated difficulty.
type DifficultyDistribution struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// CategoryCount is one bucket of a category histogram.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryDistribution lists categories in order of first appearance.
type CategoryDistribution []CategoryCount

// Count returns the number of questions in category, or zero.
func (d CategoryDistribution) Count(category string) int {
	for _, c := range d {
		if c.Category == category {
			return c.Count
		}
	}
	return 0
}

// DatabaseResult summarises a whole-bank validation run.
type DatabaseResult struct {
	Valid                  bool                   `json:"isValid"`
	Total                  int                    `json:"totalQuestions"`
	ValidCount             int                    `json:"validQuestions"`
	InvalidCount           int                    `json:"invalidQuestions"`
	DuplicateIDs           []string               `json:"duplicateIds"`
	Results                []Result               `json:"questionResults"`
	CategoryDistribution   CategoryDistribution   `json:"categoryDistribution"`
	DifficultyDistribution DifficultyDistribution `json:"difficultyDistribution"`
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateQuestion runs every field check and reports all violations.
func ValidateQuestion(q Question) Result {
	var errs []string

	if blank(q.ID) {
		errs = append(errs, msgIDRequired)
	}
	if blank(q.Text) {
		errs = append(errs, msgTextRequired)
	}

	if q.Options == nil {
		errs = append(errs, msgOptionsNotArray)
	} else {
		if len(q.Options) != OptionCount {
			errs = append(errs, msgOptionCount)
		}
		seen := make(map[string]struct{}, len(q.Options))
		for i, opt := range q.Options {
			if blank(opt) {
				errs = append(errs, fmt.Sprintf("Option %d must be a non-empty string", i+1))
			}
			seen[opt] = struct{}{}
		}
		if len(seen) != len(q.Options) {
			errs = append(errs, msgOptionsUnique)
		}
	}

	if q.CorrectAnswer < 0 || q.CorrectAnswer > OptionCount-1 {
		errs = append(errs, msgAnswerOutOfRange)
	}
	if blank(q.Explanation) {
		errs = append(errs, msgExplanationRequired)
	}
	if blank(q.Category) {
		errs = append(errs, msgCategoryRequired)
	}
	if !q.Difficulty.Valid() {
		errs = append(errs, msgDifficultyInvalid)
	}

	id := q.ID
	if id == "" {
		id = "unknown"
	}
	return Result{
		QuestionID: id,
		Valid:      len(errs) == 0,
		Errors:     errs,
	}
}

// ValidateDatabase validates each question and checks ID uniqueness across the bank.
// The bank is valid only with zero invalid questions and zero duplicate IDs.
func ValidateDatabase(questions []Question) DatabaseResult {
	dupes := CheckIDUniqueness(questions)
	dupeSet := make(map[string]struct{}, len(dupes))
	for _, id := range dupes {
		dupeSet[id] = struct{}{}
	}

	results := make([]Result, 0, len(questions))
	validCount := 0
	for _, q := range questions {
		r := ValidateQuestion(q)
		if _, ok := dupeSet[q.ID]; ok {
			r.Duplicate = true
		}
		if r.Valid {
			validCount++
		}
		results = append(results, r)
	}

	invalid := len(questions) - validCount
	return DatabaseResult{
		Valid:                  invalid == 0 && len(dupes) == 0,
		Total:                  len(questions),
		ValidCount:             validCount,
		InvalidCount:           invalid,
		DuplicateIDs:           dupes,
		Results:                results,
		CategoryDistribution:   CategoryHistogram(questions),
		DifficultyDistribution: DifficultyHistogram(questions),
	}
}

// CheckIDUniqueness returns each repeated ID once, in order of its second appearance.
// Empty IDs are ignored.
func CheckIDUniqueness(questions []Question) []string {
	seen := make(map[string]int, len(questions))
	dupes := []string{}
	for _, q := range questions {
		if q.ID == "" {
			continue
		}
		seen[q.ID]++
		if seen[q.ID] == 2 {
			dupes = append(dupes, q.ID)
		}
	}
	return dupes
}

// ValidateAnswerIndices returns the IDs of questions whose answer index is outside [0,3].
func ValidateAnswerIndices(questions []Question) []string {
	bad := []string{}
	for _, q := range questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer > OptionCount-1 {
			id := q.ID
			if id == "" {
				id = "unknown"
			}
			bad = append(bad, id)
		}
	}
	return bad
}

// CategoryHistogram counts questions per category. Blank categories count as "Unknown".
func CategoryHistogram(questions []Question) CategoryDistribution {
	dist := CategoryDistribution{}
	index := map[string]int{}
	for _, q := range questions {
		cat := q.Category
		if cat == "" {
			cat = "Unknown"
		}
		if i, ok := index[cat]; ok {
			dist[i].Count++
			continue
		}
		index[cat] = len(dist)
		dist = append(dist, CategoryCount{Category: cat, Count: 1})
	}
	return dist
}

// DifficultyHistogram counts questions per difficulty, ignoring unknown values.
func DifficultyHistogram(questions []Question) DifficultyDistribution {
	var dist DifficultyDistribution
	for _, q := range questions {
		switch q.Difficulty {
		case DifficultyEasy:
			dist.Easy++
		case DifficultyMedium:
			dist.Medium++
		case DifficultyHard:
			dist.Hard++
		}
	}
	return dist
}

// Report renders a human-readable summary of a validation run.
func Report(r DatabaseResult) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	status := "FAIL"
	if r.Valid {
		status = "PASS"
	}
	line("=== Question Database Validation Report ===")
	line("Total Questions: %d", r.Total)
	line("Valid Questions: %d", r.ValidCount)
	line("Invalid Questions: %d", r.InvalidCount)
	line("Overall Status: %s", status)
	line("")

	if len(r.DuplicateIDs) > 0 {
		line("Duplicate IDs Found:")
		for _, id := range r.DuplicateIDs {
			line("  - %s", id)
		}
		line("")
	}

	line("Category Distribution:")
	for _, c := range r.CategoryDistribution {
		line("  %s: %d questions", c.Category, c.Count)
	}
	line("")

	line("Difficulty Distribution:")
	line("  Easy: %d questions", r.DifficultyDistribution.Easy)
	line("  Medium: %d questions", r.DifficultyDistribution.Medium)
	line("  Hard: %d questions", r.DifficultyDistribution.Hard)

	if r.InvalidCount > 0 {
		line("")
		line("Invalid Questions:")
		for _, res := range r.Results {
			if res.Valid {
				continue
			}
			line("  %s:", res.QuestionID)
			for _, e := range res.Errors {
				line("    - %s", e)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
