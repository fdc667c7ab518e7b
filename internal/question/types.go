package question

// Difficulty classifies how hard a question is.
type Difficulty string

// Difficulty constants for readability.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the enumerated difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// OptionCount is the fixed number of answer choices per question.
const OptionCount = 4

// Question is a trivia item as stored server side, including the answer.
type Question struct {
	ID            string     `json:"id" yaml:"id"`
	Text          string     `json:"question" yaml:"question"`
	Options       []string   `json:"options" yaml:"options"`
	CorrectAnswer int        `json:"correctAnswer" yaml:"correctAnswer"`
	Explanation   string     `json:"explanation" yaml:"explanation"`
	Category      string     `json:"category" yaml:"category"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
}

// PublicView is what clients see before answering. It has no answer or explanation field.
type PublicView struct {
	ID         string     `json:"id"`
	Text       string     `json:"question"`
	Options    []string   `json:"options"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// Public projects q into its client-safe form.
func (q Question) Public() PublicView {
	return PublicView{
		ID:         q.ID,
		Text:       q.Text,
		Options:    append([]string(nil), q.Options...),
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func (q Question) clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}
