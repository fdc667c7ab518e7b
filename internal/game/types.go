package game

import (
	"github.com/gokatarajesh/fact-frenzy/internal/question"
)

// DefaultTotalRounds is the number of questions per game.
const DefaultTotalRounds = 5

// AnswerResult records the outcome of one round. SelectedAnswer is -1 when the round timed out.
type AnswerResult struct {
	QuestionID     string  `json:"questionId"`
	SelectedAnswer int     `json:"selectedAnswer"`
	CorrectAnswer  int     `json:"correctAnswer"`
	IsCorrect      bool    `json:"isCorrect"`
	PointsEarned   int     `json:"pointsEarned"`
	TimeElapsed    float64 `json:"timeElapsed"`
}

// Session is one player's playthrough of one post. It is persisted whole,
// including the drawn questions with their answers, and never sent to clients as is.
type Session struct {
	GameID         string              `json:"gameId"`
	Username       string              `json:"username"`
	CurrentRound   int                 `json:"currentRound"`
	Score          int                 `json:"score"`
	Answers        []AnswerResult      `json:"answers"`
	RoundStartTime int64               `json:"roundStartTime"` // unix millis
	IsActive       bool                `json:"isActive"`
	Questions      []question.Question `json:"questions"`
}

// TotalRounds is fixed by the questions drawn at start.
func (s *Session) TotalRounds() int {
	return len(s.Questions)
}

// CurrentQuestion returns the question for the current round, if any.
func (s *Session) CurrentQuestion() (question.Question, bool) {
	idx := s.CurrentRound - 1
	if idx < 0 || idx >= len(s.Questions) {
		return question.Question{}, false
	}
	return s.Questions[idx], true
}

// Answered reports whether the current round already has a recorded answer.
func (s *Session) Answered() bool {
	return len(s.Answers) >= s.CurrentRound
}

// Complete reports whether the session reached its terminal state.
func (s *Session) Complete() bool {
	return !s.IsActive && s.CurrentRound > s.TotalRounds()
}

// StartResult is returned when a new game begins.
type StartResult struct {
	GameID         string
	Question       question.PublicView
	RoundNumber    int
	RoundStartTime int64
}

// AnswerOutcome reveals the answer for the round just submitted.
type AnswerOutcome struct {
	IsCorrect     bool
	PointsEarned  int
	CorrectAnswer int
	Explanation   string
	TimeElapsed   float64
	Score         int
}

// AdvanceResult describes the round after an advance. Question is nil once the game is complete.
type AdvanceResult struct {
	Question       *question.PublicView
	RoundNumber    int
	RoundStartTime int64
	GameComplete   bool
	TimedOut       bool
}
