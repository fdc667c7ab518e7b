package api

import (
	"github.com/gokatarajesh/fact-frenzy/internal/leaderboard"
	"github.com/gokatarajesh/fact-frenzy/internal/question"
)

// Response type tags.
const (
	TypeInit         = "init"
	TypeStartGame    = "start-game"
	TypeSubmitAnswer = "submit-answer"
	TypeNextQuestion = "next-question"
	TypeSaveScore    = "save-score"
	TypeLeaderboard  = "leaderboard"
)

// InitResponse answers GET /api/init.
type InitResponse struct {
	Type      string `json:"type"`
	PostID    string `json:"postId"`
	Username  string `json:"username"`
	GameReady bool   `json:"gameReady"`
}

// StartGameResponse carries round 1 of a new game.
type StartGameResponse struct {
	Type           string              `json:"type"`
	GameID         string              `json:"gameId"`
	Question       question.PublicView `json:"question"`
	RoundNumber    int                 `json:"roundNumber"`
	RoundStartTime int64               `json:"roundStartTime"`
}

// SubmitAnswerRequest is the submit-answer body. It uses pointers so a missing field is distinguishable from zero.
type SubmitAnswerRequest struct {
	SelectedAnswer *int    `json:"selectedAnswer"`
	QuestionID     *string `json:"questionId"`
}

// SubmitAnswerResponse reveals the answer for the current round.
type SubmitAnswerResponse struct {
	Type          string  `json:"type"`
	IsCorrect     bool    `json:"isCorrect"`
	PointsEarned  int     `json:"pointsEarned"`
	CorrectAnswer int     `json:"correctAnswer"`
	Explanation   string  `json:"explanation"`
	TimeElapsed   float64 `json:"timeElapsed"`
}

// NextQuestionResponse carries the next round, or gameComplete with a null question.
type NextQuestionResponse struct {
	Type           string               `json:"type"`
	Question       *question.PublicView `json:"question"`
	RoundNumber    int                  `json:"roundNumber"`
	RoundStartTime int64                `json:"roundStartTime"`
	GameComplete   bool                 `json:"gameComplete"`
}

// SaveScoreResponse is the caller's standing after saving.
type SaveScoreResponse struct {
	Type        string              `json:"type"`
	FinalScore  int                 `json:"finalScore"`
	Rank        int                 `json:"rank"`
	Leaderboard []leaderboard.Entry `json:"leaderboard"`
}

// LeaderboardResponse lists the top entries; UserRank is null when the caller has no entry.
type LeaderboardResponse struct {
	Type        string              `json:"type"`
	Leaderboard []leaderboard.Entry `json:"leaderboard"`
	UserRank    *int                `json:"userRank"`
}
