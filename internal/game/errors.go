package game

import "errors"

var (
	ErrNoActiveSession      = errors.New("no active game session")
	ErrNoSession            = errors.New("no game session to save")
	ErrQuestionMismatch     = errors.New("question does not match the current round")
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrRoundAlreadyAnswered = errors.New("current round already answered")
	ErrGameNotComplete      = errors.New("game is not complete")
	ErrInvalidSelection     = errors.New("selected answer out of range")
	ErrCorruptSession       = errors.New("stored game session is unreadable")
)
