package api

import (
	"errors"

	"github.com/gokatarajesh/fact-frenzy/internal/game"
	"github.com/gokatarajesh/fact-frenzy/internal/identity"
	"github.com/gokatarajesh/fact-frenzy/internal/kv"
	"github.com/gokatarajesh/fact-frenzy/internal/leaderboard"
	httperrors "github.com/gokatarajesh/fact-frenzy/pkg/http/errors"
)

var errInvalidBody = errors.New("invalid request data")

type classified struct {
	class   string
	message string
}

var stateMessages = []struct {
	err     error
	message string
}{
	{game.ErrNoActiveSession, "No active game session"},
	{game.ErrNoSession, "No game session to save"},
	{game.ErrQuestionMismatch, "Question not found in current round"},
	{game.ErrRoundAlreadyAnswered, "Answer already submitted for this round"},
	{game.ErrGameNotComplete, "Game is not complete"},
	{game.ErrNoQuestionsAvailable, "No questions available"},
}

// classify maps an error to its class and the client-facing message. fallback
// describes the failed operation and prefixes storage and unexpected failures.
func classify(err error, fallback string) classified {
	switch {
	case errors.Is(err, identity.ErrMissingPost):
		return classified{httperrors.ClassContext, identity.ErrMissingPost.Error()}
	case errors.Is(err, identity.ErrExpiredContext):
		return classified{httperrors.ClassContext, "Platform context expired"}
	case errors.Is(err, identity.ErrInvalidContext):
		return classified{httperrors.ClassContext, "Invalid platform context"}
	case errors.Is(err, errInvalidBody):
		return classified{httperrors.ClassValidation, "Invalid request data"}
	case errors.Is(err, game.ErrInvalidSelection):
		return classified{httperrors.ClassValidation, "Selected answer must be -1 or between 0 and 3"}
	}

	for _, sm := range stateMessages {
		if errors.Is(err, sm.err) {
			return classified{httperrors.ClassState, sm.message}
		}
	}

	if errors.Is(err, kv.ErrUnavailable) ||
		errors.Is(err, game.ErrCorruptSession) ||
		errors.Is(err, leaderboard.ErrCorruptLeaderboard) {
		return classified{httperrors.ClassStorage, fallback + ": storage unavailable"}
	}
	return classified{httperrors.ClassInternal, fallback}
}
