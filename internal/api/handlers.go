package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/fact-frenzy/internal/game"
	"github.com/gokatarajesh/fact-frenzy/internal/identity"
	"github.com/gokatarajesh/fact-frenzy/internal/leaderboard"
	"github.com/gokatarajesh/fact-frenzy/internal/logging"
	"github.com/gokatarajesh/fact-frenzy/internal/metrics"
	httperrors "github.com/gokatarajesh/fact-frenzy/pkg/http/errors"
)

const maxBodyBytes = 1 << 16

// Options configures handler behavior.
type Options struct {
	// GameReady is reported by /api/init; false when the bank cannot fill a game.
	GameReady bool
}

// Handlers exposes the game over JSON.
type Handlers struct {
	games    *game.Service
	boards   *leaderboard.Service
	identity identity.Provider
	metrics  *metrics.Game
	opts     Options
	logger   zerolog.Logger
}

// NewHandlers creates the API handlers.
func NewHandlers(games *game.Service, boards *leaderboard.Service, provider identity.Provider, m *metrics.Game, logger zerolog.Logger, opts Options) *Handlers {
	return &Handlers{
		games:    games,
		boards:   boards,
		identity: provider,
		metrics:  m,
		opts:     opts,
		logger:   logger.With().Str("component", "api").Logger(),
	}
}

// Register mounts every API route on mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/init", h.only(http.MethodGet, h.Init))
	mux.HandleFunc("/api/start-game", h.only(http.MethodPost, h.StartGame))
	mux.HandleFunc("/api/submit-answer", h.only(http.MethodPost, h.SubmitAnswer))
	mux.HandleFunc("/api/next-question", h.only(http.MethodPost, h.NextQuestion))
	mux.HandleFunc("/api/save-score", h.only(http.MethodPost, h.SaveScore))
	mux.HandleFunc("/api/get-leaderboard", h.only(http.MethodPost, h.GetLeaderboard))
}

// Init handles GET /api/init
func (h *Handlers) Init(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r, "Initialization failed")
	if !ok {
		return
	}
	h.respondJSON(w, InitResponse{
		Type:      TypeInit,
		PostID:    caller.PostID,
		Username:  caller.Username,
		GameReady: h.opts.GameReady,
	})
}

// StartGame handles POST /api/start-game
func (h *Handlers) StartGame(w http.ResponseWriter, r *http.Request) {
	const op = "Failed to start game"
	caller, ok := h.caller(w, r, op)
	if !ok {
		return
	}

	res, err := h.games.Start(r.Context(), caller.PostID, caller.Username)
	if err != nil {
		h.respondError(w, r, caller, err, op)
		return
	}
	h.metrics.GamesStarted.Inc()

	h.respondJSON(w, StartGameResponse{
		Type:           TypeStartGame,
		GameID:         res.GameID,
		Question:       res.Question,
		RoundNumber:    res.RoundNumber,
		RoundStartTime: res.RoundStartTime,
	})
}

// SubmitAnswer handles POST /api/submit-answer
func (h *Handlers) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	const op = "Failed to submit answer"
	caller, ok := h.caller(w, r, op)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil || req.SelectedAnswer == nil || req.QuestionID == nil {
		h.respondError(w, r, caller, errInvalidBody, op)
		return
	}

	out, err := h.games.SubmitAnswer(r.Context(), caller.PostID, caller.Username, *req.SelectedAnswer, *req.QuestionID)
	if err != nil {
		h.respondError(w, r, caller, err, op)
		return
	}
	h.metrics.ObserveAnswer(*req.SelectedAnswer, out.IsCorrect)

	h.respondJSON(w, SubmitAnswerResponse{
		Type:          TypeSubmitAnswer,
		IsCorrect:     out.IsCorrect,
		PointsEarned:  out.PointsEarned,
		CorrectAnswer: out.CorrectAnswer,
		Explanation:   out.Explanation,
		TimeElapsed:   out.TimeElapsed,
	})
}

// NextQuestion handles POST /api/next-question
func (h *Handlers) NextQuestion(w http.ResponseWriter, r *http.Request) {
	const op = "Failed to get next question"
	caller, ok := h.caller(w, r, op)
	if !ok {
		return
	}

	res, err := h.games.Advance(r.Context(), caller.PostID, caller.Username)
	if err != nil {
		h.respondError(w, r, caller, err, op)
		return
	}
	if res.TimedOut {
		h.metrics.ObserveAnswer(-1, false)
	}
	if res.GameComplete {
		h.metrics.GamesCompleted.Inc()
	}

	h.respondJSON(w, NextQuestionResponse{
		Type:           TypeNextQuestion,
		Question:       res.Question,
		RoundNumber:    res.RoundNumber,
		RoundStartTime: res.RoundStartTime,
		GameComplete:   res.GameComplete,
	})
}

// SaveScore handles POST /api/save-score
func (h *Handlers) SaveScore(w http.ResponseWriter, r *http.Request) {
	const op = "Failed to save score"
	caller, ok := h.caller(w, r, op)
	if !ok {
		return
	}

	standing, err := h.games.SaveScore(r.Context(), caller.PostID, caller.Username)
	if err != nil {
		h.respondError(w, r, caller, err, op)
		return
	}
	h.metrics.ScoresSaved.Inc()

	h.respondJSON(w, SaveScoreResponse{
		Type:        TypeSaveScore,
		FinalScore:  standing.FinalScore,
		Rank:        standing.Rank,
		Leaderboard: standing.Top,
	})
}

// GetLeaderboard handles POST /api/get-leaderboard
func (h *Handlers) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "Failed to get leaderboard"
	caller, ok := h.caller(w, r, op)
	if !ok {
		return
	}

	top, userRank, err := h.boards.Board(r.Context(), caller.PostID, caller.Username)
	if err != nil {
		h.respondError(w, r, caller, err, op)
		return
	}

	h.respondJSON(w, LeaderboardResponse{
		Type:        TypeLeaderboard,
		Leaderboard: top,
		UserRank:    userRank,
	})
}

func (h *Handlers) caller(w http.ResponseWriter, r *http.Request, op string) (identity.Caller, bool) {
	caller, err := h.identity.Resolve(r)
	if err != nil {
		h.respondError(w, r, caller, err, op)
		return identity.Caller{}, false
	}
	return caller, true
}

func (h *Handlers) only(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			httperrors.RespondMethodNotAllowed(w, method)
			return
		}
		next(w, r)
	}
}

func (h *Handlers) respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, caller identity.Caller, err error, op string) {
	c := classify(err, op)
	h.metrics.RequestErrors.WithLabelValues(c.class).Inc()

	logger := logging.FromContext(r.Context())
	if logger.GetLevel() == zerolog.Disabled {
		logger = h.logger
	}
	evt := logger.Warn()
	if c.class == httperrors.ClassStorage || c.class == httperrors.ClassInternal {
		evt = logger.Error()
	}
	evt.Err(err).
		Str("post_id", caller.PostID).
		Str("username", caller.Username).
		Str("class", c.class).
		Str("path", r.URL.Path).
		Msg(op)

	httperrors.RespondBadRequest(w, c.message)
}
