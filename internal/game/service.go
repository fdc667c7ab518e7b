package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/fact-frenzy/internal/leaderboard"
	"github.com/gokatarajesh/fact-frenzy/internal/question"
	"github.com/gokatarajesh/fact-frenzy/internal/scoring"
)

// QuestionSource draws the fixed question list for a new session.
type QuestionSource interface {
	Random(count int) ([]question.Question, error)
}

// ScoreRecorder merges a finished game into the post leaderboard.
type ScoreRecorder interface {
	RecordCompletion(ctx context.Context, postID, username string, finalScore int) (*leaderboard.Standing, error)
}

// ServiceOptions configures session lifecycle behavior.
type ServiceOptions struct {
	TotalRounds int
	Scoring     *scoring.Engine
	Now         func() time.Time
}

// Service drives each player's session through start, answer, advance and completion.
// All state round-trips through the session store; nothing is cached between calls.
type Service struct {
	store       *SessionStore
	questions   QuestionSource
	scores      ScoreRecorder
	engine      *scoring.Engine
	totalRounds int
	now         func() time.Time
	logger      zerolog.Logger
}

// NewService creates a session lifecycle service.
func NewService(store *SessionStore, questions QuestionSource, scores ScoreRecorder, logger zerolog.Logger, opts ServiceOptions) *Service {
	rounds := opts.TotalRounds
	if rounds <= 0 {
		rounds = DefaultTotalRounds
	}
	engine := opts.Scoring
	if engine == nil {
		engine = scoring.NewEngine(scoring.DefaultConfig())
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:       store,
		questions:   questions,
		scores:      scores,
		engine:      engine,
		totalRounds: rounds,
		now:         now,
		logger:      logger.With().Str("component", "game").Logger(),
	}
}

// Start draws a fresh question set and overwrites any previous session for the player.
func (s *Service) Start(ctx context.Context, postID, username string) (*StartResult, error) {
	drawn, err := s.questions.Random(s.totalRounds)
	if err != nil {
		if errors.Is(err, question.ErrEmptyBank) {
			return nil, fmt.Errorf("%w: %w", ErrNoQuestionsAvailable, err)
		}
		return nil, fmt.Errorf("draw questions: %w", err)
	}
	if len(drawn) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	startedAt := s.now().UnixMilli()
	sess := &Session{
		GameID:         fmt.Sprintf("%s:%s:%d", postID, username, startedAt),
		Username:       username,
		CurrentRound:   1,
		Score:          0,
		Answers:        []AnswerResult{},
		RoundStartTime: startedAt,
		IsActive:       true,
		Questions:      drawn,
	}
	if err := s.store.Put(ctx, postID, username, sess); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("post_id", postID).
		Str("username", username).
		Str("game_id", sess.GameID).
		Msg("game started")

	return &StartResult{
		GameID:         sess.GameID,
		Question:       drawn[0].Public(),
		RoundNumber:    1,
		RoundStartTime: startedAt,
	}, nil
}

// SubmitAnswer scores the current round. A round accepts exactly one answer;
// selected is -1 when the client timer ran out.
func (s *Service) SubmitAnswer(ctx context.Context, postID, username string, selected int, questionID string) (*AnswerOutcome, error) {
	if selected < scoring.NoAnswer || selected >= question.OptionCount {
		return nil, ErrInvalidSelection
	}

	sess, err := s.activeSession(ctx, postID, username)
	if err != nil {
		return nil, err
	}

	current, ok := sess.CurrentQuestion()
	if !ok || current.ID != questionID {
		return nil, ErrQuestionMismatch
	}
	if sess.Answered() {
		return nil, ErrRoundAlreadyAnswered
	}

	result := s.score(sess, current, selected)
	sess.Answers = append(sess.Answers, result)
	sess.Score += result.PointsEarned

	if err := s.store.Put(ctx, postID, username, sess); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("post_id", postID).
		Str("username", username).
		Int("round", sess.CurrentRound).
		Bool("correct", result.IsCorrect).
		Int("points", result.PointsEarned).
		Float64("elapsed", result.TimeElapsed).
		Msg("answer recorded")

	return &AnswerOutcome{
		IsCorrect:     result.IsCorrect,
		PointsEarned:  result.PointsEarned,
		CorrectAnswer: current.CorrectAnswer,
		Explanation:   current.Explanation,
		TimeElapsed:   result.TimeElapsed,
		Score:         sess.Score,
	}, nil
}

// Advance moves to the next round. An unanswered round is closed as a timeout first,
// and advancing past the last round completes the game.
func (s *Service) Advance(ctx context.Context, postID, username string) (*AdvanceResult, error) {
	sess, err := s.activeSession(ctx, postID, username)
	if err != nil {
		return nil, err
	}

	timedOut := false
	if current, ok := sess.CurrentQuestion(); ok && !sess.Answered() {
		sess.Answers = append(sess.Answers, s.score(sess, current, scoring.NoAnswer))
		timedOut = true
	}

	sess.CurrentRound++
	sess.RoundStartTime = s.now().UnixMilli()

	out := &AdvanceResult{
		RoundNumber:    sess.CurrentRound,
		RoundStartTime: sess.RoundStartTime,
		TimedOut:       timedOut,
	}
	if next, ok := sess.CurrentQuestion(); ok {
		view := next.Public()
		out.Question = &view
	} else {
		sess.IsActive = false
		out.GameComplete = true
	}

	if err := s.store.Put(ctx, postID, username, sess); err != nil {
		return nil, err
	}

	if out.GameComplete {
		s.logger.Info().
			Str("post_id", postID).
			Str("username", username).
			Int("score", sess.Score).
			Msg("game complete")
	}
	return out, nil
}

// Session returns the stored session or ErrNoSession.
func (s *Service) Session(ctx context.Context, postID, username string) (*Session, error) {
	sess, err := s.store.Get(ctx, postID, username)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}

// SaveScore records a completed session's final score on the post leaderboard.
func (s *Service) SaveScore(ctx context.Context, postID, username string) (*leaderboard.Standing, error) {
	sess, err := s.Session(ctx, postID, username)
	if err != nil {
		return nil, err
	}
	if !sess.Complete() {
		return nil, ErrGameNotComplete
	}
	return s.scores.RecordCompletion(ctx, postID, username, sess.Score)
}

func (s *Service) activeSession(ctx context.Context, postID, username string) (*Session, error) {
	sess, err := s.store.Get(ctx, postID, username)
	if err != nil {
		return nil, err
	}
	if sess == nil || !sess.IsActive {
		return nil, ErrNoActiveSession
	}
	return sess, nil
}

// score builds the round result. Elapsed time comes from the server-side round start
// and is clamped at zero if the clock stepped backwards.
func (s *Service) score(sess *Session, q question.Question, selected int) AnswerResult {
	elapsed := float64(s.now().UnixMilli()-sess.RoundStartTime) / 1000
	if elapsed < 0 {
		elapsed = 0
	}
	correct := selected == q.CorrectAnswer
	return AnswerResult{
		QuestionID:     q.ID,
		SelectedAnswer: selected,
		CorrectAnswer:  q.CorrectAnswer,
		IsCorrect:      correct,
		PointsEarned:   s.engine.Points(elapsed, correct, selected),
		TimeElapsed:    elapsed,
	}
}
