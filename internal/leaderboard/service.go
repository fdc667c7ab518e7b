package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/gokatarajesh/fact-frenzy/internal/kv"
)

// DefaultTopN is how many entries responses carry.
const DefaultTopN = 10

// ErrCorruptLeaderboard is returned when the stored blob cannot be decoded.
var ErrCorruptLeaderboard = errors.New("stored leaderboard is unreadable")

// Entry is one player's most recent completed result on a post.
// Rank is derived from sort order and rewritten on every merge.
type Entry struct {
	Username    string `json:"username"`
	Score       int    `json:"score"`
	CompletedAt int64  `json:"completedAt"` // unix millis
	Rank        int    `json:"rank"`
}

// Standing is the caller's position after recording a completion.
type Standing struct {
	FinalScore int
	Rank       int
	Top        []Entry
}

// ServiceOptions configures leaderboard service behavior.
type ServiceOptions struct {
	TopN int
	Now  func() time.Time
}

// Service merges completed games into per-post ranked lists stored as a single blob.
type Service struct {
	kv     kv.Store
	logger zerolog.Logger
	topN   int
	now    func() time.Time
	reads  singleflight.Group
}

// NewService constructs a leaderboard service instance.
func NewService(store kv.Store, logger zerolog.Logger, opts ServiceOptions) *Service {
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		kv:     store,
		logger: logger.With().Str("component", "leaderboard").Logger(),
		topN:   topN,
		now:    now,
	}
}

// Key is the storage key of a post's leaderboard.
func Key(postID string) string {
	return fmt.Sprintf("post:%s:leaderboard", postID)
}

// RecordCompletion replaces or appends the player's entry, re-ranks the whole list and
// writes it back. The read-modify-write is not atomic: two players finishing at the
// same time can each overwrite the other's update.
func (s *Service) RecordCompletion(ctx context.Context, postID, username string, finalScore int) (*Standing, error) {
	entries, err := s.load(ctx, postID)
	if err != nil {
		return nil, err
	}

	entries = Merge(entries, Entry{
		Username:    username,
		Score:       finalScore,
		CompletedAt: s.now().UnixMilli(),
	})

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal leaderboard: %w", err)
	}
	if err := s.kv.Set(ctx, Key(postID), string(data)); err != nil {
		return nil, fmt.Errorf("store leaderboard: %w", err)
	}

	rank := len(entries)
	if r, ok := RankOf(entries, username); ok {
		rank = r
	}
	s.logger.Info().
		Str("post_id", postID).
		Str("username", username).
		Int("score", finalScore).
		Int("rank", rank).
		Msg("score recorded")

	return &Standing{
		FinalScore: finalScore,
		Rank:       rank,
		Top:        topOf(entries, s.topN),
	}, nil
}

// Top returns the highest ranked entries for a post without mutating it.
func (s *Service) Top(ctx context.Context, postID string) ([]Entry, error) {
	entries, err := s.ranked(ctx, postID)
	if err != nil {
		return nil, err
	}
	return topOf(entries, s.topN), nil
}

// Board returns the top entries plus the caller's rank in the full list, if present.
func (s *Service) Board(ctx context.Context, postID, username string) ([]Entry, *int, error) {
	entries, err := s.ranked(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	var userRank *int
	if r, ok := RankOf(entries, username); ok {
		userRank = &r
	}
	return topOf(entries, s.topN), userRank, nil
}

// ranked coalesces concurrent reads of the same post and returns a private copy.
func (s *Service) ranked(ctx context.Context, postID string) ([]Entry, error) {
	v, err, _ := s.reads.Do(postID, func() (interface{}, error) {
		entries, err := s.load(ctx, postID)
		if err != nil {
			return nil, err
		}
		Rank(entries)
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	shared := v.([]Entry)
	return append([]Entry(nil), shared...), nil
}

func (s *Service) load(ctx context.Context, postID string) ([]Entry, error) {
	raw, found, err := s.kv.Get(ctx, Key(postID))
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	if !found {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLeaderboard, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Merge replaces the entry with the same username or appends a new one, then ranks the list.
func Merge(entries []Entry, e Entry) []Entry {
	replaced := false
	for i := range entries {
		if entries[i].Username == e.Username {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
	}
	Rank(entries)
	return entries
}

// Rank sorts entries by score descending, keeping input order among ties, and
// assigns contiguous ranks from 1.
func Rank(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
}

// RankOf finds the rank of username in a ranked list.
func RankOf(entries []Entry, username string) (int, bool) {
	for _, e := range entries {
		if e.Username == username {
			return e.Rank, true
		}
	}
	return 0, false
}

func topOf(entries []Entry, n int) []Entry {
	if len(entries) > n {
		entries = entries[:n]
	}
	return append([]Entry{}, entries...)
}
