package game

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gokatarajesh/fact-frenzy/internal/kv"
)

// SessionStore persists sessions as JSON blobs keyed by post and player.
// There is no locking: the last writer wins.
type SessionStore struct {
	kv kv.Store
}

// NewSessionStore creates a session store over the given key-value store.
func NewSessionStore(store kv.Store) *SessionStore {
	return &SessionStore{kv: store}
}

// SessionKey is the storage key for one player's session on one post.
func SessionKey(postID, username string) string {
	return fmt.Sprintf("post:%s:session:%s", postID, username)
}

// Get returns nil, nil when no session is stored.
func (s *SessionStore) Get(ctx context.Context, postID, username string) (*Session, error) {
	raw, found, err := s.kv.Get(ctx, SessionKey(postID, username))
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !found {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if sess.Answers == nil {
		sess.Answers = []AnswerResult{}
	}
	return &sess, nil
}

// Put overwrites the stored session.
func (s *SessionStore) Put(ctx context.Context, postID, username string, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.kv.Set(ctx, SessionKey(postID, username), string(data)); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}
