package question

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// ErrEmptyBank is returned when the bank cannot satisfy a draw.
var ErrEmptyBank = errors.New("question bank has too few questions")

// Bank is an immutable question collection with uniform sampling.
type Bank struct {
	questions []Question
	byID      map[string]int

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewBank copies questions into a bank. A nil rnd is seeded from the clock.
func NewBank(questions []Question, rnd *rand.Rand) *Bank {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := &Bank{
		questions: make([]Question, len(questions)),
		byID:      make(map[string]int, len(questions)),
		rnd:       rnd,
	}
	for i, q := range questions {
		b.questions[i] = q.clone()
		if _, seen := b.byID[q.ID]; !seen {
			b.byID[q.ID] = i
		}
	}
	return b
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// All returns a copy of every question in bank order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.clone()
	}
	return out
}

// ByID looks up a question by its identifier.
func (b *Bank) ByID(id string) (Question, bool) {
	idx, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[idx].clone(), true
}

// Random draws count distinct questions using a Fisher-Yates shuffle.
// Each call reshuffles independently.
func (b *Bank) Random(count int) ([]Question, error) {
	if count <= 0 {
		return []Question{}, nil
	}
	if len(b.questions) < count {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrEmptyBank, count, len(b.questions))
	}

	order := make([]int, len(b.questions))
	for i := range order {
		order[i] = i
	}

	b.mu.Lock()
	for i := len(order) - 1; i > 0; i-- {
		j := b.rnd.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	b.mu.Unlock()

	out := make([]Question, count)
	for i := 0; i < count; i++ {
		out[i] = b.questions[order[i]].clone()
	}
	return out, nil
}
