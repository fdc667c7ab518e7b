package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/fact-frenzy/internal/config"
	"github.com/gokatarajesh/fact-frenzy/internal/identity"
	"github.com/gokatarajesh/fact-frenzy/internal/kv"
	"github.com/gokatarajesh/fact-frenzy/internal/question"
)

func testConfig() *config.App {
	return &config.App{
		Name:  "fact-frenzy",
		Store: config.Store{Backend: config.BackendMemory},
		Game: config.Game{
			TotalRounds:    5,
			RoundDuration:  20 * time.Second,
			LeaderboardTop: 10,
		},
		Questions: config.Questions{ValidateOnStartup: true},
		Identity:  config.Identity{Mode: config.IdentityHeader},
	}
}

func writeBank(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const twoQuestions = `
questions:
- id: "1"
  question: "Largest planet?"
  options: ["Mars", "Jupiter", "Venus", "Earth"]
  correctAnswer: 1
  explanation: "Jupiter is the largest."
  category: Science
  difficulty: easy
- id: "2"
  question: "Smallest planet?"
  options: ["Mercury", "Jupiter", "Venus", "Earth"]
  correctAnswer: 0
  explanation: "Mercury is the smallest."
  category: Science
  difficulty: easy
`

func TestLoadBankEmbedded(t *testing.T) {
	bank, err := loadBank(testConfig(), zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 25, bank.Len())
}

func TestLoadBankTooSmall(t *testing.T) {
	cfg := testConfig()
	cfg.Questions.BankPath = writeBank(t, twoQuestions)

	_, err := loadBank(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, question.ErrEmptyBank)

	cfg.Questions.ValidateOnStartup = false
	bank, err := loadBank(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, bank.Len())
}

func TestLoadBankRejectsInvalidQuestions(t *testing.T) {
	cfg := testConfig()
	cfg.Game.TotalRounds = 1
	cfg.Questions.BankPath = writeBank(t, `
questions:
- id: "1"
  question: "Largest planet?"
  options: ["Mars", "Jupiter", "Jupiter", "Earth"]
  correctAnswer: 1
  explanation: "Jupiter is the largest."
  category: Science
  difficulty: easy
`)

	_, err := loadBank(cfg, zerolog.Nop())
	assert.ErrorContains(t, err, "failed validation")
}

func TestBuildStore(t *testing.T) {
	cfg := testConfig()
	store, client, err := buildStore(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.IsType(t, &kv.MemoryStore{}, store)

	mr := miniredis.RunT(t)
	cfg.Store.Backend = config.BackendRedis
	cfg.Redis.Addr = mr.Addr()
	store, client, err = buildStore(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })
	assert.IsType(t, &kv.RedisStore{}, store)

	mr.Close()
	_, _, err = buildStore(context.Background(), cfg)
	assert.ErrorContains(t, err, "connect redis")
}

func TestBuildIdentity(t *testing.T) {
	cfg := testConfig()
	p, err := buildIdentity(cfg)
	require.NoError(t, err)
	assert.IsType(t, identity.HeaderProvider{}, p)

	cfg.Identity.Mode = config.IdentityToken
	_, err = buildIdentity(cfg)
	assert.Error(t, err)

	cfg.Identity.TokenSecret = "s3cret"
	p, err = buildIdentity(cfg)
	require.NoError(t, err)
	assert.IsType(t, &identity.TokenProvider{}, p)
}

func TestScoringConfigFollowsRoundDuration(t *testing.T) {
	cfg := testConfig()
	sc := scoringConfig(cfg)
	assert.Equal(t, 10.0, sc.FastWindowSeconds)
	assert.Equal(t, 20.0, sc.SlowWindowSeconds)

	cfg.Game.RoundDuration = 30 * time.Second
	sc = scoringConfig(cfg)
	assert.Equal(t, 15.0, sc.FastWindowSeconds)
	assert.Equal(t, 30.0, sc.SlowWindowSeconds)
}
