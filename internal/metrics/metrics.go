package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Answer results.
const (
	ResultCorrect = "correct"
	ResultWrong   = "wrong"
	ResultTimeout = "timeout"
)

// Game exposes gameplay counters.
type Game struct {
	GamesStarted     prometheus.Counter
	GamesCompleted   prometheus.Counter
	AnswersSubmitted *prometheus.CounterVec
	ScoresSaved      prometheus.Counter
	RequestErrors    *prometheus.CounterVec
}

// NewGame creates the counters and registers them with reg.
func NewGame(reg prometheus.Registerer) *Game {
	m := &Game{
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "factfrenzy",
			Name:      "games_started_total",
			Help:      "Games started.",
		}),
		GamesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "factfrenzy",
			Name:      "games_completed_total",
			Help:      "Games that advanced past their final round.",
		}),
		AnswersSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "factfrenzy",
			Name:      "answers_submitted_total",
			Help:      "Round outcomes by result.",
		}, []string{"result"}),
		ScoresSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "factfrenzy",
			Name:      "scores_saved_total",
			Help:      "Final scores merged into a leaderboard.",
		}),
		RequestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "factfrenzy",
			Name:      "request_errors_total",
			Help:      "API request failures by error class.",
		}, []string{"class"}),
	}
	reg.MustRegister(m.GamesStarted, m.GamesCompleted, m.AnswersSubmitted, m.ScoresSaved, m.RequestErrors)
	return m
}

// ObserveAnswer counts one round outcome. selected is -1 for a timeout.
func (m *Game) ObserveAnswer(selected int, correct bool) {
	switch {
	case selected < 0:
		m.AnswersSubmitted.WithLabelValues(ResultTimeout).Inc()
	case correct:
		m.AnswersSubmitted.WithLabelValues(ResultCorrect).Inc()
	default:
		m.AnswersSubmitted.WithLabelValues(ResultWrong).Inc()
	}
}
