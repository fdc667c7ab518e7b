package scoring

// NoAnswer is the selected index recorded when a round times out without a choice.
const NoAnswer = -1

// Config holds configurable scoring constants (defaults match the game rules).
type Config struct {
	FastWindowSeconds float64 // default: 10, inclusive
	SlowWindowSeconds float64 // default: 20, inclusive
	FastPoints        int     // default: 100
	SlowPoints        int     // default: 50
	WrongAnswerPoints int     // default: 1, participation credit
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		FastWindowSeconds: 10,
		SlowWindowSeconds: 20,
		FastPoints:        100,
		SlowPoints:        50,
		WrongAnswerPoints: 1,
	}
}

// Engine maps a round outcome to points. It is stateless and safe for concurrent use.
type Engine struct {
	config Config
}

// NewEngine creates a scoring engine with the provided config.
func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// Points computes the award for one round:
//   - no selection earns nothing, whatever isCorrect says
//   - a wrong selection earns the participation credit
//   - a correct selection earns by speed, nothing past the slow window
func (e *Engine) Points(elapsedSeconds float64, isCorrect bool, selected int) int {
	if selected == NoAnswer {
		return 0
	}
	if !isCorrect {
		return e.config.WrongAnswerPoints
	}
	switch {
	case elapsedSeconds <= e.config.FastWindowSeconds:
		return e.config.FastPoints
	case elapsedSeconds <= e.config.SlowWindowSeconds:
		return e.config.SlowPoints
	default:
		return 0
	}
}

var defaultEngine = NewEngine(DefaultConfig())

// ComputePoints scores a round with the default rules.
func ComputePoints(elapsedSeconds float64, isCorrect bool, selected int) int {
	return defaultEngine.Points(elapsedSeconds, isCorrect, selected)
}
