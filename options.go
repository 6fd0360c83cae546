package pocketcube

// Option configures Cube behavior.
type Option func(*config)

type config struct {
	moveHistory bool
	historyCap  int
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		historyCap:  0,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), applied moves are stored and accessible via Moves().
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithHistoryLimit keeps only the most recent n moves in the history.
// Zero or a negative n means unlimited.
func WithHistoryLimit(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.historyCap = n
	}
}
