package payment

import "time"

// Default configuration values
const (
	DefaultTimeout = 30 * time.Minute
	DefaultBaseURL = "http://localhost:3000"

	// shareScale bounds share precision to lamport resolution.
	shareScale = 9
)

// Request labels shown by the payer's wallet UI.
const (
	labelDirect    = "Hawamoni - Campus Payment"
	labelSplitBill = "Hawamoni - Split Bill"
)

// Config tunes the presenter.
type Config struct {
	BaseURL string        // base for shareable links
	Timeout time.Duration // validity window applied at creation
	QRSize  int           // pixels, 0 means renderer default
	QRLevel string        // error-correction level, empty means default
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
