package customer

import "time"

// Config tunes the customer form service.
type Config struct {
	// EmailDebounce and FirstNameDebounce set the quiet period before a live
	// change of that field is validated. Other fields validate immediately.
	EmailDebounce     time.Duration `env:"CUSTOMER_EMAIL_DEBOUNCE" envDefault:"2s"`
	FirstNameDebounce time.Duration `env:"CUSTOMER_FIRST_NAME_DEBOUNCE" envDefault:"500ms"`

	// MaxLiveSessions bounds the number of session+field debouncers kept alive.
	MaxLiveSessions int `env:"CUSTOMER_MAX_LIVE_SESSIONS" envDefault:"10000"`

	DraftTTL      time.Duration `env:"CUSTOMER_DRAFT_TTL" envDefault:"168h"`
	MessagePrefix string        `env:"CUSTOMER_MESSAGE_PREFIX" envDefault:"validation"`
}

// DefaultConfig mirrors the env defaults for callers that do not load env.
func DefaultConfig() Config {
	return Config{
		EmailDebounce:     2 * time.Second,
		FirstNameDebounce: 500 * time.Millisecond,
		MaxLiveSessions:   10000,
		DraftTTL:          7 * 24 * time.Hour,
		MessagePrefix:     "validation",
	}
}

// debounce returns the quiet period for a live change of field.
func (c Config) debounce(field string) time.Duration {
	switch field {
	case FieldEmail:
		return c.EmailDebounce
	case FieldFirstName:
		return c.FirstNameDebounce
	}
	return 0
}
