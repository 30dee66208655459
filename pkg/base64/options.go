package base64

import (
	"github.com/pkg/errors"

	"github.com/picatz/b64/pkg/alphabet"
)

// Config holds the settings of a single Encode or Decode call.
type Config struct {
	// Table is used to read alphabet symbols while encoding.
	//
	// If not set, then alphabet.Standard is used.
	Table alphabet.Reader

	// Legacy makes Decode accept symbols outside of the alphabet, which
	// are decoded through the alphabet.Invalid sentinel, and makes a
	// trailing group of one symbol decode to nothing instead of failing.
	Legacy bool
}

// Option is a functional option type used to configure an Encode or
// Decode call.
type Option func(*Config) error

// WithTable sets the alphabet.Reader used to fetch symbols while
// encoding.
//
// Readers change how the table is accessed, not what it contains.
// Decoding always uses the standard inverse lookup, so a reader that does
// not yield the standard alphabet is rejected with ErrInvalidTable.
func WithTable(r alphabet.Reader) Option {
	return func(c *Config) error {
		if r == nil {
			return errors.Wrap(ErrInvalidTable, "nil reader")
		}
		if err := alphabet.CheckStandard(r); err != nil {
			return errors.Wrap(ErrInvalidTable, err.Error())
		}
		c.Table = r
		return nil
	}
}

// WithLegacySymbols enables the historical decoding behaviour for
// malformed input.
//
// # Warning
//
// Invalid input is decoded into garbage instead of being reported. This
// should only be used for compatibility with producers that depend on it.
func WithLegacySymbols() Option {
	return func(c *Config) error {
		c.Legacy = true
		return nil
	}
}

func newConfig(opts []Option) (Config, error) {
	// The no-option path must not allocate. Options take the config by
	// pointer, so it escapes to the heap in applyOptions.
	if len(opts) == 0 {
		return Config{Table: alphabet.Standard}, nil
	}
	return applyOptions(opts)
}

func applyOptions(opts []Option) (Config, error) {
	config := &Config{
		Table: alphabet.Standard,
	}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return Config{}, errors.WithMessage(err, "option error")
		}
	}

	return *config, nil
}
