package host

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/wippyai/glbridge/errors"
	"github.com/wippyai/glbridge/resource"
)

const (
	// DefaultModuleName is the import module guests link against.
	DefaultModuleName = "env"

	// DefaultMaxStringLength bounds shader sources and identifier names.
	DefaultMaxStringLength = 1 << 20
)

var validate = validator.New()

// Config holds the settings of an Env.
type Config struct {
	Logger          *zap.Logger         `validate:"-"`
	ModuleName      string              `validate:"required,printascii"`
	Observers       []resource.Observer `validate:"-"`
	MaxStringLength uint32              `validate:"min=1"`
	SlotReuse       bool
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		ModuleName:      DefaultModuleName,
		MaxStringLength: DefaultMaxStringLength,
	}
}

// Validate checks c against its field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.New(errors.PhaseSetup, errors.KindInvalidInput).
			Detail("invalid host config").
			Cause(err).
			Build()
	}
	return nil
}

// Option configures an Env.
type Option func(*Config)

// WithModuleName sets the import module name guests link against.
func WithModuleName(name string) Option {
	return func(c *Config) {
		c.ModuleName = name
	}
}

// WithMaxStringLength bounds strings read from guest memory.
func WithMaxStringLength(n uint32) Option {
	return func(c *Config) {
		c.MaxStringLength = n
	}
}

// WithSlotReuse lets deleted handles be reissued.
func WithSlotReuse() Option {
	return func(c *Config) {
		c.SlotReuse = true
	}
}

// WithLogger sets the logger for host calls. Defaults to Logger().
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithObserver subscribes o to handle lifecycle events.
func WithObserver(o resource.Observer) Option {
	return func(c *Config) {
		c.Observers = append(c.Observers, o)
	}
}
