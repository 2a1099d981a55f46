package exposure

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Config holds the resolved options of one exposed attribute together with the
// block option layers it is declared under.
//
// A Config is owned by a single declaration and is not safe for concurrent
// mutation.
type Config struct {
	options      Options
	blockOptions []Options
	logger       *zap.Logger
}

// ConfigOption customizes a Config.
type ConfigOption func(*Config)

// WithBlockOptions seeds the block stack with already validated layers,
// oldest first.
func WithBlockOptions(layers ...Options) ConfigOption {
	return func(c *Config) {
		for _, l := range layers {
			c.blockOptions = append(c.blockOptions, l.Clone())
		}
	}
}

// WithLogger sets the logger used to report displaced predicates.
func WithLogger(logger *zap.Logger) ConfigOption {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConfig creates a Config holding options as is.
func NewConfig(options Options, opts ...ConfigOption) *Config {
	if options == nil {
		options = Options{}
	}

	c := &Config{
		options: options,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// PushBlockOptions validates raw and pushes it as the newest block layer.
func (c *Config) PushBlockOptions(raw Options) error {
	layer, err := ValidateOptions(raw)
	if err != nil {
		return fmt.Errorf("block options: %w", err)
	}

	c.blockOptions = append(c.blockOptions, layer)

	return nil
}

// PopBlockOptions removes the newest block layer. It is a no-op on an empty
// stack.
func (c *Config) PopBlockOptions() {
	if len(c.blockOptions) == 0 {
		return
	}

	c.blockOptions = c.blockOptions[:len(c.blockOptions)-1]
}

// BlockOptions returns a copy of the block stack, oldest first.
func (c *Config) BlockOptions() []Options {
	return slices.Clone(c.blockOptions)
}

// MergeOptions validates raw, folds the block layers and then raw into a single
// option set, stores it as the options of c and returns it.
//
// When an if/unless value in map form meets one in single form, the single one
// is appended to if_extras/unless_extras. Those keys are absent when nothing was
// displaced.
func (c *Config) MergeOptions(raw Options) (Options, error) {
	declared, err := ValidateOptions(raw)
	if err != nil {
		return nil, err
	}

	f := newFolder()
	f.onDisplace = func(key Key, value any) {
		c.logger.Debug("predicate displaced by map form",
			zap.String("key", key.String()),
			zap.Any("value", value))
	}

	for _, layer := range c.blockOptions {
		f.fold(layer)
	}

	f.fold(declared)

	c.options = f.result()

	return c.options, nil
}

// Options returns the complete option set.
func (c *Config) Options() Options {
	return c.options
}

// Get returns the value of key, or nil if unset.
func (c *Config) Get(key Key) any {
	return c.options[key]
}

// Lookup returns the value of key and whether it is set.
func (c *Config) Lookup(key Key) (any, bool) {
	v, ok := c.options[key]
	return v, ok
}

// Set stores value under key without validation.
func (c *Config) Set(key Key, value any) {
	c.options[key] = value
}

// HasKey returns true if key is set, even to nil.
func (c *Config) HasKey(key Key) bool {
	_, ok := c.options[key]
	return ok
}

// Len returns the number of options set.
func (c *Config) Len() int {
	return len(c.options)
}
