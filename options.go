package selectable

import (
	"context"
	"log/slog"

	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/selection"
)

// Option configures a Proxy.
type Option func(*config) error

// config holds all Proxy configuration.
type config struct {
	policy selection.Policy

	// logger is the structured logger for debug output.
	// If nil, logging is disabled (silent mode).
	logger *slog.Logger
}

// DefaultOptions returns the options a Proxy uses when none are given:
// host arch, no downgrades, no vendor or arch changes.
func DefaultOptions() []Option {
	return []Option{
		WithArch(selection.HostArch()),
		WithAllowDowngrade(false),
		WithAllowVendorChange(false),
		WithAllowArchChange(false),
	}
}

// WithArch sets the system architecture used to rank available objects.
func WithArch(arch label.Arch) Option {
	return func(c *config) error {
		c.policy.Arch = arch
		return nil
	}
}

// WithAllowDowngrade lets update candidates be older than what is installed.
func WithAllowDowngrade(allow bool) Option {
	return func(c *config) error {
		c.policy.AllowDowngrade = allow
		return nil
	}
}

// WithAllowVendorChange lets update candidates come from another vendor.
func WithAllowVendorChange(allow bool) Option {
	return func(c *config) error {
		c.policy.AllowVendorChange = allow
		return nil
	}
}

// WithAllowArchChange lets update candidates have another arch.
func WithAllowArchChange(allow bool) Option {
	return func(c *config) error {
		c.policy.AllowArchChange = allow
		return nil
	}
}

// WithVendorEquivalence declares vendors (matched by case-insensitive
// prefix) that count as the same vendor for updates.
func WithVendorEquivalence(vendors ...string) Option {
	return func(c *config) error {
		c.policy.VendorClasses = append(c.policy.VendorClasses, vendors)
		return nil
	}
}

// WithPolicy replaces the whole selection policy.
func WithPolicy(p selection.Policy) Option {
	return func(c *config) error {
		c.policy = p
		return nil
	}
}

// WithLogger sets a structured logger for diagnostics.
// If not set, logging is disabled (silent mode).
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("component", "selectable")
//	px, err := selectable.NewProxy(p, selectable.WithLogger(logger))
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// validate checks the configuration for logical consistency.
func (c *config) validate() error {
	return c.policy.Validate()
}

// log returns the configured logger, or a no-op logger if none was set.
func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(discardHandler{})
}

// discardHandler is a slog.Handler that discards all log records.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// newConfig applies the defaults, then opts, and validates the result.
func newConfig(opts ...Option) (*config, error) {
	c := &config{}
	for _, opt := range append(DefaultOptions(), opts...) {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
