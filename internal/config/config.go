// Package config loads zyppsel settings from a TOML file.
//
//	arch = "x86_64"
//	allow_downgrade = false
//	allow_vendor_change = false
//	allow_arch_change = false
//	vendor_equivalence = [["openSUSE", "SUSE"]]
//	default_causer = "user"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	selectable "github.com/albertocavalcante/go-selectable"
	"github.com/albertocavalcante/go-selectable/label"
	"github.com/albertocavalcante/go-selectable/pool"
	"github.com/albertocavalcante/go-selectable/selection"
)

// ErrConfigValidation wraps config validation failures (as opposed to TOML
// syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

// Config is the content of a config file. Empty fields keep the library
// defaults.
type Config struct {
	Arch              string     `toml:"arch"`
	AllowDowngrade    bool       `toml:"allow_downgrade"`
	AllowVendorChange bool       `toml:"allow_vendor_change"`
	AllowArchChange   bool       `toml:"allow_arch_change"`
	VendorEquivalence [][]string `toml:"vendor_equivalence"`
	DefaultCauser     string     `toml:"default_causer"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses and validates TOML data; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s: unrecognized keys:\n%s", ErrConfigValidation, source, strict.String())
		}
		return nil, fmt.Errorf("invalid config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigValidation, source, err)
	}
	return &cfg, nil
}

// Validate ensures the config is consistent.
func (c *Config) Validate() error {
	if c.DefaultCauser != "" {
		if _, err := pool.ParseCauser(c.DefaultCauser); err != nil {
			return err
		}
	}
	p, err := c.Policy()
	if err != nil {
		return err
	}
	return p.Validate()
}

// Policy returns the selection policy described by the config, starting
// from the library default.
func (c *Config) Policy() (selection.Policy, error) {
	p := selection.DefaultPolicy()
	if c.Arch != "" {
		arch, err := label.NewArch(c.Arch)
		if err != nil {
			return selection.Policy{}, err
		}
		p.Arch = arch
	}
	p.AllowDowngrade = c.AllowDowngrade
	p.AllowVendorChange = c.AllowVendorChange
	p.AllowArchChange = c.AllowArchChange
	for _, class := range c.VendorEquivalence {
		p.VendorClasses = append(p.VendorClasses, slices.Clone(class))
	}
	return p, nil
}

// Options converts the config into Proxy options.
func (c *Config) Options() ([]selectable.Option, error) {
	p, err := c.Policy()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return []selectable.Option{selectable.WithPolicy(p)}, nil
}

// Causer returns the rank commands run with, the user by default.
func (c *Config) Causer() pool.Causer {
	if c.DefaultCauser == "" {
		return pool.CauserUser
	}
	causer, err := pool.ParseCauser(c.DefaultCauser)
	if err != nil {
		return pool.CauserUser
	}
	return causer
}
