// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	//
	// Config is decodable from TOML:
	//
	//	open_delim = "<%"
	//	close_delim = "%>"
	//	strict = false
	//	debug = true
	Config struct {
		Logger     logrus.FieldLogger `toml:"-"`
		OpenDelim  string             `toml:"open_delim"`
		CloseDelim string             `toml:"close_delim"`
		Strict     bool               `toml:"strict"`
		Debug      bool               `toml:"debug"`
	}
)

// Configuration errors.
var (
	ErrLoadConfig    = errors.New("failed to load lexer config")
	ErrUnknownFields = errors.New("unknown config fields")
)

// DefaultConfig configures the lexer's Config.
func DefaultConfig() *Config {
	return &Config{
		OpenDelim:  DefaultOpenDelim,
		CloseDelim: DefaultCloseDelim,
		Strict:     true,
		Logger:     logrus.New(),
	}
}

// LoadConfig reads a TOML Config file, unset fields retain their defaults.
func LoadConfig(path string) (cfg *Config, err error) {
	cfg = DefaultConfig()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		err = fmt.Errorf("%w (%s): %v", ErrLoadConfig, path, err)
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		err = fmt.Errorf("%w (%s): %v", ErrUnknownFields, path, undecoded)
		return
	}
	cfg.Validate()

	return
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.OpenDelim == "" {
		c.OpenDelim = DefaultOpenDelim
	}
	if c.CloseDelim == "" {
		c.CloseDelim = DefaultCloseDelim
	}
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
}

// Options converts the Config into Lexer Options for some source.
func (c *Config) Options(source io.RuneReader) []Option {
	c.Validate()

	return []Option{
		WithSource(source),
		WithDelimiters(c.OpenDelim, c.CloseDelim),
		WithStrict(c.Strict),
		WithDebug(c.Debug),
		WithLogger(c.Logger),
	}
}
