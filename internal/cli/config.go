package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/viant/toconv/conv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config represents converter settings file
type Config struct {
	Locale   string `yaml:"locale"`
	Location string `yaml:"location"`
}

// LoadConfig loads YAML config, unknown fields are rejected
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var config Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", path, err)
	}
	return &config, nil
}

// Options returns converter options, unset settings keep defaults
func (c *Config) Options() (conv.Options, error) {
	ret := conv.DefaultOptions()
	if c == nil {
		return ret, nil
	}
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return ret, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
		ret.Locale = tag
	}
	if c.Location != "" {
		loc, err := time.LoadLocation(c.Location)
		if err != nil {
			return ret, fmt.Errorf("invalid location %q: %w", c.Location, err)
		}
		ret.Location = loc
	}
	return ret, nil
}

func newConverter(opts *RootOptions) (*conv.Converter, error) {
	var config *Config
	if opts.Config != "" {
		var err error
		if config, err = LoadConfig(opts.Config); err != nil {
			return nil, err
		}
	}
	options, err := config.Options()
	if err != nil {
		return nil, err
	}
	opts.Logger().WithField("locale", options.Locale.String()).WithField("location", options.Location.String()).Debug("converter options")
	return conv.NewConverter(options), nil
}
