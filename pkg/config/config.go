package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/idfm-prim/idfm/pkg/prim"
	"github.com/idfm-prim/idfm/pkg/util"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const defaultListen = ":8080"

type Config struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`

	Listen string `yaml:"listen" validate:"required"`
}

// Overrides carries values given on the command line, empty fields are ignored
type Overrides struct {
	APIKey  string
	BaseURL string
	Listen  string
}

func Default() Config {
	return Config{
		BaseURL: prim.DefaultBaseURL,
		Timeout: prim.DefaultTimeout,
		Listen:  defaultListen,
	}
}

// Load layers defaults, the optional YAML file, IDFM_* environment variables and overrides in that order
func Load(path string, overrides Overrides) (Config, error) {
	cfg := Default()
	env := util.GetEnvironmentVariables()

	if path == "" {
		path = env["IDFM_CONFIG"]
	}

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnvironment(env); err != nil {
		return Config{}, err
	}

	cfg.applyOverrides(overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	log.Debug().Str("path", path).Msg("Loading config file")

	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	if env["IDFM_PRIM_API_KEY"] != "" {
		c.APIKey = env["IDFM_PRIM_API_KEY"]
	}

	if env["IDFM_PRIM_BASE_URL"] != "" {
		c.BaseURL = env["IDFM_PRIM_BASE_URL"]
	}

	if env["IDFM_PRIM_TIMEOUT"] != "" {
		timeout, err := time.ParseDuration(env["IDFM_PRIM_TIMEOUT"])
		if err != nil {
			return fmt.Errorf("IDFM_PRIM_TIMEOUT: %w", err)
		}

		c.Timeout = timeout
	}

	if env["IDFM_LISTEN"] != "" {
		c.Listen = env["IDFM_LISTEN"]
	}

	return nil
}

func (c *Config) applyOverrides(overrides Overrides) {
	if overrides.APIKey != "" {
		c.APIKey = overrides.APIKey
	}

	if overrides.BaseURL != "" {
		c.BaseURL = overrides.BaseURL
	}

	if overrides.Listen != "" {
		c.Listen = overrides.Listen
	}
}

// Validate reports a missing API key as prim.ErrMissingCredential before checking anything else
func (c Config) Validate() error {
	if c.APIKey == "" {
		return prim.ErrMissingCredential
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func (c Config) ClientOptions() prim.Options {
	return prim.Options{
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
	}
}
