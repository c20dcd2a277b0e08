// Package config loads the settings for a report run. Settings are layered:
// built in defaults, then an optional YAML file, then BEACHRIDE_* environment
// variables. Command line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/spencer-p/beachride/pkg/noaa"
	"github.com/spencer-p/beachride/pkg/notify"
	"github.com/spencer-p/beachride/pkg/timetricks"
)

// EnvPrefix prefixes every environment variable, e.g. BEACHRIDE_MAIL_HOST.
const EnvPrefix = "BEACHRIDE"

const (
	SourcePage = "page"
	SourceAPI  = "api"
)

type Config struct {
	Early        timetricks.Clock `yaml:"early"`
	Late         timetricks.Clock `yaml:"late"`
	Month        string           `yaml:"month"`
	LowTideLevel float64          `yaml:"low_tide_level" split_words:"true"`
	Daylight     bool             `yaml:"daylight"`

	Source       string        `yaml:"source"`
	UserAgent    string        `yaml:"user_agent" split_words:"true"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" split_words:"true"`
	PageURL      string        `yaml:"page_url" split_words:"true"`
	APIURL       string        `yaml:"api_url" split_words:"true"`
	CacheTTL     time.Duration `yaml:"cache_ttl" split_words:"true"`

	Schedule    string `yaml:"schedule"`
	Listen      string `yaml:"listen"`
	PushGateway string `yaml:"push_gateway" split_words:"true"`

	Mail     notify.MailConfig `yaml:"mail"`
	Telegram Telegram          `yaml:"telegram"`
}

type Telegram struct {
	Token  string `yaml:"token"`
	ChatID int64  `yaml:"chat_id" split_words:"true"`
}

// Default returns the settings used when nothing else is given.
func Default() *Config {
	return &Config{
		Early:        timetricks.Clock{Hour: 10},
		Late:         timetricks.Clock{Hour: 16},
		Month:        timetricks.Current.String(),
		LowTideLevel: 0,
		Source:       SourcePage,
		UserAgent:    noaa.DefaultUserAgent,
		FetchTimeout: noaa.DefaultTimeout,
		PageURL:      noaa.PAGE_URL,
		APIURL:       noaa.API_URL,
		// cache for slightly less than one day so daily runs don't see stale
		// data
		CacheTTL: 23 * time.Hour,
		Listen:   ":8080",
		Mail: notify.MailConfig{
			Port: 587,
		},
	}
}

// Load layers the file at path (if any) and the environment over Default.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// No field carries a default tag, so unset variables leave the values
	// above alone.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that would otherwise fail halfway through a run.
func (c *Config) Validate() error {
	if _, err := timetricks.ParseMonthMode(c.Month); err != nil {
		return fmt.Errorf("month: %w", err)
	}
	switch c.Source {
	case SourcePage, SourceAPI:
	default:
		return fmt.Errorf("source: %q is not one of %s, %s", c.Source, SourcePage, SourceAPI)
	}
	if c.FetchTimeout <= 0 {
		return errors.New("fetch_timeout: must be positive")
	}
	if c.Telegram.Token != "" && c.Telegram.ChatID == 0 {
		return errors.New("telegram: chat_id is required with a token")
	}
	return nil
}
