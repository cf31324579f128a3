package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jobsentry/jobsentry/internal/model"
)

// Config is the root configuration for a JobSentry run. It is built once at
// startup and passed by reference into the components that need it; nothing
// reads process-wide state after Load returns.
type Config struct {
	FetchTimeout time.Duration // per source fetch and per channel send
	Interval     time.Duration // daemon mode re-run interval
	Sources      SourcesConfig
	Filters      FilterConfig
	Mail         MailConfig
	Telegram     TelegramConfig
}

// SourcesConfig enumerates the fixed source adapters.
type SourcesConfig struct {
	LinkedIn  PageSourceConfig
	Wellfound PageSourceConfig
	Naukri    FeedSourceConfig
}

// PageSourceConfig describes an HTML listing-page source.
type PageSourceConfig struct {
	Enabled         bool     `yaml:"enabled"`
	URL             string   `yaml:"url"`
	DefaultCompany  string   `yaml:"default_company"`  // used when items carry no company
	DefaultLocation string   `yaml:"default_location"` // used when items carry no location
	SkillTags       []string `yaml:"skill_tags"`       // static per-source metadata
}

// FeedSourceConfig describes an RSS/Atom feed source.
type FeedSourceConfig struct {
	Enabled         bool     `yaml:"enabled"`
	FeedURL         string   `yaml:"feed_url"`
	DefaultCompany  string   `yaml:"default_company"`
	DefaultLocation string   `yaml:"default_location"`
	SkillTags       []string `yaml:"skill_tags"`
}

// FilterConfig holds the keyword sets driving filtering and classification.
type FilterConfig struct {
	IncludeKeywords   []string // at least one must match or the posting is dropped
	ExcludeKeywords   []string // any match drops the posting, overriding includes
	InternshipMarkers []string // title markers for the internship track
}

// MailConfig is the primary (required) notification channel.
type MailConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Sender    string `yaml:"sender"`
	Password  string `yaml:"password"`
	Recipient string `yaml:"recipient"`
	Subject   string `yaml:"subject"`
}

// TelegramConfig is the optional secondary channel. Leaving both fields
// empty disables the channel without error.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
	Limit    int    `yaml:"limit"` // max postings in the chat short list
}

// Configured reports whether the telegram channel should be attempted.
func (t TelegramConfig) Configured() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// Built-in interest profile, used when the config file does not override the
// keyword sets. Mirrors the fresher-jobs profile the tool was built around.
var (
	defaultIncludeKeywords = []string{
		"java", "react", "node", "mern", "javascript",
		"mongodb", "mysql", "express", "rest", "typescript",
	}
	defaultExcludeKeywords = []string{
		"senior", "lead", "architect", "manager", "principal",
	}
	defaultInternshipMarkers = []string{
		"intern", "fresher", "graduate", "trainee", "campus", "mentorship",
	}
)

const (
	defaultSubject      = "Daily Fresher Software Job Alerts (India)"
	defaultMailHost     = "smtp.gmail.com"
	defaultMailPort     = 587
	defaultFetchTimeout = 15 * time.Second
	defaultInterval     = 24 * time.Hour
	defaultChatLimit    = 10
)

// rawConfig is used for YAML unmarshaling (snake_case fields, durations as strings).
type rawConfig struct {
	FetchTimeout string          `yaml:"fetch_timeout"`
	Interval     string          `yaml:"interval"`
	Sources      rawSources      `yaml:"sources"`
	Filters      rawFilterConfig `yaml:"filters"`
	Mail         MailConfig      `yaml:"mail"`
	Telegram     TelegramConfig  `yaml:"telegram"`
}

type rawSources struct {
	LinkedIn  PageSourceConfig `yaml:"linkedin"`
	Wellfound PageSourceConfig `yaml:"wellfound"`
	Naukri    FeedSourceConfig `yaml:"naukri"`
}

type rawFilterConfig struct {
	IncludeKeywords   []string `yaml:"include_keywords"`
	ExcludeKeywords   []string `yaml:"exclude_keywords"`
	InternshipMarkers []string `yaml:"internship_markers"`
}

// Load reads the YAML config at path, expands ${VAR} references from the
// environment, applies defaults, validates, and returns the Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from raw YAML bytes. Split from Load for tests.
func Parse(data []byte) (*Config, error) {
	// Credentials live in the environment, not in the file.
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	fetchTimeout := defaultFetchTimeout
	if raw.FetchTimeout != "" {
		fetchTimeout, _ = time.ParseDuration(raw.FetchTimeout)
		if fetchTimeout <= 0 {
			return nil, fmt.Errorf("parse fetch_timeout %q: must be a positive duration", raw.FetchTimeout)
		}
	}

	interval := defaultInterval
	if raw.Interval != "" {
		interval, _ = time.ParseDuration(raw.Interval)
		if interval <= 0 {
			return nil, fmt.Errorf("parse interval %q: must be a positive duration", raw.Interval)
		}
	}

	cfg := &Config{
		FetchTimeout: fetchTimeout,
		Interval:     interval,
		Sources: SourcesConfig{
			LinkedIn:  raw.Sources.LinkedIn,
			Wellfound: raw.Sources.Wellfound,
			Naukri:    raw.Sources.Naukri,
		},
		Filters: FilterConfig{
			IncludeKeywords:   raw.Filters.IncludeKeywords,
			ExcludeKeywords:   raw.Filters.ExcludeKeywords,
			InternshipMarkers: raw.Filters.InternshipMarkers,
		},
		Mail:     raw.Mail,
		Telegram: raw.Telegram,
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if len(cfg.Filters.IncludeKeywords) == 0 {
		cfg.Filters.IncludeKeywords = defaultIncludeKeywords
	}
	if len(cfg.Filters.ExcludeKeywords) == 0 {
		cfg.Filters.ExcludeKeywords = defaultExcludeKeywords
	}
	if len(cfg.Filters.InternshipMarkers) == 0 {
		cfg.Filters.InternshipMarkers = defaultInternshipMarkers
	}
	if cfg.Mail.Host == "" {
		cfg.Mail.Host = defaultMailHost
	}
	if cfg.Mail.Port == 0 {
		cfg.Mail.Port = defaultMailPort
	}
	if cfg.Mail.Subject == "" {
		cfg.Mail.Subject = defaultSubject
	}
	if cfg.Telegram.Limit == 0 {
		cfg.Telegram.Limit = defaultChatLimit
	}
}

func validate(cfg *Config) error {
	// Mail is the guaranteed channel; missing credentials fail the run
	// before anything is fetched.
	if cfg.Mail.Sender == "" {
		return &model.ConfigError{Field: "mail.sender", Reason: "required"}
	}
	if cfg.Mail.Password == "" {
		return &model.ConfigError{Field: "mail.password", Reason: "required"}
	}
	if cfg.Mail.Recipient == "" {
		return &model.ConfigError{Field: "mail.recipient", Reason: "required"}
	}

	// Telegram is optional but half a configuration is a mistake, not an
	// absence.
	if (cfg.Telegram.BotToken == "") != (cfg.Telegram.ChatID == "") {
		return &model.ConfigError{Field: "telegram", Reason: "bot_token and chat_id must be set together"}
	}

	if cfg.Sources.LinkedIn.Enabled && cfg.Sources.LinkedIn.URL == "" {
		return &model.ConfigError{Field: "sources.linkedin.url", Reason: "required when enabled"}
	}
	if cfg.Sources.Wellfound.Enabled && cfg.Sources.Wellfound.URL == "" {
		return &model.ConfigError{Field: "sources.wellfound.url", Reason: "required when enabled"}
	}
	if cfg.Sources.Naukri.Enabled && cfg.Sources.Naukri.FeedURL == "" {
		return &model.ConfigError{Field: "sources.naukri.feed_url", Reason: "required when enabled"}
	}

	enabled := 0
	for _, on := range []bool{cfg.Sources.LinkedIn.Enabled, cfg.Sources.Wellfound.Enabled, cfg.Sources.Naukri.Enabled} {
		if on {
			enabled++
		}
	}
	if enabled == 0 {
		return &model.ConfigError{Field: "sources", Reason: "at least one source must be enabled"}
	}

	return nil
}
