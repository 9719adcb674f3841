package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Defaults applied when config/scheduler.json is missing.
const (
	DefaultScheduleTime = "09:00"
	DefaultTimezone     = "America/Los_Angeles"
	DefaultRotation     = "sequential"
)

// DefaultTemplates is the rotation order synthesized on first run.
var DefaultTemplates = []string{"ai-development", "productivity", "learning-journey"}

// SchedulerConfig mirrors config/scheduler.json.
type SchedulerConfig struct {
	ScheduleTime string   `json:"scheduleTime" mapstructure:"scheduleTime"`
	Timezone     string   `json:"timezone" mapstructure:"timezone"`
	Enabled      bool     `json:"enabled" mapstructure:"enabled"`
	Templates    []string `json:"templates" mapstructure:"templates"`
	Rotation     string   `json:"rotation" mapstructure:"rotation"`
}

// Config is the immutable runtime configuration built once at startup and
// passed into every component, replacing the original's in-process singletons.
type Config struct {
	Scheduler SchedulerConfig

	// Hour and Minute are parsed from Scheduler.ScheduleTime.
	Hour   int
	Minute int

	// PostingEnabled comes from the POSTING_ENABLED environment flag.
	// When false, every cycle runs as a dry-run.
	PostingEnabled bool

	// LinkedIn credentials, passed through to the publisher.
	AccessToken string
	PersonID    string

	// Optional collaborators.
	AnalyticsBaseURL string
	DiscordToken     string
	AdminChannelID   string

	TemplatesDir string
	LogsDir      string
	DataDir      string
}

// Load reads configuration from the .env file, environment variables, an
// optional config.yaml and config/scheduler.json. A missing scheduler.json is
// synthesized with defaults and persisted before loading continues.
// Environment variables override file settings.
func Load(logger *logrus.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, skipping.")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Info("No config.yaml found, using environment variables and defaults.")
		} else {
			return Config{}, &ConfigError{Reason: "reading config.yaml", Err: err}
		}
	}

	v.SetDefault("scheduleTime", DefaultScheduleTime)
	v.SetDefault("timezone", DefaultTimezone)
	v.SetDefault("enabled", true)
	v.SetDefault("templates", DefaultTemplates)
	v.SetDefault("rotation", DefaultRotation)
	v.SetDefault("templatesDir", "templates")
	v.SetDefault("logsDir", "logs")
	v.SetDefault("dataDir", "data")

	// Merge the scheduler configuration, creating the default file on first run.
	v.SetConfigName("scheduler")
	v.SetConfigType("json")
	v.AddConfigPath("./config")

	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			logger.Info("Using default scheduler configuration")
			if writeErr := WriteDefaultSchedulerConfig("config"); writeErr != nil {
				logger.WithError(writeErr).Warn("Could not persist default scheduler configuration")
			}
		} else {
			return Config{}, &ConfigError{Reason: "merging config/scheduler.json", Err: err}
		}
	}

	cfg := Config{
		PostingEnabled:   strings.EqualFold(v.GetString("POSTING_ENABLED"), "true"),
		AccessToken:      v.GetString("LINKEDIN_ACCESS_TOKEN"),
		PersonID:         v.GetString("LINKEDIN_PERSON_ID"),
		AnalyticsBaseURL: v.GetString("ANALYTICS_BASE_URL"),
		DiscordToken:     v.GetString("DISCORD_BOT_TOKEN"),
		AdminChannelID:   v.GetString("DISCORD_ADMIN_CHANNEL_ID"),
		TemplatesDir:     v.GetString("templatesDir"),
		LogsDir:          v.GetString("logsDir"),
		DataDir:          v.GetString("dataDir"),
	}
	if err := v.Unmarshal(&cfg.Scheduler); err != nil {
		return Config{}, &ConfigError{Reason: "unmarshaling scheduler configuration", Err: err}
	}

	hour, minute, err := ParseScheduleTime(cfg.Scheduler.ScheduleTime)
	if err != nil {
		return Config{}, err
	}
	cfg.Hour = hour
	cfg.Minute = minute

	if err := cfg.Scheduler.Validate(); err != nil {
		return Config{}, err
	}

	logger.Infof("Schedule: Daily at %s (%s)", cfg.Scheduler.ScheduleTime, cfg.Scheduler.Timezone)
	return cfg, nil
}

// ParseScheduleTime parses an "HH:MM" wall-clock time.
func ParseScheduleTime(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, &ConfigError{Reason: fmt.Sprintf("scheduleTime %q is not in HH:MM format", s)}
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, &ConfigError{Reason: fmt.Sprintf("scheduleTime %q has an invalid hour", s)}
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, &ConfigError{Reason: fmt.Sprintf("scheduleTime %q has an invalid minute", s)}
	}
	return hour, minute, nil
}

// Validate checks the fields that would otherwise fail deep inside a cycle.
func (c SchedulerConfig) Validate() error {
	if _, _, err := ParseScheduleTime(c.ScheduleTime); err != nil {
		return err
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return &ConfigError{Reason: fmt.Sprintf("unknown timezone %q", c.Timezone), Err: err}
	}
	if c.Rotation != DefaultRotation {
		return &ConfigError{Reason: fmt.Sprintf("unsupported rotation policy %q, only %q is implemented", c.Rotation, DefaultRotation)}
	}
	return nil
}

// WriteDefaultSchedulerConfig persists the default scheduler.json under dir.
func WriteDefaultSchedulerConfig(dir string) error {
	cfg := SchedulerConfig{
		ScheduleTime: DefaultScheduleTime,
		Timezone:     DefaultTimezone,
		Enabled:      true,
		Templates:    DefaultTemplates,
		Rotation:     DefaultRotation,
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode default scheduler config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "scheduler.json"), data, 0644); err != nil {
		return fmt.Errorf("failed to write default scheduler config: %w", err)
	}
	return nil
}
