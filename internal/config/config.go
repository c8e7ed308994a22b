// Package config loads blitzquiz settings from a YAML file, a .env file and
// the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvTimeLimit     = "BLITZQUIZ_TIME_LIMIT"
	EnvFeedbackDelay = "BLITZQUIZ_FEEDBACK_DELAY"
	EnvToastDuration = "BLITZQUIZ_TOAST_DURATION"
	EnvTheme         = "BLITZQUIZ_THEME"
	EnvLogLevel      = "BLITZQUIZ_LOG_LEVEL"
	EnvLogFormat     = "BLITZQUIZ_LOG_FORMAT"
	EnvLogFile       = "BLITZQUIZ_LOG_FILE"
	EnvConfigPath    = "BLITZQUIZ_CONFIG"
)

// Config holds all application configuration.
type Config struct {
	Quiz QuizConfig `yaml:"quiz"`
	UI   UIConfig   `yaml:"ui"`
	Log  LogConfig  `yaml:"log"`
}

type QuizConfig struct {
	TimeLimit     Duration `yaml:"time_limit" validate:"gte=1000000000"`
	FeedbackDelay Duration `yaml:"feedback_delay" validate:"gte=0"`
	ToastDuration Duration `yaml:"toast_duration" validate:"gt=0"`
}

type UIConfig struct {
	Theme string `yaml:"theme" validate:"oneof=dark light"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"oneof=json pretty"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Quiz: QuizConfig{
			TimeLimit:     Duration(30 * time.Second),
			FeedbackDelay: Duration(1500 * time.Millisecond),
			ToastDuration: Duration(2 * time.Second),
		},
		UI:  UIConfig{Theme: "dark"},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// TimeLimitSeconds returns the per-question countdown in whole seconds.
func (c Config) TimeLimitSeconds() int {
	return int(time.Duration(c.Quiz.TimeLimit) / time.Second)
}

// Load builds the configuration. A missing file at path is not an error; an
// empty path falls back to BLITZQUIZ_CONFIG. A .env file in the working
// directory is loaded if present.
func Load(path string) (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	durations := []struct {
		key string
		dst *Duration
	}{
		{EnvTimeLimit, &cfg.Quiz.TimeLimit},
		{EnvFeedbackDelay, &cfg.Quiz.FeedbackDelay},
		{EnvToastDuration, &cfg.Quiz.ToastDuration},
	}
	for _, d := range durations {
		v := os.Getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = Duration(parsed)
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvTheme, &cfg.UI.Theme},
		{EnvLogLevel, &cfg.Log.Level},
		{EnvLogFormat, &cfg.Log.Format},
		{EnvLogFile, &cfg.Log.File},
	}
	for _, s := range strs {
		if v := os.Getenv(s.key); v != "" {
			*s.dst = v
		}
	}
	return nil
}

var validate = govalidator.New(govalidator.WithRequiredStructEnabled())

// Validate checks field ranges and that the time limit is whole seconds.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var ve govalidator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			fe := ve[0]
			return fmt.Errorf("invalid config: %s (%v) fails %q", fe.Namespace(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if d := time.Duration(c.Quiz.TimeLimit); d%time.Second != 0 {
		return fmt.Errorf("invalid config: quiz.time_limit %s must be a whole number of seconds", d)
	}
	return nil
}
