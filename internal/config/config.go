// Package config loads notepad settings. Defaults come first, then an optional
// YAML file, then NOTEPAD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backends understood by the storage factory.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendS3     = "s3"
	BackendMemory = "memory"
)

const configFileName = "config.yaml"

// Config holds all application configuration.
type Config struct {
	// DataDir holds the file and sqlite backends and the default config file. Defaults to ~/.notepad.
	DataDir string `yaml:"data_dir"`
	Backend string `yaml:"backend"`

	// LogLevel is a zap level name. LogFile empty means stderr.
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	Theme   string `yaml:"theme"`
	NoColor bool   `yaml:"no_color"`

	S3 S3Config `yaml:"s3"`
}

// S3Config configures the s3 backend.
type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	UsePathStyle    bool   `yaml:"use_path_style"`
}

// ValidationError lists every problem found in a Config.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Default returns the built-in configuration.
func Default() Config {
	dir := ".notepad"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".notepad")
	}
	return Config{
		DataDir:  dir,
		Backend:  BackendFile,
		LogLevel: "warn",
		Theme:    "classic",
		S3: S3Config{
			Region: "us-east-1",
			Prefix: "notepad/",
		},
	}
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, configFileName)
}

// Load builds the configuration. path may be empty, in which case the default
// location is tried; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if dir := os.Getenv("NOTEPAD_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if path == "" {
		path = DefaultPath(cfg.DataDir)
	}
	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	str := map[string]*string{
		"NOTEPAD_DATA_DIR":             &cfg.DataDir,
		"NOTEPAD_BACKEND":              &cfg.Backend,
		"NOTEPAD_LOG_LEVEL":            &cfg.LogLevel,
		"NOTEPAD_LOG_FILE":             &cfg.LogFile,
		"NOTEPAD_THEME":                &cfg.Theme,
		"NOTEPAD_S3_ENDPOINT":          &cfg.S3.Endpoint,
		"NOTEPAD_S3_REGION":            &cfg.S3.Region,
		"NOTEPAD_S3_BUCKET":            &cfg.S3.Bucket,
		"NOTEPAD_S3_PREFIX":            &cfg.S3.Prefix,
		"NOTEPAD_S3_ACCESS_KEY_ID":     &cfg.S3.AccessKeyID,
		"NOTEPAD_S3_SECRET_ACCESS_KEY": &cfg.S3.SecretAccessKey,
	}
	for name, dst := range str {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			*dst = v
		}
	}

	flags := map[string]*bool{
		"NOTEPAD_NO_COLOR":          &cfg.NoColor,
		"NOTEPAD_S3_USE_PATH_STYLE": &cfg.S3.UsePathStyle,
	}
	for name, dst := range flags {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

// Validate checks the configuration and reports all issues at once.
func (c Config) Validate() error {
	var problems []string

	switch c.Backend {
	case BackendFile, BackendSQLite:
		if c.DataDir == "" {
			problems = append(problems, "data_dir is required for the "+c.Backend+" backend")
		}
	case BackendS3:
		if c.S3.Bucket == "" {
			problems = append(problems, "s3.bucket is required for the s3 backend")
		}
		if c.S3.Region == "" {
			problems = append(problems, "s3.region is required for the s3 backend")
		}
		if (c.S3.AccessKeyID == "") != (c.S3.SecretAccessKey == "") {
			problems = append(problems, "s3.access_key_id and s3.secret_access_key must be set together")
		}
	case BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("unknown backend %q (want file, sqlite, s3 or memory)", c.Backend))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log_level %q", c.LogLevel))
	}

	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		problems = append(problems, fmt.Sprintf("unknown theme %q", c.Theme))
	}

	if len(problems) > 0 {
		return &ValidationError{Errors: problems}
	}
	return nil
}
