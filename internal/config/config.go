package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the YAML file and .env.
const (
	EnvConfig   = "ATAJADOS_CONFIG"
	EnvDB       = "ATAJADOS_DB"
	EnvPhotos   = "ATAJADOS_PHOTOS"
	EnvLogLevel = "ATAJADOS_LOG_LEVEL"
)

// Config holds the application configuration
type Config struct {
	DBPath      string `yaml:"db_path"`
	PhotoDir    string `yaml:"photo_dir"`
	LogLevel    string `yaml:"log_level"`
	HoursPerDay int    `yaml:"hours_per_day"`
	GanttWidth  int    `yaml:"gantt_width,omitempty"` // 0 means terminal width
}

// Lookup resolves an environment variable, like os.LookupEnv.
type Lookup func(key string) (string, bool)

func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".atajados"
	}
	return filepath.Join(home, ".atajados")
}

func Default() *Config {
	base := baseDir()
	return &Config{
		DBPath:      filepath.Join(base, "atajados.db"),
		PhotoDir:    filepath.Join(base, "photos"),
		LogLevel:    "info",
		HoursPerDay: 8,
	}
}

// DefaultPath is $ATAJADOS_CONFIG or ~/.atajados/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(baseDir(), "config.yaml")
}

// Load reads the YAML file at path (a missing file is fine), then applies
// variables from ./.env and the process environment; real environment
// variables win over .env entries.
func Load(path string) (*Config, error) {
	return LoadWith(path, EnvLookup(".env"))
}

// LoadWith is Load with an explicit variable source.
func LoadWith(path string, lookup Lookup) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	cfg.DBPath = expandHome(cfg.DBPath)
	cfg.PhotoDir = expandHome(cfg.PhotoDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EnvLookup layers the process environment over a dotenv file. A missing
// or unreadable file contributes nothing.
func EnvLookup(dotenvPath string) Lookup {
	fileVars, err := godotenv.Read(dotenvPath)
	if err != nil {
		fileVars = nil
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
}

func (c *Config) applyEnv(lookup Lookup) error {
	if lookup == nil {
		return nil
	}
	if v, ok := lookup(EnvDB); ok && v != "" {
		c.DBPath = v
	}
	if v, ok := lookup(EnvPhotos); ok && v != "" {
		c.PhotoDir = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("ATAJADOS_HOURS_PER_DAY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ATAJADOS_HOURS_PER_DAY: %q is not an integer", v)
		}
		c.HoursPerDay = n
	}
	return nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db_path must not be empty"))
	}
	if strings.TrimSpace(c.PhotoDir) == "" {
		errs = append(errs, errors.New("photo_dir must not be empty"))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil || c.LogLevel == "" {
		errs = append(errs, fmt.Errorf("invalid log_level %q: must be one of trace, debug, info, warn, error", c.LogLevel))
	}
	if c.HoursPerDay < 1 || c.HoursPerDay > 24 {
		errs = append(errs, fmt.Errorf("invalid hours_per_day %d: must be between 1 and 24", c.HoursPerDay))
	}
	if c.GanttWidth != 0 && c.GanttWidth < 20 {
		errs = append(errs, fmt.Errorf("invalid gantt_width %d: must be 0 (auto) or at least 20", c.GanttWidth))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Save writes the config to file
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
