package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/hoops-almanac/internal/domain/identity"
	"github.com/riskibarqy/hoops-almanac/internal/domain/program"
	"github.com/riskibarqy/hoops-almanac/internal/platform/logging"
)

// Config stores runtime configuration for the almanac build.
type Config struct {
	AppEnv           string        `validate:"oneof=dev stage prod"`
	LogLevel         logging.Level `validate:"-"`
	Root             string        `validate:"required"`
	GWBBDataDir      string        `validate:"required"`
	LWBBDataDir      string        `validate:"required"`
	PersonIndexPath  string        `validate:"required"`
	PersonMergesPath string        `validate:"required"`
	DerivedDir       string        `validate:"required"`
	LeaderboardSize  int           `validate:"min=1,max=100"`
	ScanRoot         string        `validate:"required"`
	ScanExtensions   []string      `validate:"min=1,dive,startswith=."`
	InitialNextPID   int           `validate:"min=1"`
	MetricsTextfile  string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the environment, seeding it from a .env file in the working directory when one
// exists. Relative paths are resolved against ALMANAC_ROOT.
func Load() (Config, error) {
	_ = godotenv.Load()

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	leaderboardSize, err := getEnvAsInt("LEADERBOARD_SIZE", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse LEADERBOARD_SIZE: %w", err)
	}
	initialNextPID, err := getEnvAsInt("INITIAL_NEXT_PID", identity.DefaultNextPID)
	if err != nil {
		return Config{}, fmt.Errorf("parse INITIAL_NEXT_PID: %w", err)
	}

	cfg := Config{
		AppEnv:           appEnv,
		LogLevel:         parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		Root:             getEnv("ALMANAC_ROOT", "."),
		GWBBDataDir:      getEnv("GWBB_DATA_DIR", filepath.Join("src", "gwbb", "data")),
		LWBBDataDir:      getEnv("LWBB_DATA_DIR", filepath.Join("src", "lwbb", "data")),
		PersonIndexPath:  getEnv("PERSON_INDEX_PATH", filepath.Join("src", "_data", "personIndex.json")),
		PersonMergesPath: getEnv("PERSON_MERGES_PATH", filepath.Join("tools", "personMerges.json")),
		DerivedDir:       getEnv("DERIVED_DIR", filepath.Join("src", "_derived")),
		LeaderboardSize:  leaderboardSize,
		ScanRoot:         getEnv("SCAN_ROOT", "src"),
		ScanExtensions:   normalizeExtensions(splitCSV(getEnv("SCAN_EXTENSIONS", ".json,.njk,.js"))),
		InitialNextPID:   initialNextPID,
		MetricsTextfile:  strings.TrimSpace(os.Getenv("METRICS_TEXTFILE")),
	}
	cfg.WithRoot(cfg.Root)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithRoot re-anchors every relative path on root. Absolute paths are left alone.
func (c *Config) WithRoot(root string) {
	old := c.Root
	c.Root = root
	rebase := func(p string) string {
		if p == "" {
			return p
		}
		if old != "" && old != root {
			rel, err := filepath.Rel(old, p)
			if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				return filepath.Join(root, rel)
			}
		}
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, p)
	}
	c.GWBBDataDir = rebase(c.GWBBDataDir)
	c.LWBBDataDir = rebase(c.LWBBDataDir)
	c.PersonIndexPath = rebase(c.PersonIndexPath)
	c.PersonMergesPath = rebase(c.PersonMergesPath)
	c.DerivedDir = rebase(c.DerivedDir)
	c.ScanRoot = rebase(c.ScanRoot)
	if c.MetricsTextfile != "" {
		c.MetricsTextfile = rebase(c.MetricsTextfile)
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Programs returns both supported programs wired to their configured data directories.
func (c Config) Programs() []program.Program {
	return program.Defaults(c.GWBBDataDir, c.LWBBDataDir)
}

// LogFormat picks console output for local development and JSON elsewhere.
func (c Config) LogFormat() logging.Format {
	if c.AppEnv == EnvDev {
		return logging.FormatConsole
	}
	return logging.FormatJSON
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
