package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for the admission gate knobs.
const (
	DefaultPort               = 3318
	DefaultPowBits            = 18
	DefaultReplayWindow       = 120 * time.Second
	DefaultIPMax10Min         = 5
	DefaultIPMaxDay           = 100
	DefaultSessionMinInterval = 60 * time.Second
	DefaultSessionMaxDay      = 10
	DefaultTimezone           = "America/Toronto"
)

type Config struct {
	Port        int
	StoreType   string // sqlite, postgres, or bolt
	DatabaseURL string

	SessionSecret  string
	IdentitySecret string

	PowBits            int
	ReplayWindow       time.Duration
	IPMax10Min         int
	IPMaxDay           int
	SessionMinInterval time.Duration
	SessionMaxDay      int

	Timezone string
	Location *time.Location

	IdentityRequired bool
	TrustProxy       bool
	DemoMode         bool
	CookieSecure     bool

	TurnstileSecret string
	CandidatesFile  string
}

// ParseFlags validates flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pollgate", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (sqlite, postgres, or bolt)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie signing secret (prefer env)")
	fs.StringVar(&cfg.IdentitySecret, "identity-secret", "", "Voter identity hashing secret (prefer env)")

	// Gate tuning
	fs.IntVar(&cfg.PowBits, "pow-bits", 0, "Proof-of-work difficulty in bits")
	fs.StringVar(&cfg.Timezone, "tz", "", "Timezone for calendar-day quotas")
	fs.BoolVar(&cfg.IdentityRequired, "identity-required", false, "Require a verified identity token on every vote")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Trust X-Forwarded-For (only behind a known proxy)")
	fs.BoolVar(&cfg.DemoMode, "demo", false, "Relax rate caps for demos and load testing")

	fs.StringVar(&cfg.CandidatesFile, "candidates", "", "JSON candidate list (default: built-in)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", DefaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = "sqlite"
		}
	}
	switch cfg.StoreType {
	case "sqlite", "postgres", "bolt":
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.StoreType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "pollgate.db"
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.IdentitySecret == "" {
		cfg.IdentitySecret = os.Getenv("IDENTITY_SECRET")
	}
	if cfg.IdentitySecret == "" {
		return Config{}, errors.New("IDENTITY_SECRET required")
	}

	// Gate tuning from env, with documented defaults
	var err error
	if cfg.PowBits == 0 {
		if cfg.PowBits, err = envInt("POW_BITS", DefaultPowBits); err != nil {
			return Config{}, err
		}
	}
	if cfg.PowBits < 0 || cfg.PowBits > 32 {
		return Config{}, fmt.Errorf("POW_BITS %d out of range [0, 32]", cfg.PowBits)
	}

	if cfg.ReplayWindow, err = envDurationMS("REPLAY_WINDOW_MS", DefaultReplayWindow); err != nil {
		return Config{}, err
	}
	if cfg.IPMax10Min, err = envInt("IP_MAX_10MIN", DefaultIPMax10Min); err != nil {
		return Config{}, err
	}
	if cfg.IPMaxDay, err = envInt("IP_MAX_DAY", DefaultIPMaxDay); err != nil {
		return Config{}, err
	}
	if cfg.SessionMinInterval, err = envDurationMS("SESSION_MIN_INTERVAL_MS", DefaultSessionMinInterval); err != nil {
		return Config{}, err
	}
	if cfg.SessionMaxDay, err = envInt("SESSION_MAX_DAY", DefaultSessionMaxDay); err != nil {
		return Config{}, err
	}

	if cfg.Timezone == "" {
		cfg.Timezone = os.Getenv("TIMEZONE")
		if cfg.Timezone == "" {
			cfg.Timezone = DefaultTimezone
		}
	}
	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return Config{}, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	if !cfg.IdentityRequired {
		cfg.IdentityRequired = envBool("IDENTITY_REQUIRED")
	}
	if !cfg.TrustProxy {
		cfg.TrustProxy = envBool("TRUST_PROXY")
	}
	if !cfg.DemoMode {
		cfg.DemoMode = envBool("DEMO_MODE")
	}
	cfg.CookieSecure = envBool("COOKIE_SECURE")

	cfg.TurnstileSecret = os.Getenv("TURNSTILE_SECRET")

	if cfg.CandidatesFile == "" {
		cfg.CandidatesFile = os.Getenv("CANDIDATES_FILE")
	}

	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func envDurationMS(key string, def time.Duration) (time.Duration, error) {
	ms, err := envInt(key, int(def.Milliseconds()))
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func envBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes":
		return true
	}
	return false
}
