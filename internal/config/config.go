package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// database
	DBDriver       string `toml:"db_driver"`
	DBHost         string `toml:"db_host"`
	DBPort         string `toml:"db_port"`
	DBUser         string `toml:"db_user"`
	DBName         string `toml:"db_name"`
	DBMaxOpenConns int    `toml:"db_max_open_conns"`
	DBPassword     string `toml:"-"`
	// redis
	RedisHost     string `toml:"redis_host"`
	RedisPort     string `toml:"redis_port"`
	RedisPassword string `toml:"-"`
	// reports
	ReportCache    string   `toml:"report_cache"`
	ReportCacheTTL Duration `toml:"report_cache_ttl"`
	// http
	WriteRateLimitPerMin int      `toml:"write_rate_limit_per_min"`
	AllowedOrigins       []string `toml:"allowed_origins"`
	ExposeDBErrors       bool     `toml:"expose_db_errors"`
	MCPEnabled           bool     `toml:"mcp_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

// Duration reads TOML strings like "5m" or "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Toml struct {
	Development *Config
	Production  *Config
	Dockerdev   *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.Dockerdev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the env section of the TOML file at path, fills defaults
// and takes secrets from GYM_DB_PASSWORD and GYM_REDIS_PASS.
func Load(env string, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.DBPassword = os.Getenv("GYM_DB_PASSWORD")
	cfg.RedisPassword = os.Getenv("GYM_REDIS_PASS")
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid [%s] config: %w", env, err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Port == 0 {
		c.Port = 4000
	}
	if c.DBDriver == "" {
		c.DBDriver = "mysql"
	}
	if c.DBMaxOpenConns == 0 {
		c.DBMaxOpenConns = 10
	}
	if c.ReportCache == "" {
		c.ReportCache = "none"
	}
	if c.ReportCacheTTL.Duration == 0 {
		c.ReportCacheTTL.Duration = 5 * time.Minute
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.DBHost == "" {
		errs = append(errs, errors.New("db_host not set"))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("db_name not set"))
	}
	switch c.ReportCache {
	case "redis":
		if c.RedisHost == "" {
			errs = append(errs, errors.New("report_cache is redis but redis_host not set"))
		}
	case "memory", "none":
	default:
		errs = append(errs, fmt.Errorf("unknown report_cache: %s", c.ReportCache))
	}
	if c.WriteRateLimitPerMin < 0 {
		errs = append(errs, errors.New("write_rate_limit_per_min must not be negative"))
	}
	return errors.Join(errs...)
}
