package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host            string   `yaml:"host"`
		Port            int      `yaml:"port"`
		Env             string   `yaml:"env"`
		AllowedOrigins  []string `yaml:"allowed_origins"`
		ShutdownTimeout int      `yaml:"shutdown_timeout"` // seconds
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver"` // postgres, mysql
		DSN             string `yaml:"url"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // minutes
	} `yaml:"database"`

	JWT struct {
		Secret       string `yaml:"secret"`
		TTL          int    `yaml:"ttl"` // minutes
		CookieName   string `yaml:"cookie_name"`
		CookieDomain string `yaml:"cookie_domain"`
		CookieSecure bool   `yaml:"cookie_secure"`
		SameSite     string `yaml:"same_site"` // lax, strict, none
	} `yaml:"jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`        // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"`   // local only
		BaseURL    string `yaml:"base_url"`    // public URL base
		Bucket     string `yaml:"bucket"`      // s3/r2
		Region     string `yaml:"region"`      // s3
		AccessKey  string `yaml:"access_key"`  // s3/r2
		SecretKey  string `yaml:"secret_key"`  // s3/r2
		Endpoint   string `yaml:"endpoint"`    // r2 or custom s3
		PublicRead bool   `yaml:"public_read"` // s3/r2 object ACL
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"` // bytes
		AllowedTypes []string `yaml:"allowed_types"`
	} `yaml:"upload"`

	AI struct {
		APIKey         string `yaml:"api_key"`
		Model          string `yaml:"model"`
		MaxResumeChars int    `yaml:"max_resume_chars"`
		CacheTTL       int    `yaml:"cache_ttl"` // minutes
		CacheSize      int    `yaml:"cache_size"`
		RatePerMinute  int    `yaml:"rate_per_minute"`
		PDFLicenseKey  string `yaml:"pdf_license_key"`
	} `yaml:"ai"`

	Sentry struct {
		DSN         string  `yaml:"dsn"`
		Environment string  `yaml:"environment"`
		SampleRate  float64 `yaml:"sample_rate"`
	} `yaml:"sentry"`
}

var AppConfig *Config

// LoadConfig reads .env (if present), then the YAML file at path (or
// CONFIG_PATH, or config/config.yaml), then applies environment overrides and
// defaults. A missing file is fine when DATABASE_URL is set.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.yaml"
	}

	var cfg Config
	if err := loadFile(path, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) || os.Getenv("DATABASE_URL") == "" {
			return nil, err
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = &cfg
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Server.Env, "APP_ENV")
	setString(&cfg.Database.DSN, "DATABASE_URL")
	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.AI.APIKey, "GEMINI_API_KEY")
	setString(&cfg.Sentry.DSN, "SENTRY_DSN")
	setString(&cfg.Storage.Type, "STORAGE_TYPE")

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = strings.Split(v, ",")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 30
	}

	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 15
	}
	if cfg.JWT.CookieName == "" {
		cfg.JWT.CookieName = "token"
	}
	if cfg.JWT.SameSite == "" {
		cfg.JWT.SameSite = "lax"
	}

	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.Type == "local" {
		if cfg.Storage.BasePath == "" {
			cfg.Storage.BasePath = "./uploads"
		}
		if cfg.Storage.BaseURL == "" {
			cfg.Storage.BaseURL = "/uploads"
		}
	}

	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		}
	}

	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.0-flash"
	}
	if cfg.AI.MaxResumeChars == 0 {
		cfg.AI.MaxResumeChars = 8000
	}
	if cfg.AI.CacheTTL == 0 {
		cfg.AI.CacheTTL = 60
	}
	if cfg.AI.CacheSize == 0 {
		cfg.AI.CacheSize = 256
	}
	if cfg.AI.RatePerMinute == 0 {
		cfg.AI.RatePerMinute = 10
	}

	if cfg.Sentry.Environment == "" {
		cfg.Sentry.Environment = cfg.Server.Env
	}
	if cfg.Sentry.SampleRate == 0 {
		cfg.Sentry.SampleRate = 1.0
	}
}

// Validate checks settings that have no sane default.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database url is required")
	}
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		if !c.IsDevelopment() {
			return errors.New("jwt secret is required outside development")
		}
		c.JWT.Secret = "dev-secret-change-me"
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TTL) * time.Minute
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func GetConfig() *Config {
	return AppConfig
}
