package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port      int    `yaml:"port"`
	GinMode   string `yaml:"gin_mode"`
	ClientURL string `yaml:"client_url"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
}

type SecretsConfig struct {
	CodeLength      int    `yaml:"code_length"`
	VerificationTTL string `yaml:"verification_ttl"`
	ResetTTL        string `yaml:"reset_ttl"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Secrets  SecretsConfig  `yaml:"secrets"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

// Config is the resolved process-wide configuration. The JWT secret is
// read once here and passed explicitly into the token service.
type Config struct {
	Port            string
	GinMode         string
	ClientURL       string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	SessionTTL      time.Duration
	CodeLength      int
	VerificationTTL time.Duration
	ResetTTL        time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the YAML config file and applies environment overrides for
// the values that differ per deployment.
func Load(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(file.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	verificationTTL, err := time.ParseDuration(file.Secrets.VerificationTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid verification TTL: %w", err)
	}

	resetTTL, err := time.ParseDuration(file.Secrets.ResetTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid reset TTL: %w", err)
	}

	cfg := &Config{
		Port:            env("PORT", strconv.Itoa(file.App.Port)),
		GinMode:         env("GIN_MODE", file.App.GinMode),
		ClientURL:       env("CLIENT_URL", file.App.ClientURL),
		DSN:             env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:         file.Redis.DB,
		JWTSecret:       env("JWT_SECRET", file.JWT.Secret),
		JWTIssuer:       file.JWT.Issuer,
		SessionTTL:      sessionTTL,
		CodeLength:      file.Secrets.CodeLength,
		VerificationTTL: verificationTTL,
		ResetTTL:        resetTTL,
		SMTPHost:        env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:        file.SMTP.Port,
		SMTPUsername:    env("SMTP_USERNAME", file.SMTP.Username),
		SMTPPassword:    env("SMTP_PASSWORD", file.SMTP.Password),
		SMTPFrom:        env("SMTP_FROM", file.SMTP.From),
	}

	if p := os.Getenv("SMTP_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = port
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if cfg.CodeLength <= 0 {
		cfg.CodeLength = 6
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
