package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Site     SiteConfig
	Mail     MailConfig
	Storage  StorageConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// SiteConfig carries branding strings shown in page headers, emails
// and the staff console. Pure configuration, never persisted.
type SiteConfig struct {
	Name         string
	AdminEmail   string
	ConsoleTitle string
}

type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	SendTimeout time.Duration
}

// StorageConfig selects the media backend. Backend is "local" or "cloudinary".
type StorageConfig struct {
	Backend   string
	LocalDir  string
	BaseURL   string
	CloudName string
	APIKey    string
	APISecret string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         env("PORT", "8080"),
			Env:          env("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             env("DATABASE_DSN", "church:church@tcp(localhost:3306)/church?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		Site: SiteConfig{
			Name:         env("SITE_NAME", "Grace Community Church"),
			AdminEmail:   env("ADMIN_EMAIL", "office@gracecommunity.church"),
			ConsoleTitle: env("CONSOLE_TITLE", "Church Admin Dashboard"),
		},
		Mail: MailConfig{
			Host:        env("SMTP_HOST", ""),
			Port:        envInt("SMTP_PORT", 587),
			Username:    env("SMTP_USERNAME", ""),
			Password:    env("SMTP_PASSWORD", ""),
			From:        env("MAIL_FROM", "no-reply@gracecommunity.church"),
			SendTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Backend:   env("STORAGE_BACKEND", "local"),
			LocalDir:  env("STORAGE_LOCAL_DIR", "./media"),
			BaseURL:   env("STORAGE_BASE_URL", "/media"),
			CloudName: env("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    env("CLOUDINARY_API_KEY", ""),
			APISecret: env("CLOUDINARY_API_SECRET", ""),
		},
		JWT: JWTConfig{
			Secret: env("JWT_SECRET", "change-me-in-production"),
			Expiry: 12 * time.Hour,
			Issuer: "churchsite",
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
