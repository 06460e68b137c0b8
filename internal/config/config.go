package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "config.yaml"

// app config: AI provider, storage backend, HTTP server and jobs
type Config struct {
	Provider string        `yaml:"provider"`
	Gemini   GeminiConfig  `yaml:"gemini"`
	Storage  StorageConfig `yaml:"storage"`
	Server   ServerConfig  `yaml:"server"`
	Auth     AuthConfig    `yaml:"auth"`
	Backup   BackupConfig  `yaml:"backup"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver"` // sqlite | postgres | redis | memory
	DSN         string `yaml:"dsn"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
}

type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"`
	LoginDelay time.Duration `yaml:"login_delay"`
}

type BackupConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule"`
	Dir      string `yaml:"dir"`
}

func defaultConfig() *Config {
	return &Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Storage: StorageConfig{
			Driver:      "sqlite",
			DSN:         "interviewmate.db",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "interviewmate:",
		},
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Auth: AuthConfig{
			JWTSecret:  "dev",
			LoginDelay: 800 * time.Millisecond,
		},
		Backup: BackupConfig{
			Schedule: "0 2 * * *",
			Dir:      "./backups",
		},
	}
}

// LoadConfig reads the YAML file at path (a missing file is not an error)
// and applies environment overrides. An API key from the file wins over
// GEMINI_API_KEY.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		path = getEnvOrDefault("INTERVIEWMATE_CONFIG", DefaultConfigPath)
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	applyEnvOverrides(config)

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func applyEnvOverrides(config *Config) {
	config.Provider = getEnvOrDefault("AI_PROVIDER", config.Provider)
	if config.Gemini.APIKey == "" {
		config.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	config.Gemini.Model = getEnvOrDefault("GEMINI_MODEL", config.Gemini.Model)

	config.Storage.Driver = getEnvOrDefault("STORAGE_DRIVER", config.Storage.Driver)
	config.Storage.DSN = getEnvOrDefault("DATABASE_DSN", config.Storage.DSN)
	config.Storage.RedisAddr = getEnvOrDefault("REDIS_ADDR", config.Storage.RedisAddr)

	config.Server.Port = getEnvOrDefault("PORT", config.Server.Port)
	config.Auth.JWTSecret = getEnvOrDefault("JWT_SECRET", config.Auth.JWTSecret)
	if v := os.Getenv("LOGIN_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.Auth.LoginDelay = d
		}
	}

	if v := os.Getenv("BACKUP_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Backup.Enabled = b
		}
	}
	config.Backup.Schedule = getEnvOrDefault("BACKUP_SCHEDULE", config.Backup.Schedule)
	config.Backup.Dir = getEnvOrDefault("BACKUP_DIR", config.Backup.Dir)
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	switch config.Storage.Driver {
	case "sqlite", "postgres", "redis", "memory":
	default:
		return errors.New("unsupported storage driver: " + config.Storage.Driver)
	}
	if config.Storage.Driver == "postgres" && config.Storage.DSN == "" {
		return errors.New("storage.dsn is required for the postgres driver")
	}
	if config.Auth.LoginDelay < 0 {
		return errors.New("auth.login_delay must not be negative")
	}
	// an empty API key is allowed: replies then carry the configuration hint
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
