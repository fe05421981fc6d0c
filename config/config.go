package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every process-wide setting, resolved once at startup.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// Either DatabaseURL or the discrete DB_* settings must be provided.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`

	JWTSecret    string        `envconfig:"JWT_SECRET"`
	JWTExpiresIn time.Duration `envconfig:"JWT_EXPIRES_IN" default:"168h"`

	UploadsDir       string `envconfig:"UPLOADS_DIR" default:"./uploads"`
	UploadsBackupDir string `envconfig:"UPLOADS_BACKUP_DIR" default:"./backup/uploads"`
}

// Load reads .env (if present) and the process environment. Required values
// have no fallback: a missing JWT secret or database target is a hard error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
			return nil, errors.New("either DATABASE_URL or DB_HOST/DB_USER/DB_NAME is required")
		}
	}
	return &cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=disable"
}
