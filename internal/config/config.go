package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string `split_words:"true"`
	Port               string `split_words:"true" default:"5432"`
	User               string `split_words:"true"`
	Password           string `split_words:"true"`
	Name               string `split_words:"true"`
	SSLMode            string `envconfig:"SSLMODE" default:"disable"`
	MaxOpenConns       int    `split_words:"true" default:"10"`
	MaxIdleConns       int    `split_words:"true" default:"5"`
	ConnMaxLifetimeSec int    `split_words:"true" default:"300"`
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string `split_words:"true"`
	AccessKey string `split_words:"true"`
	SecretKey string `split_words:"true"`
	Bucket    string `split_words:"true" default:"actas"`
	UseSSL    bool   `split_words:"true" default:"false"`
}

// ArchiveConfig controls whether rendered actas are kept in object storage and the database.
type ArchiveConfig struct {
	Enabled       bool          `split_words:"true" default:"false"`
	PresignExpiry time.Duration `split_words:"true" default:"15m"`
}

// MailConfig is the SMTP transport used to email actas.
type MailConfig struct {
	FromAddress string        `split_words:"true"`
	AppPassword string        `split_words:"true"`
	Recipients  []string      `split_words:"true"`
	SMTPHost    string        `split_words:"true" default:"smtp.gmail.com"`
	SMTPPort    int           `split_words:"true" default:"587"`
	Timeout     time.Duration `split_words:"true" default:"30s"`
	Subject     string        `split_words:"true" default:"Acta de Reunión Generada"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string         `split_words:"true" default:"localhost:8080"`
	Port     string         `split_words:"true" default:"8080"`
	LogLevel string         `split_words:"true" default:"info"`
	Archive  ArchiveConfig  `envconfig:"ARCHIVE"`
	Database DatabaseConfig `envconfig:"DB"`
	MinIO    MinIOConfig    `envconfig:"MINIO"`
	Mail     MailConfig     `envconfig:"MAIL"`
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
