package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App    AppConfig
	Mongo  MongoConfig
	CORS   CORSConfig
	Import ImportConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INVENTORY_APP_ENV" default:"dev"`
	Port         string `envconfig:"INVENTORY_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"INVENTORY_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"INVENTORY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type MongoConfig struct {
	// URI is required at startup; the process fails fast without it.
	URI            string        `envconfig:"INVENTORY_MONGO_URI" required:"true"`
	Database       string        `envconfig:"INVENTORY_MONGO_DATABASE" default:"inventory"`
	ConnectTimeout time.Duration `envconfig:"INVENTORY_MONGO_CONNECT_TIMEOUT" default:"10s"`
	PingTimeout    time.Duration `envconfig:"INVENTORY_MONGO_PING_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"INVENTORY_CORS_ALLOWED_ORIGINS" default:"http://localhost:4200,https://inovaantary-frotend.onrender.com"`
}

type ImportConfig struct {
	MaxUploadMB int `envconfig:"INVENTORY_MAX_UPLOAD_MB" default:"10"`
}

// MaxUploadBytes returns the upload cap in bytes.
func (i ImportConfig) MaxUploadBytes() int64 {
	if i.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return int64(i.MaxUploadMB) << 20
}
