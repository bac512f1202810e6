package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=3000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Seed  SeedConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// SeedConfig selects where the initial catalog comes from.
type SeedConfig struct {
	// Source is "file" or "mongo".
	Source string `env:"SEED_SOURCE, default=file"`
	File   string `env:"SEED_FILE,   default=books.json"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=bookstore"`
}

type RedisConfig struct {
	// Addr left empty disables the login throttle entirely.
	Addr             string `env:"REDIS_ADDR"`
	DB               int    `env:"REDIS_DB,           default=0"`
	LoginMaxAttempts int    `env:"LOGIN_MAX_ATTEMPTS, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
