package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN, required"`
	// GuildID scopes slash-command registration to a single guild for fast
	// iteration. Leave empty to register commands globally.
	GuildID   string `env:"GUILD_ID"`
	OpsAddr   string `env:"OPS_ADDR,   default=:9090"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	// StoreSeed points at a JSON catalog file used to populate the store
	// when the stores collection is empty.
	StoreSeed string `env:"STORE_SEED, default=store.json"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=raybot"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
