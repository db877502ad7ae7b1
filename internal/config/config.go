package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Service  Service
	Postgres Postgres
	Pebble   Pebble
	Storage  Storage
	Discord  Discord
	Kafka    Kafka
	Logger   Logger
	Metrics  Metrics
	Platform Platform
	Auth     Auth
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"thought-service"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User     string `env:"THOUGHT_SERVICE_POSTGRES_USER"`
	Password string `env:"THOUGHT_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"THOUGHT_SERVICE_POSTGRES_DB"`
	Host     string `env:"THOUGHT_SERVICE_POSTGRES_HOST"`
	Port     string `env:"THOUGHT_SERVICE_POSTGRES_PORT"`
}

type Pebble struct {
	Path string `env:"THOUGHT_SERVICE_PEBBLE_PATH" env-default:"data/mirror"`
}

// Storage selects the record store backend. Both backends expose the same
// contract; nothing outside main branches on this value.
type Storage struct {
	Backend string `env:"THOUGHT_SERVICE_STORAGE_BACKEND" env-default:"postgres"`
}

type Discord struct {
	Token             string        `env:"DISCORD_TOKEN"`
	APIBaseURL        string        `env:"DISCORD_API_BASE_URL" env-default:"https://discord.com/api/v10"`
	GuildID           string        `env:"DISCORD_GUILD_ID"`
	BotUserID         string        `env:"DISCORD_BOT_USER_ID"`
	PublicChannelID   string        `env:"DISCORD_PUBLIC_CHANNEL_ID"`
	PublicChannelURL  string        `env:"DISCORD_PUBLIC_CHANNEL_URL"`
	PrivateChannelID  string        `env:"DISCORD_PRIVATE_CHANNEL_ID"`
	PrivateChannelURL string        `env:"DISCORD_PRIVATE_CHANNEL_URL"`
	AdminChannelID    string        `env:"DISCORD_ADMIN_CHANNEL_ID"`
	Timeout           time.Duration `env:"DISCORD_HTTP_TIMEOUT" env-default:"15s"`
}

type Kafka struct {
	Host        string `env:"KAFKA_HOST"`
	Port        string `env:"KAFKA_PORT"`
	MirrorTopic string `env:"KAFKA_MIRROR_TOPIC" env-default:"thought_mirror"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Auth struct {
	JWTSecret string `env:"THOUGHT_SERVICE_JWT_SECRET"`
}

func MustLoad() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}

	return cfg
}
