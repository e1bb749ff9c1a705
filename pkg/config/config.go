package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

const EnvProduction = "production"

type Config struct {
	HTTPPort           int           `env:"HTTP_PORT" envDefault:"8080"`
	Env                string        `env:"APP_ENV" envDefault:"development"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"debug"`
	PostgresDSN        string        `env:"POSTGRES_DSN"`
	PostgresMaxConns   int32         `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	JWTSecret          string        `env:"JWT_SECRET"`
	AccessTokenTTL     time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"12h"`
	ActivityQueueSize  int           `env:"ACTIVITY_QUEUE_SIZE" envDefault:"1024"`
	JobOverdueInterval time.Duration `env:"JOB_OVERDUE_INTERVAL" envDefault:"24h"`
	S3                 S3
	Kafka              Kafka
	Mailer             Mailer
	Weather            Weather
	Redis              Redis
}

type S3 struct {
	Bucket       string        `env:"S3_BUCKET"`
	Region       string        `env:"S3_REGION" envDefault:"us-east-1"`
	BaseEndpoint string        `env:"S3_BASE_ENDPOINT"`
	AccessKey    string        `env:"S3_ACCESS_KEY"`
	SecretKey    string        `env:"S3_SECRET_KEY"`
	PresignTTL   time.Duration `env:"S3_PRESIGN_TTL" envDefault:"15m"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	ConsumerID         string   `env:"KAFKA_CONSUMER_ID" envDefault:"mro"`
	NotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"mro.notifications"`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"465"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"MRO"`
}

type Weather struct {
	BaseURL       string        `env:"WEATHER_BASE_URL" envDefault:"https://api.open-meteo.com"`
	Timeout       time.Duration `env:"WEATHER_TIMEOUT" envDefault:"5s"`
	RetryAttempts int           `env:"WEATHER_RETRY_ATTEMPTS" envDefault:"2"`
	CacheTTL      time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"5m"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}
