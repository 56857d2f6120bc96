package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Scoring  Scoring
	Cache    Cache
	Reaper   Reaper
	LogLevel string
}

type Server struct {
	Port        string
	CORSOrigins []string
}

type Database struct {
	Driver   string // postgres | sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // sqlite file, ":memory:" allowed
}

type Auth struct {
	JWTSecret string `json:"-"`
	Issuer    string
}

type Scoring struct {
	// MultipleChoiceMode is "exact_set" or "single".
	MultipleChoiceMode string
}

type Cache struct {
	EventsTTL time.Duration
}

type Reaper struct {
	Enabled  bool
	Schedule string
	Grace    time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_PATH", "portal.db")
	viper.SetDefault("JWT_ISSUER", "paneldoirp")
	viper.SetDefault("SCORING_MULTIPLE_CHOICE_MODE", "exact_set")
	viper.SetDefault("CACHE_EVENTS_TTL", "5m")
	viper.SetDefault("REAPER_ENABLED", true)
	viper.SetDefault("REAPER_SCHEDULE", "@every 1m")
	viper.SetDefault("REAPER_GRACE", "5m")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.CORSOrigins = viper.GetStringSlice("CORS_ORIGINS")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.Issuer = viper.GetString("JWT_ISSUER")

	config.Scoring.MultipleChoiceMode = viper.GetString("SCORING_MULTIPLE_CHOICE_MODE")
	config.Cache.EventsTTL = viper.GetDuration("CACHE_EVENTS_TTL")

	config.Reaper.Enabled = viper.GetBool("REAPER_ENABLED")
	config.Reaper.Schedule = viper.GetString("REAPER_SCHEDULE")
	config.Reaper.Grace = viper.GetDuration("REAPER_GRACE")

	config.LogLevel = viper.GetString("LOG_LEVEL")

	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Every authenticated request will be rejected.")
	}

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
