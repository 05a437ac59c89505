package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Port        string
		CORSOrigins string `mapstructure:"cors_origins"`
	} `mapstructure:"http"`

	Database struct {
		DSN string
	} `mapstructure:"database"`

	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

const defaultDSN = "host=localhost user=postgres password=postgres dbname=inventory port=5432 sslmode=disable"

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.cors_origins", "http://localhost:5173")
	v.SetDefault("database.dsn", defaultDSN)
	v.SetDefault("metrics.enabled", true)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}

	if c.Auth.JWTSecret == "" {
		log.Fatal("[FATAL] auth.jwt_secret is not set, refusing to start")
	}
	if len(c.Auth.JWTSecret) < 32 {
		log.Fatal("[FATAL] auth.jwt_secret must be at least 32 characters")
	}
	if c.Database.DSN == defaultDSN {
		log.Println("[WARN] database.dsn is the default value, set your own Postgres DSN for production")
	}
	if c.HTTP.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] http.cors_origins is the default value, set your own domain for production")
	}

	return &c, nil
}
