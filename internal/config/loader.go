// Package config loads server configuration from config.yaml with
// environment variable overrides.
package config

import (
	"log/slog"

	"github.com/grclabs/asset-api/internal/db"

	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup.
type Config struct {
	ServerAddr string
	LogLevel   string
	LogFormat  string
	CORSOrigin string
	Database   db.Config
}

// Default returns the configuration used when no file or env vars are set.
func Default() Config {
	return Config{
		ServerAddr: ":8080",
		LogLevel:   "info",
		LogFormat:  "text",
		CORSOrigin: "http://localhost:5173",
		Database:   db.DefaultConfig(),
	}
}

// Load reads config.yaml from configPath, falling back to defaults, with
// env overrides such as ASSETAPI_SERVER_ADDR and ASSETAPI_DATABASE_HOST.
func Load(configPath string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("ASSETAPI")

	v.BindEnv("server.addr")
	v.BindEnv("log.level")
	v.BindEnv("log.format")
	v.BindEnv("cors.origin")
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")

	if err := v.ReadInConfig(); err != nil {
		slog.Info("no config.yaml found, using defaults and env vars")
	} else {
		slog.Info("loaded config.yaml", "path", v.ConfigFileUsed())
	}

	if v.IsSet("server.addr") {
		cfg.ServerAddr = v.GetString("server.addr")
	}
	if v.IsSet("log.level") {
		cfg.LogLevel = v.GetString("log.level")
	}
	if v.IsSet("log.format") {
		cfg.LogFormat = v.GetString("log.format")
	}
	if v.IsSet("cors.origin") {
		cfg.CORSOrigin = v.GetString("cors.origin")
	}
	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}

	return cfg, nil
}
