package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"heating_advisor/internal/engine"
	"heating_advisor/internal/logger"
	"heating_advisor/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "HEATING"

	defaultDBPath         = "app.db"
	defaultReloadInterval = 30 * time.Second
	defaultTokenTTL       = time.Hour
)

// appConfig is everything main needs, resolved from configs/config.yml,
// an optional .env file and HEATING_* environment variables.
type appConfig struct {
	Port           string
	LogLevel       string
	DBPath         string
	CatalogPath    string
	ReloadInterval time.Duration
	Services       service.Config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", logger.InfoLevel)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.reload_interval", defaultReloadInterval)
	v.SetDefault("engine.min_required_kw", engine.DefaultMinRequiredKW)
	v.SetDefault("engine.premium_min_budget", engine.DefaultPremiumMinBudget)
	v.SetDefault("auth.token_ttl", defaultTokenTTL)
}

// loadConfig reads configuration. A missing config file is fine; a broken
// one is not.
func loadConfig(v *viper.Viper, configDir string) (appConfig, error) {
	_ = godotenv.Load()

	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.AddConfigPath(configDir) // configs/config.yml
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return appConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := appConfig{
		Port:           v.GetString("port"),
		LogLevel:       v.GetString("log.level"),
		DBPath:         v.GetString("db.path"),
		CatalogPath:    v.GetString("catalog.path"),
		ReloadInterval: v.GetDuration("catalog.reload_interval"),
		Services: service.Config{
			Engine: engine.Config{
				MinRequiredKW:    v.GetInt("engine.min_required_kw"),
				PremiumMinBudget: v.GetFloat64("engine.premium_min_budget"),
			},
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
	}
	if cfg.Services.SigningKey == "" {
		return appConfig{}, errors.New("auth.signing_key is required (set HEATING_AUTH_SIGNING_KEY)")
	}
	if cfg.ReloadInterval <= 0 {
		cfg.ReloadInterval = defaultReloadInterval
	}
	return cfg, nil
}
