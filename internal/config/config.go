package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Auth struct {
		// Secret signs and verifies session tokens. Loaded once at startup
		// and handed to the token codec; nothing else reads it.
		Secret string
	}
}

// Load reads config from environment (LINKFEED_ prefix) and optional linkfeed.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LINKFEED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("linkfeed")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.Auth.Secret = v.GetString("auth.secret")

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("LINKFEED_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("LINKFEED_DB_DSN is required")
	}
	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("LINKFEED_AUTH_SECRET is required")
	}

	return cfg, nil
}
