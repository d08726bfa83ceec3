package main

import (
	"os"

	"github.com/cristalhq/aconfig"
)

// Config holds the application configuration, loadable from environment
// variables (CUSTOMERS_ prefix) or flags.
type Config struct {
	Addr         string `default:":3000" usage:"HTTP listen address"`
	DatabasePath string `default:"database.db" usage:"SQLite database file path" flag:"database-path"`
	CORSOrigins  string `default:"*" usage:"Allowed CORS origins" flag:"cors-origins"`
}

func loadConfig() (*Config, error) {
	return loadConfigFrom(os.Args[1:])
}

func loadConfigFrom(args []string) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CUSTOMERS",
		Args:      args,
	})
	if err := loader.Load(); err != nil {
		return nil, err
	}

	// Platform-provided PORT (Railway, Render, etc.) wins over the default.
	if port := os.Getenv("PORT"); port != "" && cfg.Addr == ":3000" {
		cfg.Addr = ":" + port
	}
	return &cfg, nil
}
