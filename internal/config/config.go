package config

import (
	"fmt"
	"net"
	"regexp"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig  `envPrefix:"SERVER_"`
	Catalog CatalogConfig `envPrefix:"CATALOG_"`
	Console ConsoleConfig `envPrefix:"CONSOLE_"`
	Log     LogConfig     `envPrefix:"LOG_"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	// Regexp of browser origins allowed to call the JSON API. Empty disables CORS.
	CORSOrigins string `env:"CORS_ORIGINS"`
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c ServerConfig) CORSPattern() (*regexp.Regexp, error) {
	if c.CORSOrigins == "" {
		return nil, nil
	}
	return regexp.Compile(c.CORSOrigins)
}

type CatalogConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://api.escuelajs.co/api/v1/products"`
	// Zero disables the timeout; a hung request then blocks its action.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0s"`
}

type ConsoleConfig struct {
	ItemsPerPage      int    `env:"ITEMS_PER_PAGE" envDefault:"10"`
	PageSizes         []int  `env:"PAGE_SIZES" envDefault:"5,10,20,50" envSeparator:","`
	PlaceholderImage  string `env:"PLACEHOLDER_IMAGE" envDefault:"https://placehold.co/600x400"`
	ThumbnailFallback string `env:"THUMBNAIL_FALLBACK" envDefault:"https://via.placeholder.com/50"`
	DetailFallback    string `env:"DETAIL_FALLBACK" envDefault:"https://via.placeholder.com/200"`
}

type LogConfig struct {
	Level    string `env:"LEVEL" envDefault:"info"`
	Encoding string `env:"ENCODING" envDefault:"json"`
}

// Load reads the configuration from the environment, after merging a local
// .env file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL must not be empty")
	}
	if _, err := c.Server.CORSPattern(); err != nil {
		return fmt.Errorf("SERVER_CORS_ORIGINS: %w", err)
	}
	if c.Console.ItemsPerPage <= 0 {
		return fmt.Errorf("CONSOLE_ITEMS_PER_PAGE must be positive, got %d", c.Console.ItemsPerPage)
	}
	for _, size := range c.Console.PageSizes {
		if size <= 0 {
			return fmt.Errorf("CONSOLE_PAGE_SIZES must be positive, got %d", size)
		}
	}
	return nil
}
