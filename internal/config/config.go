package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/abgdnv/catalogue/pkg/config"
	"github.com/abgdnv/catalogue/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

const (
	defaultTitle       = "Main catalogue"
	defaultConcurrency = 4
)

type CatalogueConfig struct {
	Title    string `koanf:"title"`
	SeedFile string `koanf:"seedfile"`
}

type LoaderConfig struct {
	Concurrency int `koanf:"concurrency"`
}

type Config struct {
	Catalogue CatalogueConfig      `koanf:"catalogue"`
	Loader    LoaderConfig         `koanf:"loader"`
	Log       config.LogConfig     `koanf:"log"`
	Metrics   config.MetricsConfig `koanf:"metrics"`
	Tracing   config.TracingConfig `koanf:"tracing"`
}

// Load reads the catalogue configuration. See configloader.Load for the sources.
func Load() (*Config, error) {
	return configloader.Load[Config]("catalogue")
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Catalogue ---\n")
	b.WriteString(fmt.Sprintf("  catalogue.title: %s\n", c.Catalogue.Title))
	b.WriteString(fmt.Sprintf("  catalogue.seedfile: %s\n", orNone(c.Catalogue.SeedFile)))
	b.WriteString(fmt.Sprintf("  loader.concurrency: %d\n", c.Loader.Concurrency))

	b.WriteString(c.Log.String())
	b.WriteString(c.Metrics.String())
	b.WriteString(c.Tracing.String())

	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "<none>"
	}
	return s
}

// Validate checks the configuration values and fills in defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalogue.Title) == "" {
		log.Println("Using default value for catalogue.title")
		c.Catalogue.Title = defaultTitle
	}
	if c.Loader.Concurrency < 0 {
		return fmt.Errorf("loader concurrency must not be negative: %d", c.Loader.Concurrency)
	}
	if c.Loader.Concurrency == 0 {
		log.Println("Using default value for loader.concurrency")
		c.Loader.Concurrency = defaultConcurrency
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if err := c.Tracing.Validate(); err != nil {
		return err
	}
	return nil
}
