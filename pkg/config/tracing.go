package config

import (
	"fmt"
	"log"
	"strings"
)

const defaultSamplingRatio = 1.0

type TracingConfig struct {
	Enabled       bool    `koanf:"enabled"`
	SamplingRatio float64 `koanf:"samplingratio"`
}

// String returns a string representation of the TracingConfig.
func (c *TracingConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Tracing ---\n")
	b.WriteString(fmt.Sprintf("  enabled: %t\n", c.Enabled))
	b.WriteString(fmt.Sprintf("  samplingratio: %v\n", c.SamplingRatio))
	return b.String()
}

// Validate checks the ratio. An enabled config without a ratio samples everything.
func (c *TracingConfig) Validate() error {
	if c.SamplingRatio < 0 || c.SamplingRatio > 1 {
		return fmt.Errorf("tracing sampling ratio must be within [0, 1], got %v", c.SamplingRatio)
	}
	if c.Enabled && c.SamplingRatio == 0 {
		log.Println("Using default value for tracing.samplingratio")
		c.SamplingRatio = defaultSamplingRatio
	}
	return nil
}
