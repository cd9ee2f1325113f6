package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MetricsConfig controls where the metrics snapshot is written.
// An empty Textfile disables the snapshot.
type MetricsConfig struct {
	Textfile string `koanf:"textfile"`
}

// String returns a string representation of the metrics configuration.
func (c *MetricsConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Metrics ---\n")
	if c.Textfile == "" {
		b.WriteString("  textfile: <disabled>\n")
	} else {
		b.WriteString(fmt.Sprintf("  textfile: %s\n", c.Textfile))
	}
	return b.String()
}

func (c *MetricsConfig) Validate() error {
	if c.Textfile != "" && filepath.Ext(c.Textfile) != ".prom" {
		return fmt.Errorf("metrics textfile must have the .prom extension: %s", c.Textfile)
	}
	return nil
}
