package config

// Config holds runtime settings for the userkeeper CLI.
//
// Fields:
//   - ExportPath: target file for the username export.
//   - LogLevel: minimum diagnostic level ("debug", "info", "warn", "error").
type Config struct {
	ExportPath string
	LogLevel   string
}

// LoadDefaults populates c with the stock settings: users.txt in the
// working directory, info-level diagnostics.
func (c *Config) LoadDefaults() {
	c.ExportPath = "users.txt"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
