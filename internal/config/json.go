package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userkeeper/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish absent keys from explicit values, so a partial file
// overrides only what it names.
type jsonConfig struct {
	ExportPath *string `json:"export_path"`
	LogLevel   *string `json:"log_level"`
}

// parseJSON overlays cfg with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.ConfigFileFlag);
// with neither flag present the function returns without touching cfg.
// Read or unmarshal errors panic (callers may recover if they care).
// Intended usage is: defaults -> parseJSON -> parseFlags, where later
// stages override earlier ones.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ExportPath != nil {
		cfg.ExportPath = *jc.ExportPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
