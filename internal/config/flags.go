package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userkeeper/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-o string   export target path (default from Config)
//	-l string   minimum log level (default from Config)
//
// The function filters os.Args down to the flags it owns via
// flagx.FilterArgs, so the config-file flags handled elsewhere do not
// interfere with parsing here.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ExportPath, "o", cfg.ExportPath, "export target path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "minimum log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
