// Package config loads runtime configuration for the userkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via the -c or -config flags.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-o string   export target path
//	-l string   minimum log level ("debug", "info", "warn", "error")
//
// # JSON schema
//
// Keys are optional; absent keys leave the earlier value in place:
//
//	{
//	  "export_path": "users.txt",
//	  "log_level": "info"
//	}
//
// The defaults reproduce the stock behavior: usernames are exported to
// users.txt in the working directory and diagnostics go to stderr at info
// level. This package reads no environment variables.
package config
