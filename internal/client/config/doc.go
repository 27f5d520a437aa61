// Package config loads runtime configuration for the travel planner CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the travel plans resource API
//	-d string   path of the local SQLite file holding the session
//	-t int      per-request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3000",
//	  "database_path": "travelplanner.db",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
