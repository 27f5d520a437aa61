package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   resource API base URL
//	-d string   SQLite database path
//	-t int      request timeout in seconds
//	-l string   log level
//
// Unknown arguments are filtered out first so that -c/-config does not
// interfere. A malformed value panics.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], "-a", "-d", "-t", "-l")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the resource API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
