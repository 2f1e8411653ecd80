package main

import "strings"

// Config is the environment-driven configuration of the kiss binary.
// Command-line flags override these values.
type Config struct {
	Addr         string   `env:"KISS_ADDR" envDefault:":8080"`
	CacheControl string   `env:"KISS_CACHE_CONTROL" envDefault:"1y"`
	Hidden       bool     `env:"KISS_HIDDEN" envDefault:"false"`
	Mounts       []string `env:"KISS_MOUNTS" envSeparator:","`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON      bool     `env:"LOG_JSON" envDefault:"false"`
}

// parseMountSpec splits a "prefix=dir" mount spec. A bare directory
// mounts at "/".
func parseMountSpec(spec string) (prefix, dir string) {
	if p, d, ok := strings.Cut(spec, "="); ok {
		return p, d
	}
	return "/", spec
}
