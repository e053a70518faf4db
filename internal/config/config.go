// Package config loads application configuration from environment
// variables.  Everything has a sensible default: the tracker is a
// single-user tool and must start with no environment at all, persisting
// to local files.  Redis and the message broker are opt-in extras.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values.
type Config struct {
	Env     string // application environment (e.g. "dev", "prod")
	Port    string // HTTP port to listen on
	DataDir string // directory for the file-backed snapshot store
	AMQPURL string // message broker URL; empty disables change events
}

// Load reads configuration from the environment, falling back to
// defaults for anything unset.
func Load() Config {
	return Config{
		Env:     getenv("APP_ENV", "dev"),
		Port:    getenv("APP_PORT", "8080"),
		DataDir: getenv("DATA_DIR", "data"),
		AMQPURL: amqpURL(),
	}
}

// amqpURL honors both RABBITMQ_URL and AMQP_URL.  Unlike Redis there is
// no default: an unreachable broker should not delay startup unless the
// user asked for one.
func amqpURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("config: invalid integer %q, using 0", s)
		return 0
	}
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("config: invalid duration %q, using 1s", s)
		return time.Second
	}
	return d
}

func parseMethods(s string) map[string]bool {
	m := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(strings.ToUpper(p))
		if p != "" {
			m[p] = true
		}
	}
	return m
}
