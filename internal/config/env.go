// Package config provides runtime configuration: a TOML file on top of
// built-in defaults, with environment overrides for the network frontends.
package config

import "os"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// PathFromEnv returns the config file path named by ASTEROIDS_CONFIG,
// or fallback when it is unset.
func PathFromEnv(fallback string) string {
	return GetEnv("ASTEROIDS_CONFIG", fallback)
}
