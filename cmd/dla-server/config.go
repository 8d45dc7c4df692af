package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the server configuration
type ServerConfig struct {
	Addr     string            `yaml:"addr"`
	TPS      int               `yaml:"tps"`
	LogLevel string            `yaml:"log_level"`
	Model    map[string]string `yaml:"model"`
}

func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:     ":8080",
		TPS:      30,
		LogLevel: "info",
	}
}

// configResolver defines how to resolve a single configuration value.
// Flags win over environment variables, which win over the config file.
type configResolver struct {
	flagName    string
	envVarName  string
	description string
	setter      func(*ServerConfig, string)
}

// loadServerConfig loads server configuration from an optional YAML file,
// environment variables and CLI flags.
func loadServerConfig(args []string) (ServerConfig, error) {
	cfg := defaultServerConfig()

	resolvers := []configResolver{
		{
			flagName:    "addr",
			envVarName:  "DLA_ADDR",
			description: "HTTP listen address (e.g. :8080, 0.0.0.0:8080)",
			setter:      func(c *ServerConfig, v string) { c.Addr = v },
		},
		{
			flagName:    "tps",
			envVarName:  "DLA_TPS",
			description: "growth ticks per second",
			setter: func(c *ServerConfig, v string) {
				if val, err := strconv.Atoi(v); err == nil && val > 0 {
					c.TPS = val
				}
			},
		},
		{
			flagName:    "log-level",
			envVarName:  "DLA_LOG_LEVEL",
			description: "log level: debug, info, warn, error",
			setter:      func(c *ServerConfig, v string) { c.LogLevel = v },
		},
	}

	fs := flag.NewFlagSet("dla-server", flag.ContinueOnError)
	configFile := fs.String("config", os.Getenv("DLA_CONFIG"), "path to a YAML config file")
	flagVars := make(map[string]*string)
	for _, resolver := range resolvers {
		flagVars[resolver.flagName] = fs.String(resolver.flagName, "", resolver.description)
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *configFile != "" {
		if err := loadConfigFile(*configFile, &cfg); err != nil {
			return cfg, err
		}
	}

	for _, resolver := range resolvers {
		if v := *flagVars[resolver.flagName]; v != "" {
			resolver.setter(&cfg, v)
			continue
		}
		if v := os.Getenv(resolver.envVarName); v != "" {
			resolver.setter(&cfg, v)
		}
	}

	return cfg, nil
}

// loadConfigFile merges a YAML file into the configuration.
func loadConfigFile(path string, cfg *ServerConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}
