package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	MongoURI      string `yaml:"mongo_uri"`
	MongoDatabase string `yaml:"mongo_database"`
	RedisAddr     string `yaml:"redis_addr"`
	HTTPPort      string `yaml:"http_port"`

	// TTL in seconds for cached recovery-option sets.
	RecoveryCacheTTL int `yaml:"recovery_cache_ttl_seconds"`
}

// Load reads config.yaml (path overridable via CONFIG_PATH) if present, then
// applies env var overrides, then defaults.
func Load() *Config {
	cfg := &Config{}

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	envOverride(&cfg.MongoURI, "MONGO_URI")
	envOverride(&cfg.MongoDatabase, "MONGO_DATABASE")
	envOverride(&cfg.RedisAddr, "REDIS_ADDR")
	envOverride(&cfg.HTTPPort, "PORT")

	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "aeron"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "8080"
	}
	if cfg.RecoveryCacheTTL == 0 {
		cfg.RecoveryCacheTTL = 600
	}

	return cfg
}

func envOverride(target *string, key string) {
	if val := os.Getenv(key); val != "" {
		*target = val
	}
}
