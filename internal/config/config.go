// Package config loads service settings from defaults, an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Station sources.
const (
	SourceManifest = "manifest"
	SourceMongo    = "mongo"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig
	Stations StationsConfig
	Images   ImagesConfig
	Mongo    MongoConfig
	Log      LogConfig
}

// ServerConfig holds http listener settings.
type ServerConfig struct {
	Port   string
	Origin string
}

// StationsConfig selects where the station list comes from.
type StationsConfig struct {
	Source   string
	Manifest string
	Charset  string
}

// ImagesConfig points at the generated calendar images.
type ImagesConfig struct {
	Dir string
}

// MongoConfig holds mongo station source settings.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from file and env. Env var overrides use prefix HEATRISK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.origin", "")
	v.SetDefault("stations.source", SourceManifest)
	v.SetDefault("stations.manifest", "docs/stations.js")
	v.SetDefault("stations.charset", "utf-8")
	v.SetDefault("images.dir", "docs/img")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "heatrisk")
	v.SetDefault("mongo.collection", "stations")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv("HEATRISK_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("HEATRISK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// plain names used by existing deployments
	for key, env := range map[string]string{
		"server.port":    "PORT",
		"server.origin":  "ORIGIN",
		"mongo.uri":      "DB_CONN_STRING",
		"mongo.database": "DB_NAME",
	} {
		if err := v.BindEnv(key, "HEATRISK_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	switch c.Stations.Source {
	case SourceManifest, SourceMongo:
	default:
		return Config{}, fmt.Errorf("unknown stations source %q", c.Stations.Source)
	}

	return c, nil
}
