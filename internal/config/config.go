package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cozypet/nestd/internal/domain/pet"
	"gopkg.in/yaml.v3"
)

// Config defines daemon configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Growth    GrowthConfig    `yaml:"growth"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "stdio" or "http"
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// GrowthConfig holds the stage thresholds and tick cadence as duration
// strings ("90s", "12h"); Thresholds and Interval parse them.
type GrowthConfig struct {
	Hatch           string `yaml:"hatch"`
	Fledge          string `yaml:"fledge"`
	Mature          string `yaml:"mature"`
	TickInterval    string `yaml:"tick_interval"`
	CheckpointEvery int    `yaml:"checkpoint_every"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 7077,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		DB: DBConfig{
			Path: "nestd.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Growth: GrowthConfig{
			Hatch:           "1h",
			Fledge:          "12h",
			Mature:          "72h",
			TickInterval:    "1s",
			CheckpointEvery: 30,
		},
	}

	if path := os.Getenv("NESTD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("NESTD_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("NESTD_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NESTD_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("NESTD_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if dbPath := os.Getenv("NESTD_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("NESTD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if hatch := os.Getenv("NESTD_GROWTH_HATCH"); hatch != "" {
		cfg.Growth.Hatch = hatch
	}
	if fledge := os.Getenv("NESTD_GROWTH_FLEDGE"); fledge != "" {
		cfg.Growth.Fledge = fledge
	}
	if mature := os.Getenv("NESTD_GROWTH_MATURE"); mature != "" {
		cfg.Growth.Mature = mature
	}
	if tick := os.Getenv("NESTD_TICK_INTERVAL"); tick != "" {
		cfg.Growth.TickInterval = tick
	}
	if everyStr := os.Getenv("NESTD_CHECKPOINT_EVERY"); everyStr != "" {
		every, err := strconv.Atoi(everyStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid NESTD_CHECKPOINT_EVERY: %w", err)
		}
		cfg.Growth.CheckpointEvery = every
	}

	return cfg, nil
}

// Thresholds parses and validates the growth thresholds.
func (g GrowthConfig) Thresholds() (pet.Thresholds, error) {
	hatch, err := time.ParseDuration(g.Hatch)
	if err != nil {
		return pet.Thresholds{}, fmt.Errorf("invalid hatch threshold: %w", err)
	}
	fledge, err := time.ParseDuration(g.Fledge)
	if err != nil {
		return pet.Thresholds{}, fmt.Errorf("invalid fledge threshold: %w", err)
	}
	mature, err := time.ParseDuration(g.Mature)
	if err != nil {
		return pet.Thresholds{}, fmt.Errorf("invalid mature threshold: %w", err)
	}

	th := pet.Thresholds{Hatch: hatch, Fledge: fledge, Mature: mature}
	if err := th.Validate(); err != nil {
		return pet.Thresholds{}, err
	}
	return th, nil
}

// Interval parses the growth tick interval.
func (g GrowthConfig) Interval() (time.Duration, error) {
	interval, err := time.ParseDuration(g.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid tick interval: %w", err)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("tick interval must be positive, got %s", interval)
	}
	return interval, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
