package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`

	APIURL      string        `yaml:"api_url" env:"API_URL" env-default:"http://localhost:8000"`
	APITimeout  time.Duration `yaml:"api_timeout" env:"API_TIMEOUT" env-default:"30s"`
	CORSOrigins []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"http://localhost:3000"`
	FrontendDir string        `yaml:"frontend_dir" env:"FRONTEND_DIR"`

	Snapshot Snapshot `yaml:"snapshot"`

	DemandSource string `yaml:"demand_source" env:"DEMAND_SOURCE" env-default:"backend"`
	DemandFile   string `yaml:"demand_file" env:"DEMAND_FILE" env-default:"./data/orders.xlsx"`

	SimulationDelay time.Duration `yaml:"simulation_delay" env:"SIMULATION_DELAY" env-default:"2s"`
	Canvas          Canvas        `yaml:"canvas"`
	Seed            int64         `yaml:"seed" env:"SEED" env-default:"0"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Snapshot selects where the blueprint state is persisted between restarts.
type Snapshot struct {
	Backend       string `yaml:"backend" env:"SNAPSHOT_BACKEND" env-default:"badger"`
	Key           string `yaml:"key" env:"SNAPSHOT_KEY" env-default:"blueprint-storage"`
	BadgerPath    string `yaml:"badger_path" env:"BADGER_PATH" env-default:"./data/badger"`
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
	MySQLDSN      string `yaml:"mysql_dsn" env:"MYSQL_DSN"`
}

// Canvas is the editor surface zone drags and resizes are clamped to.
type Canvas struct {
	Width  int `yaml:"width" env-default:"800"`
	Height int `yaml:"height" env-default:"600"`
}

// MustConfig reads CONFIG_PATH (or ./config/local.yaml). Without a file the
// environment and the defaults are used.
func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// RequestTimeout bounds handlers that wait on the analytics backend. It never
// exceeds the server timeout, past which the response can no longer be written.
func (c Config) RequestTimeout() time.Duration {
	if c.HTTPServer.Timeout > 0 && c.APITimeout > c.HTTPServer.Timeout {
		return c.HTTPServer.Timeout
	}
	return c.APITimeout
}
