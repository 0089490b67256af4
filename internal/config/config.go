package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyDataFile     = "data_file"
	KeyStoreBackend = "store_backend"
	KeyDBPath       = "db_path"
	KeyDatabaseURL  = "database_url"
	KeyRedisAddr    = "redis_addr"
	KeyRedisKey     = "redis_key"
	KeyKafkaBroker  = "kafka_broker"
	KeyKafkaTopic   = "kafka_topic"
	KeyLogLevel     = "log_level"
	KeyLogFile      = "log_file"
	KeySeedPath     = "seed_path"
)

const (
	BackendFile     = "file"
	BackendSqlite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var defaults = map[string]string{
	KeyDataFile:     "data/flightplans.txt",
	KeyStoreBackend: BackendFile,
	KeyDBPath:       "data/fdms.db",
	KeyRedisAddr:    "localhost:6379",
	KeyRedisKey:     "fdms:dashboard",
	KeyKafkaTopic:   "flightplan_events",
	KeyLogLevel:     "info",
	KeyLogFile:      "fdms.log",
	KeySeedPath:     "data/flightplans.txt",
}

// Resolved process configuration.
type Config struct {
	DataFile     string
	StoreBackend string
	DBPath       string
	DatabaseURL  string
	RedisAddr    string
	RedisKey     string
	KafkaBroker  string
	KafkaTopic   string
	LogLevel     string
	LogFile      string
	SeedPath     string
}

// Load variables from a .env file into the environment.
// Variables already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// Return a viper instance with defaults applied and environment lookup enabled.
// Keys map to upper-case environment variables (data_file -> DATA_FILE).
func New() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Merge a YAML (or any viper-supported) config file into v.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	return nil
}

// Resolve and validate the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		DataFile:     strings.TrimSpace(v.GetString(KeyDataFile)),
		StoreBackend: strings.ToLower(strings.TrimSpace(v.GetString(KeyStoreBackend))),
		DBPath:       strings.TrimSpace(v.GetString(KeyDBPath)),
		DatabaseURL:  strings.TrimSpace(v.GetString(KeyDatabaseURL)),
		RedisAddr:    strings.TrimSpace(v.GetString(KeyRedisAddr)),
		RedisKey:     strings.TrimSpace(v.GetString(KeyRedisKey)),
		KafkaBroker:  strings.TrimSpace(v.GetString(KeyKafkaBroker)),
		KafkaTopic:   strings.TrimSpace(v.GetString(KeyKafkaTopic)),
		LogLevel:     strings.TrimSpace(v.GetString(KeyLogLevel)),
		LogFile:      strings.TrimSpace(v.GetString(KeyLogFile)),
		SeedPath:     strings.TrimSpace(v.GetString(KeySeedPath)),
	}

	switch cfg.StoreBackend {
	case BackendFile:
		if cfg.DataFile == "" {
			return Config{}, errors.New("load config: DATA_FILE is required for the file backend")
		}
	case BackendSqlite:
		if cfg.DBPath == "" {
			return Config{}, errors.New("load config: DB_PATH is required for the sqlite backend")
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("load config: DATABASE_URL is required for the postgres backend")
		}
	case BackendRedis:
		if cfg.RedisAddr == "" || cfg.RedisKey == "" {
			return Config{}, errors.New("load config: REDIS_ADDR and REDIS_KEY are required for the redis backend")
		}
	default:
		return Config{}, fmt.Errorf("load config: unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.KafkaBroker != "" && cfg.KafkaTopic == "" {
		return Config{}, errors.New("load config: KAFKA_TOPIC is required when KAFKA_BROKER is set")
	}

	return cfg, nil
}

// Return the environment variable key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
