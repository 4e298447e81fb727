package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/sysdesign/internal/kv"
)

// EnvPrefix is prepended to every environment override, e.g. SYSDESIGN_STORAGE.
const EnvPrefix = "SYSDESIGN"

// RedisConfig holds connection settings for the redis storage backend.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Config holds all runtime configuration.
// Values are populated from .sysdesign.yaml, SYSDESIGN_* env vars, and CLI flags.
type Config struct {
	Storage  string      `mapstructure:"storage"`
	DB       string      `mapstructure:"db"`
	FileDir  string      `mapstructure:"file_dir"`
	Catalog  string      `mapstructure:"catalog"`
	LogLevel string      `mapstructure:"log_level"`
	Redis    RedisConfig `mapstructure:"redis"`
}

// BindEnv makes viper read SYSDESIGN_* variables, mapping nested keys
// like redis.addr to SYSDESIGN_REDIS_ADDR.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("storage", kv.BackendSQLite)
	viper.SetDefault("db", "")
	viper.SetDefault("file_dir", "")
	viper.SetDefault("catalog", "")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("redis.addr", "127.0.0.1:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.prefix", "sysdesign:")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage {
	case kv.BackendSQLite, kv.BackendFile, kv.BackendRedis, kv.BackendMemory:
	default:
		return fmt.Errorf("storage must be one of sqlite, file, redis, memory; got %q", c.Storage)
	}
	return nil
}

// StorageOptions resolves the configured backend into kv.Options, filling
// in default locations under the XDG data directory.
func (c Config) StorageOptions() (kv.Options, error) {
	opts := kv.Options{
		Backend: c.Storage,
		Path:    c.DB,
		Dir:     c.FileDir,
		Redis: kv.RedisOptions{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
			Prefix:   c.Redis.Prefix,
		},
	}

	switch c.Storage {
	case kv.BackendSQLite:
		if opts.Path == "" {
			p, err := kv.DefaultDBPath()
			if err != nil {
				return kv.Options{}, fmt.Errorf("resolve DB path: %w", err)
			}
			opts.Path = p
		}
	case kv.BackendFile:
		if opts.Dir == "" {
			p, err := kv.DefaultDBPath()
			if err != nil {
				return kv.Options{}, fmt.Errorf("resolve data dir: %w", err)
			}
			opts.Dir = filepath.Join(filepath.Dir(p), "kv")
		}
	}
	return opts, nil
}

// ReadFile loads an explicit config file, or searches for .sysdesign.yaml in
// the working directory and home directory. A missing file is not an error.
func ReadFile(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	viper.SetConfigName(".sysdesign")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
