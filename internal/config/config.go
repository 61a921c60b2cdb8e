package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
}

type ServerConfig struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
}

type DatabaseConfig struct {
	URL              string        `yaml:"url"`
	StatementTimeout time.Duration `yaml:"statement_timeout"`
	MaxConns         int32         `yaml:"max_conns"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

type ReconcileConfig struct {
	Schedule string `yaml:"schedule"`
}

var (
	readFile    = os.ReadFile
	loadDotenv  = func() error { return godotenv.Load() }
	lookupEnvFn = os.LookupEnv
)

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     8080,
			LogLevel: "info",
			Workers:  1,
		},
		Database: DatabaseConfig{
			StatementTimeout: 30 * time.Second,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  30 * time.Second,
		},
		Auth: AuthConfig{
			TokenTTL: 7 * 24 * time.Hour,
		},
		Reconcile: ReconcileConfig{
			Schedule: "@every 10m",
		},
	}
}

// Load 依序套用預設值、YAML 檔（可不存在）、.env 與環境變數
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := readFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("解析設定檔 %s 失敗: %w", path, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("讀取設定檔 %s 失敗: %w", path, err)
		}
	}

	// .env 只是開發便利，不存在不算錯
	_ = loadDotenv()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := lookupEnvFn(key); ok && v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) error {
		v, ok := lookupEnvFn(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 %s: %v", key, err)
		}
		*dst = n
		return nil
	}
	setDuration := func(key string, dst *time.Duration) error {
		v, ok := lookupEnvFn(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("無效的 %s: %v", key, err)
		}
		*dst = d
		return nil
	}

	setString("DATABASE_URL", &cfg.Database.URL)
	setString("REDIS_ADDR", &cfg.Redis.Addr)
	setString("REDIS_PASSWORD", &cfg.Redis.Password)
	setString("JWT_SECRET", &cfg.Auth.JWTSecret)
	setString("LOG_LEVEL", &cfg.Server.LogLevel)
	setString("RECONCILE_SCHEDULE", &cfg.Reconcile.Schedule)

	for key, dst := range map[string]*int{
		"PORT":         &cfg.Server.Port,
		"REDIS_DB":     &cfg.Redis.DB,
		"WORKER_COUNT": &cfg.Server.Workers,
	} {
		if err := setInt(key, dst); err != nil {
			return err
		}
	}
	for key, dst := range map[string]*time.Duration{
		"DB_STATEMENT_TIMEOUT": &cfg.Database.StatementTimeout,
		"REDIS_TTL":            &cfg.Redis.TTL,
		"JWT_TTL":              &cfg.Auth.TokenTTL,
	} {
		if err := setDuration(key, dst); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("無效的 PORT: %d", c.Server.Port)
	}
	if c.Server.Workers <= 0 {
		return fmt.Errorf("無效的 WORKER_COUNT: %d", c.Server.Workers)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("無效的 REDIS_DB: %d", c.Redis.DB)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("無效的 JWT_TTL: %s", c.Auth.TokenTTL)
	}
	return nil
}

// Addr 回傳 echo 監聽位址
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
