package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

func restore() {
	readFile = os.ReadFile
	loadDotenv = func() error { return godotenv.Load() }
	lookupEnvFn = os.LookupEnv
}

func fakeEnv(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Cleanup(restore)
	readFile = func(string) ([]byte, error) { return nil, os.ErrNotExist }
	loadDotenv = func() error { return errors.New("no .env") }
	lookupEnvFn = fakeEnv(map[string]string{
		"DATABASE_URL":         "postgres://localhost/app",
		"JWT_SECRET":           "s3cret",
		"REDIS_DB":             "2",
		"WORKER_COUNT":         "4",
		"DB_STATEMENT_TIMEOUT": "5s",
	})

	cfg, err := Load("config.yaml")
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/app", cfg.Database.URL)
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, 4, cfg.Server.Workers)
	require.Equal(t, 5*time.Second, cfg.Database.StatementTimeout)
	require.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, "@every 10m", cfg.Reconcile.Schedule)
	require.Equal(t, ":8080", cfg.Addr())
}

func TestLoadYAMLThenEnvOverride(t *testing.T) {
	t.Cleanup(restore)
	readFile = func(string) ([]byte, error) {
		return []byte(`
server:
  port: 9000
  log_level: debug
database:
  url: postgres://yaml/app
auth:
  jwt_secret: from-yaml
reconcile:
  schedule: "@hourly"
`), nil
	}
	loadDotenv = func() error { return nil }
	lookupEnvFn = fakeEnv(map[string]string{"PORT": "9100"})

	cfg, err := Load("config.yaml")
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.LogLevel)
	require.Equal(t, "postgres://yaml/app", cfg.Database.URL)
	require.Equal(t, "from-yaml", cfg.Auth.JWTSecret)
	require.Equal(t, "@hourly", cfg.Reconcile.Schedule)
}

func TestLoadErrors(t *testing.T) {
	t.Cleanup(restore)
	loadDotenv = func() error { return nil }

	readFile = func(string) ([]byte, error) { return nil, errors.New("permission denied") }
	lookupEnvFn = fakeEnv(nil)
	_, err := Load("config.yaml")
	require.ErrorContains(t, err, "讀取設定檔")

	readFile = func(string) ([]byte, error) { return []byte("server: ["), nil }
	_, err = Load("config.yaml")
	require.ErrorContains(t, err, "解析設定檔")

	readFile = func(string) ([]byte, error) { return nil, os.ErrNotExist }
	_, err = Load("config.yaml")
	require.EqualError(t, err, "環境變數 DATABASE_URL 未設定")

	lookupEnvFn = fakeEnv(map[string]string{"DATABASE_URL": "x"})
	_, err = Load("")
	require.EqualError(t, err, "環境變數 JWT_SECRET 未設定")

	base := map[string]string{"DATABASE_URL": "x", "JWT_SECRET": "y"}
	for key, val := range map[string]string{
		"REDIS_DB":             "abc",
		"PORT":                 "eighty",
		"DB_STATEMENT_TIMEOUT": "soon",
	} {
		env := map[string]string{key: val}
		for k, v := range base {
			env[k] = v
		}
		lookupEnvFn = fakeEnv(env)
		_, err = Load("")
		require.ErrorContains(t, err, "無效的 "+key)
	}
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.Database.URL = "x"
	cfg.Auth.JWTSecret = "y"
	require.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Server.Workers = 0
	require.ErrorContains(t, bad.Validate(), "WORKER_COUNT")

	bad = *cfg
	bad.Server.Port = 70000
	require.ErrorContains(t, bad.Validate(), "PORT")

	bad = *cfg
	bad.Redis.Addr = ""
	require.ErrorContains(t, bad.Validate(), "REDIS_ADDR")

	bad = *cfg
	bad.Redis.DB = -1
	require.ErrorContains(t, bad.Validate(), "REDIS_DB")

	bad = *cfg
	bad.Auth.TokenTTL = 0
	require.ErrorContains(t, bad.Validate(), "JWT_TTL")
}
