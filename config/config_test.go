package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rahack95/OSSRH-63090/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFileJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"app_server_port": 9090,
		"redis_addr": "localhost:6379",
		"legacy_spacing": true
	}`)

	var cfg config.AppConfig
	require.NoError(t, config.LoadConfigFromFile(path, &cfg))

	assert.Equal(t, 9090, cfg.AppServerPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.True(t, cfg.LegacySpacing)
	assert.Equal(t, config.DefaultMaxBatchSize, cfg.MaxBatchSize)
	assert.Equal(t, config.DefaultCacheTTL, cfg.CacheTTL())
}

func TestLoadConfigFromFileYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "app_server_port: 7070\nmax_batch_size: 10\ncache_ttl_seconds: 60\n")

	var cfg config.AppConfig
	require.NoError(t, config.LoadConfigFromFile(path, &cfg))

	assert.Equal(t, 7070, cfg.AppServerPort)
	assert.Equal(t, 10, cfg.MaxBatchSize)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
	assert.False(t, cfg.LegacySpacing)
}

func TestLoadConfigFromFileErrors(t *testing.T) {
	var cfg config.AppConfig
	assert.Error(t, config.LoadConfigFromFile("", &cfg))
	assert.Error(t, config.LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.json"), &cfg))

	bad := writeFile(t, "bad.json", `{"app_server_port": "not a number"}`)
	assert.Error(t, config.LoadConfigFromFile(bad, &cfg))
}

func TestFileGet(t *testing.T) {
	path := writeFile(t, "config.json", `{"redis_addr": "localhost:6379", "app_server_port": 9090}`)

	f := &config.File{ConfigFilePath: path}
	var cfg config.AppConfig
	require.NoError(t, config.Load(f, &cfg))

	v, err := f.Get("redis_addr")
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", v)

	v, err = f.Get("app_server_port")
	var notString *config.ValueNotStringError
	assert.True(t, errors.As(err, &notString))
	assert.Equal(t, "9090", v)

	_, err = f.Get("missing")
	var notFound *config.KeyNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

type fakeRigel struct {
	values map[string]string
	ints   map[string]int
}

func (f *fakeRigel) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", &config.KeyNotFoundError{Key: key}
	}
	return v, nil
}

func (f *fakeRigel) GetInt(_ context.Context, key string) (int, error) {
	v, ok := f.ints[key]
	if !ok {
		return 0, &config.KeyNotFoundError{Key: key}
	}
	return v, nil
}

func TestRigelLoadConfig(t *testing.T) {
	client := &fakeRigel{
		values: map[string]string{
			config.KeyRedisAddr:     "redis:6379",
			config.KeyLegacySpacing: "true",
		},
		ints: map[string]int{
			config.KeyServerPort:   8181,
			config.KeyMaxBatchSize: 25,
		},
	}

	var cfg config.AppConfig
	require.NoError(t, config.Load(&config.Rigel{Client: client}, &cfg))
	cfg.ApplyDefaults()

	assert.Equal(t, 8181, cfg.AppServerPort)
	assert.Equal(t, 25, cfg.MaxBatchSize)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.True(t, cfg.LegacySpacing)
	assert.Equal(t, config.DefaultCacheTTL, cfg.CacheTTL())
}

func TestRigelLoadConfigErrors(t *testing.T) {
	assert.Error(t, config.Load(&config.Rigel{}, &config.AppConfig{}))

	client := &fakeRigel{values: map[string]string{config.KeyLegacySpacing: "sometimes"}}
	assert.Error(t, config.Load(&config.Rigel{Client: client}, &config.AppConfig{}))

	var other struct{}
	assert.Error(t, config.Load(&config.Rigel{Client: client}, &other))
}
