package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is an interface that represents a source from which application configuration can be loaded.
type Config interface {
	LoadConfig(c any) error
	Check() error
	Get(key string) (string, error)
}

// Load first ensures that the config system valid and accessible. Then it loads the config into c.
func Load(cs Config, c any) error {
	if err := cs.Check(); err != nil {
		return err
	}
	return cs.LoadConfig(c)
}

// AppConfig holds the settings of the nepaliword service.
type AppConfig struct {
	AppServerPort   int    `json:"app_server_port" yaml:"app_server_port"`
	MetricsPort     int    `json:"metrics_port" yaml:"metrics_port"`
	RedisAddr       string `json:"redis_addr" yaml:"redis_addr"`
	CacheTTLSeconds int    `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
	MaxBatchSize    int    `json:"max_batch_size" yaml:"max_batch_size"`
	LegacySpacing   bool   `json:"legacy_spacing" yaml:"legacy_spacing"`
	LogFile         string `json:"log_file" yaml:"log_file"`
}

const (
	DefaultAppServerPort = 8080
	DefaultCacheTTL      = 24 * time.Hour
	DefaultMaxBatchSize  = 100
)

// ApplyDefaults fills unset fields with their defaults.
// A zero MetricsPort means metrics are served on the application port.
func (c *AppConfig) ApplyDefaults() {
	if c.AppServerPort == 0 {
		c.AppServerPort = DefaultAppServerPort
	}
	if c.CacheTTLSeconds == 0 {
		c.CacheTTLSeconds = int(DefaultCacheTTL / time.Second)
	}
	if c.MaxBatchSize == 0 {
		c.MaxBatchSize = DefaultMaxBatchSize
	}
}

// CacheTTL returns the cache expiry as a duration.
func (c AppConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// File

// File loads configuration from a JSON or YAML file. The format is chosen by
// the file extension: .yaml and .yml are YAML, everything else is JSON.
type File struct {
	ConfigFilePath string
	Config         map[string]any
}

func (f *File) Check() error {
	if f.ConfigFilePath == "" {
		return fmt.Errorf("configFilePath cannot be empty")
	}

	return nil
}

func newFile(configFilePath string) (*File, error) {
	file := &File{ConfigFilePath: configFilePath}

	if err := file.Check(); err != nil {
		return nil, err
	}

	return file, nil
}

func (f *File) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(f.ConfigFilePath))
	return ext == ".yaml" || ext == ".yml"
}

// LoadConfig decodes the file into appConfig and keeps the raw key/value pairs for Get.
func (f *File) LoadConfig(appConfig any) error {
	data, err := os.ReadFile(f.ConfigFilePath)
	if err != nil {
		return err
	}

	unmarshal := json.Unmarshal
	if f.isYAML() {
		unmarshal = yaml.Unmarshal
	}

	if err := unmarshal(data, appConfig); err != nil {
		return fmt.Errorf("decoding %s: %w", f.ConfigFilePath, err)
	}
	f.Config = make(map[string]any)
	return unmarshal(data, &f.Config)
}

type ValueNotStringError struct {
	Key   string
	Value any
}

func (e *ValueNotStringError) Error() string {
	return fmt.Sprintf("value for key %s is not a string: %v", e.Key, e.Value)
}

type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %s not found in config", e.Key)
}

// Get retrieves a value from the configuration based on the provided key.
// If the value is a string, it is returned as is. If the value is not a string,
// it is converted to a string using fmt.Sprintf and returned along with the error ValueNotStringError.
// If the key is not found in the configuration, an error of type KeyNotFoundError is returned.
func (f *File) Get(key string) (string, error) {
	value, ok := f.Config[key]
	if !ok {
		return "", &KeyNotFoundError{Key: key}
	}

	strValue := fmt.Sprintf("%v", value)

	strValueAsserted, ok := value.(string)
	if !ok {
		return strValue, &ValueNotStringError{Key: key, Value: value}
	}

	return strValueAsserted, nil
}

// Rigel

// RigelClient is the part of the Rigel client used to read configuration keys.
type RigelClient interface {
	Get(ctx context.Context, key string) (string, error)
	GetInt(ctx context.Context, key string) (int, error)
}

// Rigel loads configuration from a Rigel schema stored in etcd.
// Keys are read individually; a missing key leaves the field at its default.
type Rigel struct {
	Client  RigelClient
	Timeout time.Duration
}

// Rigel keys of the nepaliword schema.
const (
	KeyServerPort    = "server.port"
	KeyMetricsPort   = "metrics.port"
	KeyRedisAddr     = "redis.addr"
	KeyCacheTTL      = "cache.ttl_seconds"
	KeyMaxBatchSize  = "convert.max_batch_size"
	KeyLegacySpacing = "convert.legacy_spacing"
	KeyLogFile       = "log.file"
)

func (r *Rigel) Check() error {
	if r.Client == nil {
		return fmt.Errorf("rigel client cannot be nil")
	}
	return nil
}

func (r *Rigel) context() (context.Context, context.CancelFunc) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// LoadConfig reads the nepaliword keys into c, which must be an *AppConfig.
func (r *Rigel) LoadConfig(c any) error {
	appConfig, ok := c.(*AppConfig)
	if !ok {
		return fmt.Errorf("rigel source loads *config.AppConfig, got %T", c)
	}

	ctx, cancel := r.context()
	defer cancel()

	ints := []struct {
		key string
		dst *int
	}{
		{KeyServerPort, &appConfig.AppServerPort},
		{KeyMetricsPort, &appConfig.MetricsPort},
		{KeyCacheTTL, &appConfig.CacheTTLSeconds},
		{KeyMaxBatchSize, &appConfig.MaxBatchSize},
	}
	for _, i := range ints {
		if v, err := r.Client.GetInt(ctx, i.key); err == nil {
			*i.dst = v
		}
	}

	if v, err := r.Client.Get(ctx, KeyRedisAddr); err == nil {
		appConfig.RedisAddr = v
	}
	if v, err := r.Client.Get(ctx, KeyLogFile); err == nil {
		appConfig.LogFile = v
	}
	if v, err := r.Client.Get(ctx, KeyLegacySpacing); err == nil {
		legacy, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", KeyLegacySpacing, err)
		}
		appConfig.LegacySpacing = legacy
	}
	return nil
}

// Get returns the raw value of key from Rigel.
func (r *Rigel) Get(key string) (string, error) {
	ctx, cancel := r.context()
	defer cancel()
	return r.Client.Get(ctx, key)
}
