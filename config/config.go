package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port           int
	LogLevel       string
	LogDevelopment bool
	Output         string
	Algorithms     []string
	CacheEnabled   bool
	CacheMaxCost   int64
	MetricsEnabled bool
}

const envPrefix = "OS_SCHEDULER"

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads ./config.yaml (if present) once per process.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load("")
	})
	return config, configErr
}

// Load reads configuration from path, or from config.yaml in the working
// directory when path is empty. A missing default file is not an error.
// OS_SCHEDULER_* variables, including ones from a local .env, override the file.
func Load(path string) (*SchedulerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:           v.GetInt("port"),
		LogLevel:       v.GetString("log.level"),
		LogDevelopment: v.GetBool("log.development"),
		Output:         v.GetString("report.output"),
		Algorithms:     v.GetStringSlice("scheduler.algorithms"),
		CacheEnabled:   v.GetBool("cache.enabled"),
		CacheMaxCost:   v.GetInt64("cache.max_cost"),
		MetricsEnabled: v.GetBool("metrics.enabled"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", true)
	v.SetDefault("report.output", "table")
	v.SetDefault("scheduler.algorithms", []string{"fcfs", "sjf"})
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_cost", 1024)
	v.SetDefault("metrics.enabled", true)
}
