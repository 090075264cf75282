package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RepairShoprConfig holds connection settings for the external ticketing
// service. The API key is sent as a header on every request.
type RepairShoprConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	PageSize       int    `mapstructure:"page_size"`
}

// SyncConfig controls sync run defaults and the background scheduler.
type SyncConfig struct {
	DefaultMaxAgeDays    int    `mapstructure:"default_max_age_days"`
	LockTTLMinutes       int    `mapstructure:"lock_ttl_minutes"`
	SchedulerEnabled     bool   `mapstructure:"scheduler_enabled"`
	SchedulerIntervalMin int    `mapstructure:"scheduler_interval_minutes"`
	SourceSystem         string `mapstructure:"source_system"`
	FreshnessWindowHours int    `mapstructure:"freshness_window_hours"`
	OperationHistoryMax  int    `mapstructure:"operation_history_max"`
}
