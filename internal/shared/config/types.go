package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// WriteRateLimit caps section writes per client IP and window. Zero
	// disables the limiter.
	WriteRateLimit         int `mapstructure:"write_rate_limit"`
	WriteRateWindowSeconds int `mapstructure:"write_rate_window_seconds"`
}

func (s *ServerConfig) WriteRateWindow() time.Duration {
	return time.Duration(s.WriteRateWindowSeconds) * time.Second
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
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

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CatalogConfig controls how purchase-type and billing-type catalogs are
// cached and, optionally, where the upstream catalog API lives.
type CatalogConfig struct {
	CacheTTLMinutes       int    `mapstructure:"cache_ttl_minutes"`
	CacheTTLJitterMinutes int    `mapstructure:"cache_ttl_jitter_minutes"`
	NullMarkerTTLSeconds  int    `mapstructure:"null_marker_ttl_seconds"`
	RemoteBaseURL         string `mapstructure:"remote_base_url"`
	RemoteTimeoutSeconds  int    `mapstructure:"remote_timeout_seconds"`
}

func (c *CatalogConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

func (c *CatalogConfig) CacheTTLJitter() time.Duration {
	return time.Duration(c.CacheTTLJitterMinutes) * time.Minute
}

func (c *CatalogConfig) NullMarkerTTL() time.Duration {
	return time.Duration(c.NullMarkerTTLSeconds) * time.Second
}

func (c *CatalogConfig) RemoteTimeout() time.Duration {
	return time.Duration(c.RemoteTimeoutSeconds) * time.Second
}

// UsesRemote reports whether purchase types come from the upstream API
// instead of the local database.
func (c *CatalogConfig) UsesRemote() bool {
	return c.RemoteBaseURL != ""
}

type BizTimeConfig struct {
	Timezone string `mapstructure:"timezone"`
}
