package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultAvatarURL is the static avatar asset shown in the dashboard header.
const DefaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix"

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	ViewCache ViewCacheConfig
	Dashboard DashboardConfig
	Exports   ExportsConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// ViewCacheConfig governs caching of resolved panels in Redis.
type ViewCacheConfig struct {
	Enabled     bool
	TTL         time.Duration
	WarmOnStart bool
	WarmWorkers int
}

// DashboardConfig holds the static presentation values of the dashboard shell.
type DashboardConfig struct {
	MountID           string
	NotificationCount int
	AvatarURL         string
}

// ExportsConfig toggles table panel exports.
type ExportsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.ViewCache = ViewCacheConfig{
		Enabled:     v.GetBool("ENABLE_VIEW_CACHE"),
		TTL:         parseDuration(v.GetString("VIEW_CACHE_TTL"), 5*time.Minute),
		WarmOnStart: v.GetBool("VIEW_CACHE_WARM"),
		WarmWorkers: v.GetInt("VIEW_CACHE_WARM_WORKERS"),
	}
	if cfg.ViewCache.WarmWorkers <= 0 {
		cfg.ViewCache.WarmWorkers = 1
	}

	notifications := v.GetInt("DASHBOARD_NOTIFICATION_COUNT")
	if notifications < 0 {
		notifications = 0
	}
	cfg.Dashboard = DashboardConfig{
		MountID:           strings.TrimSpace(v.GetString("DASHBOARD_MOUNT_ID")),
		NotificationCount: notifications,
		AvatarURL:         strings.TrimSpace(v.GetString("DASHBOARD_AVATAR_URL")),
	}
	if cfg.Dashboard.MountID == "" {
		cfg.Dashboard.MountID = "root"
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_VIEW_CACHE", false)
	v.SetDefault("VIEW_CACHE_TTL", "5m")
	v.SetDefault("VIEW_CACHE_WARM", true)
	v.SetDefault("VIEW_CACHE_WARM_WORKERS", 2)

	v.SetDefault("DASHBOARD_MOUNT_ID", "root")
	v.SetDefault("DASHBOARD_NOTIFICATION_COUNT", 3)
	v.SetDefault("DASHBOARD_AVATAR_URL", DefaultAvatarURL)

	v.SetDefault("ENABLE_EXPORTS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
