package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the binaries need. Values come from config.yaml
// when present and are overridden by environment variables.
type Config struct {
	HTTPAddr string `mapstructure:"http_addr"`

	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`

	Redis struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"redis"`

	Auth struct {
		// JWTSecret is the HS256 secret shared with the external identity
		// provider. The server never issues tokens, it only verifies them.
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`

	Blob struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"blob"`

	Log struct {
		Format string `mapstructure:"format"`
		Level  string `mapstructure:"level"`
	} `mapstructure:"log"`

	Admin struct {
		ID   string `mapstructure:"id"`
		Name string `mapstructure:"name"`
	} `mapstructure:"admin"`

	Cache struct {
		ProfileTTL time.Duration `mapstructure:"profile_ttl"`
	} `mapstructure:"cache"`
}

// Load reads config.yaml (optional) and environment overrides.
func Load() (Config, error) {
	viper.SetDefault("http_addr", ":8080")
	viper.SetDefault("log.format", "json")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("blob.dir", "./data/audio")
	viper.SetDefault("cache.profile_ttl", time.Minute)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv("http_addr", "HTTP_ADDR")
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("redis.url", "REDIS_URL")
	_ = viper.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	_ = viper.BindEnv("blob.dir", "BLOB_DIR")
	_ = viper.BindEnv("log.format", "LOG_FORMAT")
	_ = viper.BindEnv("log.level", "LOG_LEVEL")
	_ = viper.BindEnv("admin.id", "ADMIN_ID")
	_ = viper.BindEnv("admin.name", "ADMIN_NAME")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
