package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type AdminConfig struct {
	Email string
	// Password is either an argon2id encoded hash ($argon2id$...) or, for
	// development, a plain value compared in constant time.
	Password string
}

type AuthConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

type StorageConfig struct {
	DataDir           string
	UploadDir         string
	MaxUploadMB       int64
	MaxImageDimension int
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Admin            AdminConfig
	Auth             AuthConfig
	Storage          StorageConfig
	AllowCORSOrigins []string
}

func (c StorageConfig) MaxUploadBytes() int64 {
	return c.MaxUploadMB * 1024 * 1024
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("AMELIAS")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "30s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("admin.email", "admin@example.com")
	v.SetDefault("admin.password", "change-me")

	v.SetDefault("auth.tokensecret", "dev-secret-change-me")
	v.SetDefault("auth.tokenttl", "12h")

	v.SetDefault("storage.datadir", "./data")
	v.SetDefault("storage.uploaddir", "./uploads")
	v.SetDefault("storage.maxuploadmb", 10)
	v.SetDefault("storage.maximagedimension", 4096)
}
