package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort               string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL            string `env:"DATABASE_URL,required"`
	RedisAddr              string `env:"REDIS_ADDR"`
	RedisPassword          string `env:"REDIS_PASSWORD"`
	RedisDB                int    `env:"REDIS_DB" envDefault:"0"`
	AnalyzerURL            string `env:"ANALYZER_URL"`
	AnalyzerTimeoutSeconds int    `env:"ANALYZER_TIMEOUT_SECONDS" envDefault:"5"`
	CacheTTLMinutes        int    `env:"CACHE_TTL_MINUTES" envDefault:"30"`
	ProfileEventsTopic     string `env:"PROFILE_EVENTS_TOPIC" envDefault:"brand-profile-events"`
	ValidationEventsTopic  string `env:"VALIDATION_EVENTS_TOPIC" envDefault:"content-validation-events"`
	RateLimitPerMinute     int    `env:"RATE_LIMIT_PER_MINUTE" envDefault:"100"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
