package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	TLSEnabled     bool     `mapstructure:"TLS_ENABLED"`
	TLSCertFile    string   `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile     string   `mapstructure:"TLS_KEY_FILE"`

	// Optional doctor account created at startup. The store is volatile, so
	// seeding at boot is the only way an account exists for the process
	// lifetime. No authentication is attached to it.
	SeedDoctorUsername string `mapstructure:"SEED_DOCTOR_USERNAME"`
	SeedDoctorPassword string `mapstructure:"SEED_DOCTOR_PASSWORD"`
	SeedDoctorFirst    string `mapstructure:"SEED_DOCTOR_FIRST_NAME"`
	SeedDoctorLast     string `mapstructure:"SEED_DOCTOR_LAST_NAME"`
	SeedDoctorLicense  string `mapstructure:"SEED_DOCTOR_LICENSE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("TLS_ENABLED")
	v.BindEnv("TLS_CERT_FILE")
	v.BindEnv("TLS_KEY_FILE")
	v.BindEnv("SEED_DOCTOR_USERNAME")
	v.BindEnv("SEED_DOCTOR_PASSWORD")
	v.BindEnv("SEED_DOCTOR_FIRST_NAME")
	v.BindEnv("SEED_DOCTOR_LAST_NAME")
	v.BindEnv("SEED_DOCTOR_LICENSE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	if c.TLSEnabled {
		if c.TLSCertFile == "" {
			return fmt.Errorf("TLS_CERT_FILE is required when TLS_ENABLED is true")
		}
		if c.TLSKeyFile == "" {
			return fmt.Errorf("TLS_KEY_FILE is required when TLS_ENABLED is true")
		}
	}
	if c.SeedDoctorUsername != "" && c.SeedDoctorPassword == "" {
		return fmt.Errorf("SEED_DOCTOR_PASSWORD is required when SEED_DOCTOR_USERNAME is set")
	}
	return nil
}
