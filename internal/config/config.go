package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/safestride/service-navigation/internal/domain/safety"
)

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// KafkaConfig holds broker addresses and the consumer group prefix.
type KafkaConfig struct {
	Brokers     []string
	GroupPrefix string
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret string
}

// CollaboratorConfig holds base URLs for the external geocoding and routing
// services. Empty values fall back to the public endpoints.
type CollaboratorConfig struct {
	GeocoderBaseURL string
	RouterBaseURL   string
}

// ServiceConfig holds all configuration for the navigation service.
type ServiceConfig struct {
	Port          string
	AppEnv        string
	DBConfig      DatabaseConfig
	KafkaConfig   KafkaConfig
	JWTConfig     JWTConfig
	Collaborators CollaboratorConfig
	Scoring       safety.ScoringConfig
	ReportTTL     time.Duration
}

// Load reads configuration from environment variables with the NAVIGATION
// prefix (e.g. NAVIGATION_SERVICE_PORT).
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("NAVIGATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8084")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "navigation")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_GROUP_PREFIX", "safestride.")

	v.SetDefault("JWT_SECRET", "dev-secret-change-me")

	v.SetDefault("GEOCODER_BASE_URL", "")
	v.SetDefault("ROUTER_BASE_URL", "")

	// Scoring calibration. Empirically chosen defaults; tune at the product
	// level rather than in code.
	defaults := safety.DefaultScoringConfig()
	v.SetDefault("SCORING_NEUTRAL_SCORE", defaults.NeutralScore)
	v.SetDefault("SCORING_PENALTY_WEIGHT", defaults.PenaltyWeight)
	v.SetDefault("SCORING_CRITICAL_MULTIPLIER", defaults.CriticalMultiplier)
	v.SetDefault("SCORING_HIGH_MULTIPLIER", defaults.HighMultiplier)

	v.SetDefault("REPORT_TTL", "168h")

	return &ServiceConfig{
		Port:   v.GetString("SERVICE_PORT"),
		AppEnv: v.GetString("APP_ENV"),
		DBConfig: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		KafkaConfig: KafkaConfig{
			Brokers:     strings.Split(v.GetString("KAFKA_BROKERS"), ","),
			GroupPrefix: v.GetString("KAFKA_GROUP_PREFIX"),
		},
		JWTConfig: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Collaborators: CollaboratorConfig{
			GeocoderBaseURL: v.GetString("GEOCODER_BASE_URL"),
			RouterBaseURL:   v.GetString("ROUTER_BASE_URL"),
		},
		Scoring: safety.ScoringConfig{
			NeutralScore:       v.GetInt("SCORING_NEUTRAL_SCORE"),
			PenaltyWeight:      v.GetFloat64("SCORING_PENALTY_WEIGHT"),
			CriticalMultiplier: v.GetFloat64("SCORING_CRITICAL_MULTIPLIER"),
			HighMultiplier:     v.GetFloat64("SCORING_HIGH_MULTIPLIER"),
		},
		ReportTTL: v.GetDuration("REPORT_TTL"),
	}, nil
}
