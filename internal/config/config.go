package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment string

	SourceBackend           string
	JobPostingsPath         string
	JobSkillsPath           string
	SkillsPath              string
	CompanySpecialitiesPath string
	USGeoPath               string
	MaxSourceRows           int

	ClickHouseDSN          string
	ClickHouseMaxOpenConns int
	ClickHouseMaxIdleConns int
	ClickHouseConnMaxLife  time.Duration
	ClickHouseUsername     string
	ClickHousePassword     string
	ClickHouseDatabase     string

	CacheBackend  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NATSURL         string
	NATSConnTimeout time.Duration

	ForecastTargetYear  int
	ForecastHorizonDays int
	ForecastWorkers     int
	ForecastTimeout     time.Duration

	TracingEnabled bool
	OTLPCollector  string
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnvString("ENVIRONMENT", "DEV"),

		SourceBackend:           getEnvString("SOURCE_BACKEND", "csv"),
		JobPostingsPath:         getEnvString("JOB_POSTINGS_PATH", "data/job_postings.csv"),
		JobSkillsPath:           getEnvString("JOB_SKILLS_PATH", "data/job_skills.csv"),
		SkillsPath:              getEnvString("SKILLS_PATH", "data/skills.csv"),
		CompanySpecialitiesPath: getEnvString("COMPANY_SPECIALITIES_PATH", "data/company_specialities.csv"),
		USGeoPath:               getEnvString("US_GEO_PATH", "data/us_states.geojson"),
		MaxSourceRows:           getEnvInt("MAX_SOURCE_ROWS", 3000),

		ClickHouseDSN:          getEnvString("CLICKHOUSE_DSN", "localhost:9000"),
		ClickHouseMaxOpenConns: getEnvInt("CLICKHOUSE_MAX_OPEN_CONNS", 10),
		ClickHouseMaxIdleConns: getEnvInt("CLICKHOUSE_MAX_IDLE_CONNS", 5),
		ClickHouseConnMaxLife:  getEnvDuration("CLICKHOUSE_CONN_MAX_LIFE", time.Hour),
		ClickHouseUsername:     getEnvString("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword:     getEnvString("CLICKHOUSE_PASSWORD", ""),
		ClickHouseDatabase:     getEnvString("CLICKHOUSE_DATABASE", "jobmarket"),

		CacheBackend:  getEnvString("CACHE_BACKEND", "memory"),
		RedisAddr:     getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		NATSURL:         getEnvString("NATS_URL", "nats://localhost:4222"),
		NATSConnTimeout: getEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		ForecastTargetYear:  getEnvInt("FORECAST_TARGET_YEAR", 2025),
		ForecastHorizonDays: getEnvInt("FORECAST_HORIZON_DAYS", 365),
		ForecastWorkers:     getEnvInt("FORECAST_WORKERS", 8),
		ForecastTimeout:     getEnvDuration("FORECAST_TIMEOUT", 2*time.Minute),

		TracingEnabled: getEnvBool("TRACING_ENABLED", false),
		OTLPCollector:  getEnvString("OTLP_COLLECTOR_URL", "localhost:4317"),
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
