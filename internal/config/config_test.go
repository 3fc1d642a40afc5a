package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
service:
  name: wellness-tracker
  environment: test
http:
  port: 8000
  rate_limit_per_minute: 60
database:
  host: db
  port: 5432
  user: u
  password: p
  database: wellness
  ssl_mode: disable
jwt:
  secret: ${TEST_JWT_SECRET:from-default}
  access_token_ttl: 30m
redis:
  analytics_ttl: 5m
analytics:
  timezone: Europe/Berlin
  streak_policy: lenient
kafka:
  enabled: true
  brokers:
    - a:9092
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "base.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "wellness-tracker", cfg.Service.Name)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, "from-default", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 5*time.Minute, cfg.Redis.AnalyticsTTL)
	assert.Equal(t, []string{"a:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "postgres://u:p@db:5432/wellness?sslmode=disable", cfg.Database.GetDSN())

	loc, err := cfg.Analytics.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_JWT_SECRET", "expanded")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DATABASE_HOST", "pg.internal")

	cfg, err := LoadFile(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "expanded", cfg.JWT.Secret)
	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "pg.internal", cfg.Database.Host)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			HTTP:      HTTPConfig{Port: 8000},
			JWT:       JWTConfig{Secret: "s", AccessTokenTTL: time.Minute},
			Analytics: AnalyticsConfig{Timezone: "UTC", StreakPolicy: "strict"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "jwt.secret"},
		{name: "bad timezone", mutate: func(c *Config) { c.Analytics.Timezone = "Mars/Olympus" }, wantErr: "analytics.timezone"},
		{name: "bad policy", mutate: func(c *Config) { c.Analytics.StreakPolicy = "forgiving" }, wantErr: "analytics.streak_policy"},
		{name: "bad port", mutate: func(c *Config) { c.HTTP.Port = 0 }, wantErr: "http.port"},
		{
			name:    "kafka without brokers",
			mutate:  func(c *Config) { c.Kafka.Enabled = true },
			wantErr: "kafka.brokers",
		},
		{
			name:    "scheduler without spec",
			mutate:  func(c *Config) { c.Scheduler.Enabled = true },
			wantErr: "scheduler.digest_spec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLocation_DefaultsToUTC(t *testing.T) {
	loc, err := (&AnalyticsConfig{}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
