package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "planets.db", cfg.DB.ConnString())
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("IS_PROD", "true")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("MAIL_USE_TLS", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.True(t, cfg.IsProd)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.True(t, cfg.Mail.UseTLS)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("MAIL_PORT", "not-a-port")

	_, err := LoadConfig(context.Background())
	assert.Error(t, err)
}

func TestConnString(t *testing.T) {
	mysql := DBConfig{Driver: "mysql", User: "u", Password: "p", Host: "h", Port: "3306", Name: "planets"}
	assert.Equal(t, "u:p@tcp(h:3306)/planets?parseTime=true", mysql.ConnString())

	explicit := DBConfig{Driver: "postgres", DSN: "postgres://x"}
	assert.Equal(t, "postgres://x", explicit.ConnString())

	pg := DBConfig{Driver: "postgres", User: "u", Password: "p", Host: "h", Port: "5432", Name: "planets"}
	assert.Equal(t, "host=h user=u password=p dbname=planets port=5432 sslmode=disable", pg.ConnString())

	// Without DB_PORT each driver dials its own well known port
	mysql.Port, pg.Port = "", ""
	assert.Equal(t, "u:p@tcp(h:3306)/planets?parseTime=true", mysql.ConnString())
	assert.Equal(t, "host=h user=u password=p dbname=planets port=5432 sslmode=disable", pg.ConnString())

	pg.Port = "6543"
	assert.Contains(t, pg.ConnString(), "port=6543")
}

func TestLoadConfig_PostgresDefaultPort(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cfg.DB.Port)
	assert.Equal(t, "host=127.0.0.1 user=u password=p dbname=planets port=5432 sslmode=disable", cfg.DB.ConnString())
}
