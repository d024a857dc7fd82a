package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PASSWORD_HASHING", "")

	cfg := Load()
	assert.Equal(t, "5005", cfg.Port)
	assert.Equal(t, "thedogwastheceo", cfg.JWTSecret)
	assert.Equal(t, "file", cfg.StorageDriver)
	assert.Equal(t, "./database.json", cfg.DataFile)
	assert.False(t, cfg.PasswordHashing)
	assert.Equal(t, int64(50<<20), cfg.BodyLimitBytes())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("PASSWORD_HASHING", "true")
	t.Setenv("BODY_LIMIT_MB", "2")
	t.Setenv("DB_MAX_CONN_LIFETIME", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("ELASTICSEARCH_ADDRS", "http://es1:9200,http://es2:9200")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.True(t, cfg.PasswordHashing)
	assert.Equal(t, int64(2<<20), cfg.BodyLimitBytes())
	assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLife)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins())
	assert.Len(t, cfg.ESAddrs(), 2)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PASSWORD_HASHING", "maybe")
	t.Setenv("BODY_LIMIT_MB", "lots")
	t.Setenv("DB_MAX_CONN_LIFETIME", "forever")

	cfg := Load()
	assert.False(t, cfg.PasswordHashing)
	assert.Equal(t, 50, cfg.BodyLimitMB)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLife)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "jobs", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/jobs?sslmode=disable", cfg.PostgresDSN())
}
