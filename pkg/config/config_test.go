package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "PROGRAMS_FILE", "ADMIN_EMAILS", "MAX_UPLOAD_MB", "FETCH_TIMEOUT_SECONDS", "DB_MAX_CONNS"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, "parsed_programs.json", cfg.ProgramsFile)
	assert.Nil(t, cfg.AdminEmails)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes())
	assert.Equal(t, time.Minute, cfg.FetchTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_EMAILS", " a@itmo.ru, ,b@itmo.ru")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "-5")
	t.Setenv("DB_MAX_CONNS", "4")
	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []string{"a@itmo.ru", "b@itmo.ru"}, cfg.AdminEmails)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes())
	assert.Equal(t, time.Minute, cfg.FetchTimeout)
	assert.Equal(t, 4, cfg.DBMaxConns)
}
