package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "")
	t.Setenv("SNAPSHOT_CRON", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("NATS_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, "seo.changes", cfg.NATS.SubjectPrefix)
	assert.Empty(t, cfg.NATS.URL)
	assert.Empty(t, cfg.Snapshot.Cron)
	assert.False(t, cfg.Database.AutoMigrate)
}

func TestLoadConfig_RejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE_TYPE", "ftp")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "url wins",
			cfg:  DatabaseConfig{URL: "postgres://u:p@db:5432/seo", Host: "ignored"},
			want: "postgres://u:p@db:5432/seo",
		},
		{
			name: "host fields",
			cfg:  DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "seo", SSLMode: "disable"},
			want: "host=db user=u password=p dbname=seo port=5432 sslmode=disable TimeZone=UTC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("X_FLAG", "not-a-bool")
	assert.True(t, getBool("X_FLAG", true))

	t.Setenv("X_FLAG", "1")
	assert.True(t, getBool("X_FLAG", false))
}
