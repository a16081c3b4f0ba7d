package di

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"seo-backoffice/infrastructure/messaging"
	"seo-backoffice/pkg/config"
)

func newMockContainer(t *testing.T, cron string) (*Container, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	c := &Container{
		Config: &config.Config{
			App:      config.AppConfig{Name: "SEO Back-office", Port: "8080"},
			Storage:  config.StorageConfig{Type: "local", BasePath: t.TempDir()},
			Snapshot: config.SnapshotConfig{Cron: cron, Prefix: "seo-export"},
		},
		DB:              db,
		ChangePublisher: messaging.NewNoopChangePublisher(),
	}
	require.NoError(t, c.initStorage())
	require.NoError(t, c.initRepositories())
	require.NoError(t, c.initServices())
	return c, mock
}

func TestInitScheduler_Disabled(t *testing.T) {
	c, _ := newMockContainer(t, "")

	require.NoError(t, c.initScheduler())
	assert.False(t, c.JobScheduler.IsRunning())
	assert.Empty(t, c.JobScheduler.ListJobs())
}

func TestInitScheduler_SnapshotJob(t *testing.T) {
	c, mock := newMockContainer(t, "0 3 * * *")

	require.NoError(t, c.initScheduler())
	assert.True(t, c.JobScheduler.IsRunning())

	info, ok := c.JobScheduler.GetJob(snapshotJobID)
	require.True(t, ok)
	assert.Equal(t, "0 3 * * *", info.CronExpr)

	mock.ExpectClose()
	require.NoError(t, c.Cleanup())
	assert.False(t, c.JobScheduler.IsRunning())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitScheduler_InvalidCron(t *testing.T) {
	c, _ := newMockContainer(t, "sometimes")

	assert.Error(t, c.initScheduler())
}

func TestGetHandlerServices_Ping(t *testing.T) {
	c, mock := newMockContainer(t, "")

	s := c.GetHandlerServices()
	assert.Equal(t, "SEO Back-office", s.AppName)
	assert.NotNil(t, s.AuthService)
	assert.NotNil(t, s.SnapshotService)

	mock.ExpectPing()
	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
