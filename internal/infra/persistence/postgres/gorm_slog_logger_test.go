package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"credkeeper/config"
	deliverycontext "credkeeper/internal/delivery/context"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDebugConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	return cfg
}

func TestGormSlogLogger_DoesNotRenderParameters(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(base, newDebugConfig()),
	})
	require.NoError(t, err)

	mock.ExpectQuery(insertUserQuery).
		WithArgs("u@test.com", secretHash, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(uuid.New().String(), "u@test.com", secretHash, time.Now()))

	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-42")))
	_, err = NewUserRecordStore(db).Save(ctx, "u@test.com", secretHash)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "GORM query")
	assert.Contains(t, out, "$2")
	assert.Contains(t, out, "req-42")
	assert.NotContains(t, out, secretHash)
	assert.NotContains(t, out, "u@test.com")
}

func TestGormSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &config.Config{})

	l.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")

	buf.Reset()
	l.LogMode(logger.Silent).Error(context.Background(), "silenced")
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())
}
