package kvstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"treasury/internal/kvstore"
)

func setupGormMock(t *testing.T) (*kvstore.GormMedium, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return kvstore.NewGormMedium(db), mock
}

func TestGormMedium_ReadNotFound(t *testing.T) {
	medium, mock := setupGormMock(t)
	mock.ExpectQuery(`SELECT .* FROM "kv_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"entry_key", "value", "updated_at"}))

	_, err := medium.Read(context.Background(), "treasury_users")

	require.ErrorIs(t, err, kvstore.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormMedium_ReadFailure(t *testing.T) {
	medium, mock := setupGormMock(t)
	mock.ExpectQuery(`SELECT .* FROM "kv_entries"`).
		WillReturnError(errors.New("connection reset"))

	_, err := medium.Read(context.Background(), "treasury_users")

	require.Error(t, err)
	assert.False(t, errors.Is(err, kvstore.ErrNotFound))
}

func TestGormMedium_WriteFailure(t *testing.T) {
	medium, mock := setupGormMock(t)
	mock.ExpectExec(`INSERT INTO "kv_entries"`).
		WillReturnError(errors.New("disk full"))

	err := medium.Write(context.Background(), "treasury_users", "[]")

	require.Error(t, err)
}

func TestGormMedium_StoreSurvivesFailures(t *testing.T) {
	medium, mock := setupGormMock(t)
	mock.ExpectQuery(`SELECT .* FROM "kv_entries"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectExec(`INSERT INTO "kv_entries"`).
		WillReturnError(errors.New("disk full"))

	s := kvstore.New(medium)

	assert.Equal(t, []string{"seed"}, kvstore.Get(s, "k", []string{"seed"}))
	assert.NotPanics(t, func() { s.Set("k", []string{"v"}) })
}
