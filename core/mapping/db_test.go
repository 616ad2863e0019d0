package mapping_test

import (
	"context"
	"errors"
	"testing"

	"asset-sync/core/database"
	"asset-sync/core/mapping"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newSQLiteStore(t *testing.T) *mapping.DBStore {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := mapping.NewDBStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, mock
}

func TestDBStore_LoadEmpty(t *testing.T) {
	store := newSQLiteStore(t)

	m, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestDBStore_RoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	original := sampleMapping()
	require.NoError(t, store.Save(ctx, original))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)

	require.NoError(t, store.Save(ctx, loaded))
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, again)
}

func TestDBStore_SaveReplacesDocument(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleMapping()))

	next := mapping.New()
	next.Set("v9", mapping.KindInfographic, "new")
	require.NoError(t, store.Save(ctx, next))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, loaded)
}

func TestDBStore_LoadError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `videos`").WillReturnError(errors.New("connection reset"))

	_, err := mapping.NewDBStore(db).Load(context.Background())
	assert.ErrorContains(t, err, "load videos")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBStore_SaveRollsBackOnError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `video_assets`").WillReturnError(errors.New("lock wait timeout"))
	mock.ExpectRollback()

	err := mapping.NewDBStore(db).Save(context.Background(), sampleMapping())
	assert.ErrorContains(t, err, "clear video assets")
	assert.NoError(t, mock.ExpectationsWereMet())
}
