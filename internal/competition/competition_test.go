package competition

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Competition{}))
	return db
}

func TestRegistry_Exists(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&Competition{ID: "c1", Name: "Regional Cup", CreatedAt: time.Now()}).Error)
	reg := NewRegistry(db)
	ctx := context.Background()

	ok, err := reg.Exists(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = reg.Exists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRequire(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&Competition{ID: "c1", Name: "Regional Cup", CreatedAt: time.Now()}).Error)
	reg := NewRegistry(db)
	ctx := context.Background()

	assert.NoError(t, Require(ctx, reg, "c1"))
	assert.ErrorIs(t, Require(ctx, reg, "c2"), ErrCompetitionNotFound)
}
