package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"serviturnos-api/internal/domain/entity"
	"serviturnos-api/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.TimeSlot{}))
	require.NoError(t, database.SeedTimeSlots(db))

	return db
}

func TestTimeSlotCatalogCount(t *testing.T) {
	db := newSeededDB(t)
	repo := NewTimeSlotRepository()
	ctx := context.Background()

	count, err := repo.Count(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 98, count)

	// Reseeding is idempotent
	require.NoError(t, database.SeedTimeSlots(db))

	count, err = repo.Count(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 98, count)
}

func TestTimeSlotFindByDayAndSlot(t *testing.T) {
	db := newSeededDB(t)
	repo := NewTimeSlotRepository()
	ctx := context.Background()

	slot, err := repo.FindByDayAndSlot(ctx, db, entity.Monday, entity.SlotBand("07:00-08:00"))
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, entity.Monday, slot.Day)
	assert.Equal(t, entity.SlotBand("07:00-08:00"), slot.Slot)

	byID, err := repo.FindByID(ctx, db, slot.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, slot.ID, byID.ID)

	// Outside the 07:00-21:00 grid
	missing, err := repo.FindByDayAndSlot(ctx, db, entity.Monday, entity.SlotBand("22:00-23:00"))
	require.NoError(t, err)
	assert.Nil(t, missing)
}
