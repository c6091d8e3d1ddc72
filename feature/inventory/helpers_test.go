package inventory_test

import (
	"testing"
	"time"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, inventory.NewStore(db).Migrate())
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, db *gorm.DB, products ...models.Product) {
	t.Helper()
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

type fakeRecord struct{}

func (fakeRecord) Key() string        { return "fake" }
func (fakeRecord) Version() time.Time { return time.Time{} }
