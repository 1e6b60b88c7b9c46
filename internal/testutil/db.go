package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/database"
	"github.com/straye-as/fieldservice-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// The pool is capped at one connection so every statement, including those in
// transactions, sees the same in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=private", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "failed to open sqlite test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// CreateTestOffer persists a draft offer with one article and one service line
func CreateTestOffer(t *testing.T, db *gorm.DB, title string) *domain.Offer {
	t.Helper()

	offer := &domain.Offer{
		Title:       title,
		ContactName: "Fjord Bakery",
		Status:      domain.OfferStatusDraft,
		Items: []domain.OfferItem{
			{Type: domain.OfferItemTypeArticle, ItemID: "HP-200", Name: "Heat pump", Quantity: 2, UnitPrice: 150, Position: 0},
			{Type: domain.OfferItemTypeService, ItemID: "SRV-INST", Name: "Installation", Quantity: 40, UnitPrice: 150, Position: 1},
		},
	}
	require.NoError(t, offer.Recalculate())
	require.NoError(t, db.Create(offer).Error)
	return offer
}

// CreateTestServiceOrder persists an open service order
func CreateTestServiceOrder(t *testing.T, db *gorm.DB, title string) *domain.ServiceOrder {
	t.Helper()

	order := &domain.ServiceOrder{
		Title:               title,
		ContactName:         "Fjord Bakery",
		Status:              domain.ServiceOrderStatusOpen,
		Priority:            domain.PriorityMedium,
		AssignedTechnicians: []string{"tech-1"},
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

// CreateTestDispatch persists a pending dispatch under order
func CreateTestDispatch(t *testing.T, db *gorm.DB, order *domain.ServiceOrder) *domain.Dispatch {
	t.Helper()

	dispatch := &domain.Dispatch{
		DispatchNumber:      "DSP-TEST-" + uuid.NewString()[:8],
		ServiceOrderID:      order.ID,
		Status:              domain.DispatchStatusPending,
		Priority:            domain.PriorityMedium,
		AssignedTechnicians: []string{"tech-1"},
	}
	require.NoError(t, db.Create(dispatch).Error)
	return dispatch
}
