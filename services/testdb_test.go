package services

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/minhtriet326/Hotel-management-system/config"
	"github.com/minhtriet326/Hotel-management-system/models"
)

// newTestDB opens a private in-memory database per test and runs the full
// migration set.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, config.Migrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		FirstName:   "An",
		LastName:    "Nguyen",
		Email:       fmt.Sprintf("%s@example.com", t.Name()),
		PhoneNumber: fmt.Sprintf("09%08d", len(t.Name())),
		Address:     "12 Ly Thuong Kiet",
	}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedRoom(t *testing.T, db *gorm.DB, number string, price int64) *models.Room {
	t.Helper()
	room := &models.Room{
		RoomNumber: number,
		RoomType:   models.RoomTypeDouble,
		Price:      decimal.NewFromInt(price),
		RoomStatus: models.RoomAvailable,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func roomStatus(t *testing.T, db *gorm.DB, roomID uint) models.RoomStatus {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, roomID).Error)
	return room.RoomStatus
}

func historyTypes(t *testing.T, db *gorm.DB, bookingID uint) []models.HistoryType {
	t.Helper()
	var entries []models.BookingHistory
	require.NoError(t, db.Where("booking_id = ?", bookingID).Order("seq").Find(&entries).Error)
	types := make([]models.HistoryType, 0, len(entries))
	for _, e := range entries {
		types = append(types, e.HistoryType)
	}
	return types
}
