package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

func seedService(t *testing.T, db *gorm.DB, name string, price int64) *models.Service {
	t.Helper()
	service := &models.Service{ServiceName: name, Price: decimal.NewFromInt(price)}
	require.NoError(t, db.Create(service).Error)
	return service
}

func TestServiceUsageInclusiveDayPricing(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	usages := NewServiceUsageService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	spa := seedService(t, db, "Spa", 50)

	booking, err := bookings.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	// Same-day usage is one chargeable day.
	usage, err := usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-10", "2025-03-10", "")
	require.NoError(t, err)
	assert.True(t, usage.TotalPrice.Equal(decimal.RequireFromString("50")), "got %s", usage.TotalPrice)

	// Monday to Tuesday is two days, unlike the one night a room would bill.
	usage, err = usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-10", "2025-03-11", "")
	require.NoError(t, err)
	assert.True(t, usage.TotalPrice.Equal(decimal.RequireFromString("100")), "got %s", usage.TotalPrice)

	// Users and voucher both scale the total: 50 x 2 users x 2 days x 0.75.
	usage, err = usages.CreateServiceUsage(booking.ID, spa.ID, 2, "2025-03-10", "2025-03-11", "0.25")
	require.NoError(t, err)
	assert.True(t, usage.TotalPrice.Equal(decimal.RequireFromString("150")), "got %s", usage.TotalPrice)

	total, err := usages.TotalServicePriceOfBooking(booking.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("300")), "got %s", total)
}

func TestServiceUsageWindowValidation(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	usages := NewServiceUsageService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	spa := seedService(t, db, "Spa", 50)

	booking, err := bookings.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	var order *utils.DateOrderError
	_, err = usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-12", "2025-03-11", "")
	require.ErrorAs(t, err, &order)

	_, err = usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-09", "2025-03-11", "")
	require.ErrorAs(t, err, &order)

	_, err = usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-12", "2025-03-14", "")
	require.ErrorAs(t, err, &order)

	// The full stay window, end date included, is fine.
	_, err = usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
}

func TestServiceUsageRequiresActiveBooking(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	usages := NewServiceUsageService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	spa := seedService(t, db, "Spa", 50)

	booking, err := bookings.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	_, err = bookings.CancelBooking(booking.ID, "")
	require.NoError(t, err)

	var statusErr *utils.BookingStatusError
	_, err = usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-10", "2025-03-11", "")
	require.ErrorAs(t, err, &statusErr)
}

func TestServiceUsageUpdateRecomputesPrice(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	usages := NewServiceUsageService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	spa := seedService(t, db, "Spa", 50)
	laundry := seedService(t, db, "Laundry", 20)

	booking, err := bookings.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	usage, err := usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-10", "2025-03-10", "")
	require.NoError(t, err)

	updated, err := usages.UpdateServiceUsage(usage.ID, booking.ID, laundry.ID, 3, "2025-03-10", "2025-03-11", "")
	require.NoError(t, err)
	assert.Equal(t, laundry.ID, updated.ServiceID)
	// 20 x 3 users x 2 days.
	assert.True(t, updated.TotalPrice.Equal(decimal.RequireFromString("120")), "got %s", updated.TotalPrice)
}
