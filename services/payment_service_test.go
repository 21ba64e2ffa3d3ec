package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

func TestCreatePaymentAddsStayAndServices(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	usages := NewServiceUsageService(db)
	payments := NewPaymentService(db, bookings)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	spa := seedService(t, db, "Spa", 50)

	booking, err := bookings.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	_, err = usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-10", "2025-03-10", "")
	require.NoError(t, err)

	// 3 nights x 100 for the stay plus one 50 service day.
	payment, err := payments.CreatePayment(booking.ID, "2", "1")
	require.NoError(t, err)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("350")), "got %s", payment.Amount)
	assert.Equal(t, models.PaymentCash, payment.PaymentMethod)
	assert.Equal(t, models.PaymentCompleted, payment.PaymentStatus)

	// One payment per booking.
	_, err = payments.CreatePayment(booking.ID, "1", "2")
	var conflict *utils.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUpdatePaymentRecomputesAmount(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	usages := NewServiceUsageService(db)
	payments := NewPaymentService(db, bookings)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	spa := seedService(t, db, "Spa", 50)

	booking, err := bookings.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	payment, err := payments.CreatePayment(booking.ID, "1", "2")
	require.NoError(t, err)
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("300")))

	// A service added after the fact shows up on update.
	_, err = usages.CreateServiceUsage(booking.ID, spa.ID, 1, "2025-03-10", "2025-03-10", "")
	require.NoError(t, err)

	updated, err := payments.UpdatePayment(payment.ID, "1", "1")
	require.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("350")), "got %s", updated.Amount)
	assert.Equal(t, models.PaymentCompleted, updated.PaymentStatus)
}

func TestCreatePaymentUnknownEnumIndex(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	payments := NewPaymentService(db, bookings)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := bookings.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	var notFound *utils.NotFoundError
	_, err = payments.CreatePayment(booking.ID, "3", "1")
	require.ErrorAs(t, err, &notFound)
	_, err = payments.CreatePayment(booking.ID, "1", "4")
	require.ErrorAs(t, err, &notFound)
}
