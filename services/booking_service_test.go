package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

func TestReserveRoomCreatesConfirmedBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	assert.Equal(t, models.BookingConfirmed, booking.BookingStatus)
	assert.Equal(t, "2025-03-10", utils.FormatDate(booking.CheckInDate))
	assert.Equal(t, "2025-03-13", utils.FormatDate(booking.CheckOutDate))
	assert.Equal(t, models.RoomReserved, roomStatus(t, db, room.ID))

	// Reservation itself writes nothing to the ledger.
	assert.Empty(t, historyTypes(t, db, booking.ID))
}

func TestReserveRoomAcceptsEveryDateLayout(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "10-03-2025", "13/03/2025", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", utils.FormatDate(booking.CheckInDate))
	assert.Equal(t, "2025-03-13", utils.FormatDate(booking.CheckOutDate))
}

func TestReserveRoomRejectsBadDates(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	_, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-13", "2025-03-10", "")
	var order *utils.DateOrderError
	require.ErrorAs(t, err, &order)

	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-10", "")
	require.ErrorAs(t, err, &order)

	_, err = svc.ReserveRoom(customer.ID, room.ID, "30-02-2024", "2025-03-10", "")
	var format *utils.DateFormatError
	require.ErrorAs(t, err, &format)
}

func TestReserveRoomOverlapDetection(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	_, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	// Any true overlap is rejected.
	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-03-12", "2025-03-15", "")
	var notAvail *utils.RoomNotAvailableError
	require.ErrorAs(t, err, &notAvail)

	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-03-09", "2025-03-11", "")
	require.ErrorAs(t, err, &notAvail)

	// Back-to-back is fine: check-out day equals the next check-in day.
	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-03-13", "2025-03-16", "")
	require.NoError(t, err)

	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-03-08", "2025-03-10", "")
	require.NoError(t, err)
}

func TestReserveRoomVoucherValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	var validation *utils.ValidationError
	_, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "1.5")
	require.ErrorAs(t, err, &validation)

	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "-0.1")
	require.ErrorAs(t, err, &validation)

	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "0.125")
	require.ErrorAs(t, err, &validation)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "0.25")
	require.NoError(t, err)
	assert.True(t, booking.BookingVoucher.Equal(decimal.RequireFromString("0.25")))
}

func TestCheckInFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	// Actual dates overwrite the planned ones.
	checked, err := svc.CheckIn(booking.ID, "2025-03-11", "2025-03-14", "")
	require.NoError(t, err)

	assert.Equal(t, models.BookingCheckedIn, checked.BookingStatus)
	assert.Equal(t, "2025-03-11", utils.FormatDate(checked.CheckInDate))
	assert.Equal(t, "2025-03-14", utils.FormatDate(checked.CheckOutDate))
	assert.Equal(t, models.RoomOccupied, roomStatus(t, db, room.ID))
	assert.Equal(t, []models.HistoryType{models.HistoryCheckIn}, historyTypes(t, db, booking.ID))

	var entry models.BookingHistory
	require.NoError(t, db.Where("booking_id = ?", booking.ID).First(&entry).Error)
	assert.Equal(t, "Check-in", entry.Note)
	assert.Equal(t, uint(1), entry.Seq)
}

func TestCheckInRequiresConfirmedStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	_, err = svc.CancelBooking(booking.ID, "")
	require.NoError(t, err)

	statusBefore := roomStatus(t, db, room.ID)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-13", "")
	var statusErr *utils.BookingStatusError
	require.ErrorAs(t, err, &statusErr)

	// The failed transition leaves the room untouched.
	assert.Equal(t, statusBefore, roomStatus(t, db, room.ID))
}

func TestCheckOutComputesFinalPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "0.10")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	// 3 nights x 100 x (1 - 0.10) = 270.
	checked, price, err := svc.CheckOut(booking.ID, "", "")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("270")), "got %s", price)

	assert.Equal(t, models.BookingCheckedOut, checked.BookingStatus)
	assert.Equal(t, models.RoomDirty, roomStatus(t, db, room.ID))
	assert.Equal(t,
		[]models.HistoryType{models.HistoryCheckIn, models.HistoryCheckOut},
		historyTypes(t, db, booking.ID))

	// The price is frozen in the CHECK_OUT entry.
	var entry models.BookingHistory
	require.NoError(t, db.
		Where("booking_id = ? AND history_type = ?", booking.ID, models.HistoryCheckOut).
		First(&entry).Error)
	require.True(t, entry.FinalTotalPrice.Valid)
	assert.True(t, entry.FinalTotalPrice.Decimal.Equal(price))
}

func TestCheckOutRequiresCheckedIn(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	_, _, err = svc.CheckOut(booking.ID, "", "")
	var statusErr *utils.BookingStatusError
	require.ErrorAs(t, err, &statusErr)

	// Checking out twice fails too.
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	_, _, err = svc.CheckOut(booking.ID, "", "")
	require.NoError(t, err)
	_, _, err = svc.CheckOut(booking.ID, "", "")
	require.ErrorAs(t, err, &statusErr)
}

func TestCheckOutEarlyDepartureReprices(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)

	// Leaving two days early shrinks the charge to 2 nights.
	_, price, err := svc.CheckOut(booking.ID, "2025-03-12", "")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("200")), "got %s", price)

	// An actual check-out on or before check-in is rejected.
	booking2, err := svc.ReserveRoom(customer.ID, room.ID, "2025-04-10", "2025-04-15", "")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking2.ID, "2025-04-10", "2025-04-15", "")
	require.NoError(t, err)
	_, _, err = svc.CheckOut(booking2.ID, "2025-04-10", "")
	var order *utils.DateOrderError
	require.ErrorAs(t, err, &order)
}

func TestExtendStay(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	var order *utils.DateOrderError
	_, err = svc.ExtendStay(booking.ID, "2025-03-12", "")
	require.ErrorAs(t, err, &order)

	extended, err := svc.ExtendStay(booking.ID, "2025-03-16", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-16", utils.FormatDate(extended.CheckOutDate))
	assert.Equal(t,
		[]models.HistoryType{models.HistoryCheckIn, models.HistoryExtendStay},
		historyTypes(t, db, booking.ID))
}

func TestExtendStayBlockedByUpcomingBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	// Someone else holds the room from the 15th.
	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-03-15", "2025-03-18", "")
	require.NoError(t, err)

	var order *utils.DateOrderError
	_, err = svc.ExtendStay(booking.ID, "2025-03-16", "")
	require.ErrorAs(t, err, &order)

	// Up to their check-in day it still works.
	_, err = svc.ExtendStay(booking.ID, "2025-03-15", "")
	require.NoError(t, err)
}

func TestChangeRoomGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	other := seedRoom(t, db, "102", 150)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)

	var notAvail *utils.RoomNotAvailableError
	_, err = svc.ChangeRoom(booking.ID, room.ID, "2025-03-12", "")
	require.ErrorAs(t, err, &notAvail)

	// DIRTY and MAINTENANCE rooms cannot receive guests.
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", other.ID).
		Update("room_status", models.RoomDirty).Error)
	_, err = svc.ChangeRoom(booking.ID, other.ID, "2025-03-12", "")
	require.ErrorAs(t, err, &notAvail)
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", other.ID).
		Update("room_status", models.RoomAvailable).Error)

	// The change date must fall inside [check-in, check-out).
	var order *utils.DateOrderError
	_, err = svc.ChangeRoom(booking.ID, other.ID, "2025-03-09", "")
	require.ErrorAs(t, err, &order)
	_, err = svc.ChangeRoom(booking.ID, other.ID, "2025-03-15", "")
	require.ErrorAs(t, err, &order)
}

func TestChangeRoomSegmentedPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	other := seedRoom(t, db, "102", 150)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)

	moved, err := svc.ChangeRoom(booking.ID, other.ID, "2025-03-12", "")
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.RoomID)
	assert.Equal(t, models.RoomMaintenance, roomStatus(t, db, room.ID))
	assert.Equal(t, models.RoomOccupied, roomStatus(t, db, other.ID))

	// The reassignment is persisted, not just reflected on the returned
	// struct; the new room now blocks overlapping reservations.
	var stored models.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Equal(t, other.ID, stored.RoomID)

	var notAvail *utils.RoomNotAvailableError
	_, err = svc.ReserveRoom(customer.ID, other.ID, "2025-03-13", "2025-03-14", "")
	require.ErrorAs(t, err, &notAvail)

	// 2 nights at 100 in room 101, then 3 nights at 150 in room 102.
	_, price, err := svc.CheckOut(booking.ID, "", "")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("650")), "got %s", price)
}

func TestChangeRoomDateCannotRegress(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	second := seedRoom(t, db, "102", 150)
	third := seedRoom(t, db, "103", 200)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)

	_, err = svc.ChangeRoom(booking.ID, second.ID, "2025-03-12", "")
	require.NoError(t, err)

	var order *utils.DateOrderError
	_, err = svc.ChangeRoom(booking.ID, third.ID, "2025-03-11", "")
	require.ErrorAs(t, err, &order)

	// The same date is allowed; ties are broken by append order.
	_, err = svc.ChangeRoom(booking.ID, third.ID, "2025-03-12", "")
	require.NoError(t, err)

	// 2 nights at 100, zero nights at 150, 3 nights at 200.
	_, price, err := svc.CheckOut(booking.ID, "", "")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("800")), "got %s", price)
}

func TestChangeRoomBeforeCheckInNotCharged(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	other := seedRoom(t, db, "102", 150)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)

	// Changing rooms while still CONFIRMED records the check-in date, so the
	// whole stay is priced in the new room.
	moved, err := svc.ChangeRoom(booking.ID, other.ID, "2025-03-12", "")
	require.NoError(t, err)
	assert.Equal(t, other.ID, moved.RoomID)
	assert.Equal(t, models.RoomReserved, roomStatus(t, db, other.ID))

	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)
	_, price, err := svc.CheckOut(booking.ID, "", "")
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("750")), "got %s", price)
}

func TestCancelBookingRoomStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	solo, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(solo.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.BookingStatus)
	assert.Equal(t, models.RoomAvailable, roomStatus(t, db, room.ID))
	assert.Equal(t, []models.HistoryType{models.HistoryCancel}, historyTypes(t, db, solo.ID))

	// With a second CONFIRMED booking on the room it stays RESERVED.
	first, err := svc.ReserveRoom(customer.ID, room.ID, "2025-04-10", "2025-04-13", "")
	require.NoError(t, err)
	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-04-13", "2025-04-16", "")
	require.NoError(t, err)

	_, err = svc.CancelBooking(first.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.RoomReserved, roomStatus(t, db, room.ID))

	// Only CONFIRMED bookings can be cancelled.
	var statusErr *utils.BookingStatusError
	_, err = svc.CancelBooking(first.ID, "")
	require.ErrorAs(t, err, &statusErr)
}

func TestUpdateBookingSkipsAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	_, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	second, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-13", "2025-03-16", "")
	require.NoError(t, err)

	// The administrative edit path accepts an overlapping range.
	updated, err := svc.UpdateBooking(second.ID, room.ID, "2025-03-11", "2025-03-14", "0.50")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", utils.FormatDate(updated.CheckInDate))
	assert.True(t, updated.BookingVoucher.Equal(decimal.RequireFromString("0.50")))
}

func TestUpdateBookingRoomReassignment(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	other := seedRoom(t, db, "102", 150)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)

	updated, err := svc.UpdateBooking(booking.ID, other.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.RoomID)
	assert.Equal(t, "102", updated.Room.RoomNumber)

	// The new room id is what hit the database.
	var stored models.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Equal(t, other.ID, stored.RoomID)

	// Availability now tracks the new room, not the old one.
	var notAvail *utils.RoomNotAvailableError
	_, err = svc.ReserveRoom(customer.ID, other.ID, "2025-03-11", "2025-03-14", "")
	require.ErrorAs(t, err, &notAvail)
	_, err = svc.ReserveRoom(customer.ID, room.ID, "2025-03-11", "2025-03-14", "")
	require.NoError(t, err)
}

func TestDeleteBookingCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	usageSvc := NewServiceUsageService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)

	service := &models.Service{ServiceName: "Laundry", Price: decimal.NewFromInt(20)}
	require.NoError(t, db.Create(service).Error)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-13", "")
	require.NoError(t, err)
	_, err = usageSvc.CreateServiceUsage(booking.ID, service.ID, 1, "2025-03-10", "2025-03-10", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(booking.ID))

	var histories, usages int64
	require.NoError(t, db.Model(&models.BookingHistory{}).Where("booking_id = ?", booking.ID).Count(&histories).Error)
	require.NoError(t, db.Model(&models.ServiceUsage{}).Where("booking_id = ?", booking.ID).Count(&usages).Error)
	assert.Zero(t, histories)
	assert.Zero(t, usages)

	var notFound *utils.NotFoundError
	_, err = svc.GetBookingByID(booking.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestFinalTotalPriceWithoutCheckInAfterChange(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)
	room := seedRoom(t, db, "101", 100)
	other := seedRoom(t, db, "102", 150)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)
	_, err = svc.CheckIn(booking.ID, "2025-03-10", "2025-03-15", "")
	require.NoError(t, err)
	_, err = svc.ChangeRoom(booking.ID, other.ID, "2025-03-12", "")
	require.NoError(t, err)

	// The replay needs the CHECK_IN entry to know the starting room.
	require.NoError(t, db.
		Where("booking_id = ? AND history_type = ?", booking.ID, models.HistoryCheckIn).
		Delete(&models.BookingHistory{}).Error)

	var statusErr *utils.BookingStatusError
	_, err = svc.FinalTotalPrice(booking.ID)
	require.ErrorAs(t, err, &statusErr)
}

func TestFinalTotalPriceBankersRounding(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db)

	room := &models.Room{
		RoomNumber: "101",
		RoomType:   models.RoomTypeSingle,
		Price:      decimal.RequireFromString("33.35"),
		RoomStatus: models.RoomAvailable,
	}
	require.NoError(t, db.Create(room).Error)

	booking, err := svc.ReserveRoom(customer.ID, room.ID, "2025-03-10", "2025-03-11", "0.50")
	require.NoError(t, err)

	// 33.35 x 0.5 = 16.675, half-to-even gives 16.68.
	price, err := svc.FinalTotalPrice(booking.ID)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("16.68")), "got %s", price)
}
