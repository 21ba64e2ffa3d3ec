package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minhtriet326/Hotel-management-system/models"
	"github.com/minhtriet326/Hotel-management-system/utils"
)

// BookingService owns the booking lifecycle: every status transition runs
// in a single transaction that locks the affected room row(s), so the
// availability check and the subsequent writes are serialized against
// concurrent reservations on the same room.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// lockForUpdate adds a row lock on mysql. SQLite (used by the test suite)
// has no FOR UPDATE and serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func parseVoucher(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{field: "must be a decimal number"},
		}
	}
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) || v.Exponent() < -2 {
		return decimal.Decimal{}, &utils.ValidationError{
			Message: "One or more fields are not valid!",
			Fields:  map[string]string{field: "must be between 0.0 and 1.0 with at most two fractional digits"},
		}
	}
	return v, nil
}

func findBooking(tx *gorm.DB, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Booking", "bookingId", fmt.Sprint(bookingID))
		}
		return nil, err
	}
	return &booking, nil
}

func findRoom(tx *gorm.DB, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Room", "roomId", fmt.Sprint(roomID))
		}
		return nil, err
	}
	return &room, nil
}

// isRoomAvailable reports whether the half-open range [checkIn, checkOut)
// is free of CONFIRMED and CHECKED_IN bookings on the room. Pure query.
func isRoomAvailable(tx *gorm.DB, roomID uint, checkIn, checkOut datatypes.Date) (bool, error) {
	var blocking []models.Booking
	if err := tx.
		Where("room_id = ? AND booking_status IN ?", roomID,
			[]models.BookingStatus{models.BookingConfirmed, models.BookingCheckedIn}).
		Find(&blocking).Error; err != nil {
		return false, err
	}
	for _, b := range blocking {
		if utils.DateBefore(checkIn, b.CheckOutDate) && utils.DateAfter(checkOut, b.CheckInDate) {
			return false, nil
		}
	}
	return true, nil
}

// appendHistory writes one ledger entry for a lifecycle transition, inside
// the caller's transaction. Seq is the next per-booking sequence number.
func appendHistory(tx *gorm.DB, booking *models.Booking, room *models.Room, entry models.BookingHistory) error {
	var maxSeq uint
	if err := tx.Model(&models.BookingHistory{}).
		Where("booking_id = ?", booking.ID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&maxSeq).Error; err != nil {
		return err
	}

	entry.Seq = maxSeq + 1
	entry.ActualCheckInDate = booking.CheckInDate
	entry.ActualCheckOutDate = booking.CheckOutDate
	entry.BookingID = booking.ID
	entry.RoomID = room.ID

	return tx.Create(&entry).Error
}

func defaultNote(note, fallback string) string {
	if note == "" {
		return fallback
	}
	return note
}

// ReserveRoom creates a CONFIRMED booking after verifying the room is free
// for the requested half-open range.
func (s *BookingService) ReserveRoom(customerID, roomID uint, checkIn, checkOut, voucher string) (*models.Booking, error) {
	in, out, err := utils.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	discount, err := parseVoucher("bookingVoucher", voucher)
	if err != nil {
		return nil, err
	}

	var customer models.Customer
	if err := s.DB.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Customer", "customerId", fmt.Sprint(customerID))
		}
		return nil, err
	}

	var booking *models.Booking
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		room, err := findRoom(lockForUpdate(tx), roomID)
		if err != nil {
			return err
		}

		free, err := isRoomAvailable(tx, room.ID, in, out)
		if err != nil {
			return err
		}
		if !free {
			return &utils.RoomNotAvailableError{
				Message: fmt.Sprintf("Room %s is not available for the specified dates.", room.RoomNumber),
			}
		}

		// The room shows RESERVED unless somebody is currently staying in it.
		var checkedIn int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND booking_status = ?", room.ID, models.BookingCheckedIn).
			Count(&checkedIn).Error; err != nil {
			return err
		}
		if checkedIn == 0 {
			room.RoomStatus = models.RoomReserved
		} else {
			room.RoomStatus = models.RoomOccupied
		}
		if err := tx.Save(room).Error; err != nil {
			return err
		}

		booking = &models.Booking{
			CheckInDate:    in,
			CheckOutDate:   out,
			BookingStatus:  models.BookingConfirmed,
			BookingVoucher: discount,
			CustomerID:     customer.ID,
			RoomID:         room.ID,
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}

	return s.reload(booking.ID)
}

// CheckIn moves a CONFIRMED booking to CHECKED_IN, overwriting the planned
// dates with the actual ones, flips the room to OCCUPIED and appends a
// CHECK_IN ledger entry.
func (s *BookingService) CheckIn(bookingID uint, actualCheckIn, actualCheckOut, note string) (*models.Booking, error) {
	in, out, err := utils.ParseDateRange(actualCheckIn, actualCheckOut)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := findBooking(lockForUpdate(tx), bookingID)
		if err != nil {
			return err
		}
		if booking.BookingStatus != models.BookingConfirmed {
			return &utils.BookingStatusError{Message: "This booking has not been confirmed!"}
		}

		booking.BookingStatus = models.BookingCheckedIn
		booking.CheckInDate = in
		booking.CheckOutDate = out

		room, err := findRoom(lockForUpdate(tx), booking.RoomID)
		if err != nil {
			return err
		}
		room.RoomStatus = models.RoomOccupied

		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		if err := tx.Save(room).Error; err != nil {
			return err
		}
		return appendHistory(tx, booking, room, models.BookingHistory{
			HistoryType: models.HistoryCheckIn,
			Note:        defaultNote(note, "Check-in"),
		})
	})
	if err != nil {
		return nil, err
	}

	return s.reload(bookingID)
}

// CheckOut closes a CHECKED_IN booking. When an actual check-out date is
// supplied it overwrites the planned one; the final total price is frozen
// into the CHECK_OUT ledger entry at this instant.
func (s *BookingService) CheckOut(bookingID uint, actualCheckOut, note string) (*models.Booking, decimal.Decimal, error) {
	var finalPrice decimal.Decimal

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := findBooking(lockForUpdate(tx), bookingID)
		if err != nil {
			return err
		}

		var out *datatypes.Date
		if actualCheckOut != "" {
			parsed, err := utils.ParseDate(actualCheckOut)
			if err != nil {
				return err
			}
			if !utils.DateBefore(booking.CheckInDate, parsed) {
				return &utils.DateOrderError{Message: "Check-in date must be before check-out date!"}
			}
			out = &parsed
		}

		if booking.BookingStatus != models.BookingCheckedIn {
			return &utils.BookingStatusError{Message: "This booking has not been checked-in!"}
		}
		booking.BookingStatus = models.BookingCheckedOut
		if out != nil {
			booking.CheckOutDate = *out
		}

		room, err := findRoom(lockForUpdate(tx), booking.RoomID)
		if err != nil {
			return err
		}
		room.RoomStatus = models.RoomDirty

		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		if err := tx.Save(room).Error; err != nil {
			return err
		}

		finalPrice, err = s.finalTotalPrice(tx, bookingID)
		if err != nil {
			return err
		}
		return appendHistory(tx, booking, room, models.BookingHistory{
			HistoryType:     models.HistoryCheckOut,
			Note:            defaultNote(note, "Check-out"),
			FinalTotalPrice: decimal.NewNullDecimal(finalPrice),
		})
	})
	if err != nil {
		return nil, decimal.Decimal{}, err
	}

	booking, err := s.reload(bookingID)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	return booking, finalPrice, nil
}

// ExtendStay pushes a CHECKED_IN booking's check-out date forward, provided
// no CONFIRMED booking on the room begins before the new date.
func (s *BookingService) ExtendStay(bookingID uint, newCheckOut, note string) (*models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := findBooking(lockForUpdate(tx), bookingID)
		if err != nil {
			return err
		}
		if booking.BookingStatus != models.BookingCheckedIn {
			return &utils.BookingStatusError{Message: "This booking has not been checked-in!"}
		}

		newOut, err := utils.ParseDate(newCheckOut)
		if err != nil {
			return err
		}
		if !utils.DateAfter(newOut, booking.CheckOutDate) {
			return &utils.DateOrderError{Message: "The new check-out date must be after the old check-out date!"}
		}

		var confirmed []models.Booking
		if err := tx.
			Where("room_id = ? AND booking_status = ?", booking.RoomID, models.BookingConfirmed).
			Find(&confirmed).Error; err != nil {
			return err
		}
		for _, other := range confirmed {
			if utils.DateAfter(newOut, other.CheckInDate) {
				return &utils.DateOrderError{Message: "Cannot extend stay. The room is not available for the requested dates."}
			}
		}

		booking.CheckOutDate = newOut

		room, err := findRoom(lockForUpdate(tx), booking.RoomID)
		if err != nil {
			return err
		}

		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		return appendHistory(tx, booking, room, models.BookingHistory{
			HistoryType: models.HistoryExtendStay,
			Note:        defaultNote(note, "Extended stay"),
		})
	})
	if err != nil {
		return nil, err
	}

	return s.reload(bookingID)
}

// ChangeRoom moves a CONFIRMED or CHECKED_IN booking to another room. The
// old room goes to MAINTENANCE; the new one to RESERVED or OCCUPIED
// depending on the booking status. For a CONFIRMED booking the recorded
// change date is the check-in date, so a pre-stay change never becomes a
// chargeable price segment.
func (s *BookingService) ChangeRoom(bookingID, newRoomID uint, changeDate, note string) (*models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := findBooking(lockForUpdate(tx), bookingID)
		if err != nil {
			return err
		}
		newRoom, err := findRoom(lockForUpdate(tx), newRoomID)
		if err != nil {
			return err
		}

		if newRoom.ID == booking.RoomID {
			return &utils.RoomNotAvailableError{Message: "The new room must be different from the current room!"}
		}
		if newRoom.RoomStatus != models.RoomAvailable && newRoom.RoomStatus != models.RoomReserved {
			return &utils.RoomNotAvailableError{
				Message: fmt.Sprintf("Room %s is not ready for guests to change to!", newRoom.RoomNumber),
			}
		}

		status := booking.BookingStatus
		if status != models.BookingConfirmed && status != models.BookingCheckedIn {
			return &utils.BookingStatusError{Message: "This booking has not been confirmed or checked-in!"}
		}

		moveDate, err := utils.ParseDate(changeDate)
		if err != nil {
			return err
		}
		if utils.DateBefore(moveDate, booking.CheckInDate) || !utils.DateBefore(moveDate, booking.CheckOutDate) {
			return &utils.DateOrderError{Message: "Room change date cannot be before check-in date AND must be before check-out date!"}
		}

		lastChange, err := lastRoomChange(tx, booking.ID)
		if err != nil {
			return err
		}
		if lastChange != nil && utils.DateBefore(moveDate, *lastChange.ChangeDate) {
			return &utils.DateOrderError{Message: "New room change date cannot be before old room change date!"}
		}

		// A CONFIRMED booking must clear the whole stay on the new room; a
		// CHECKED_IN one only the remaining interval.
		from := booking.CheckInDate
		if status == models.BookingCheckedIn {
			from = moveDate
		}
		free, err := isRoomAvailable(tx, newRoom.ID, from, booking.CheckOutDate)
		if err != nil {
			return err
		}
		if !free {
			return &utils.RoomNotAvailableError{
				Message: fmt.Sprintf("Room %s is not available for the specified dates.", newRoom.RoomNumber),
			}
		}

		oldRoom, err := findRoom(lockForUpdate(tx), booking.RoomID)
		if err != nil {
			return err
		}
		oldRoom.RoomStatus = models.RoomMaintenance
		if err := tx.Save(oldRoom).Error; err != nil {
			return err
		}

		if status == models.BookingConfirmed {
			newRoom.RoomStatus = models.RoomReserved
		} else {
			newRoom.RoomStatus = models.RoomOccupied
		}
		if err := tx.Save(newRoom).Error; err != nil {
			return err
		}

		// Reassign the association too: gorm derives the room_id foreign key
		// from the loaded Room when saving, and findBooking preloads it.
		booking.RoomID = newRoom.ID
		booking.Room = *newRoom
		if err := tx.Save(booking).Error; err != nil {
			return err
		}

		recorded := moveDate
		if status == models.BookingConfirmed {
			recorded = booking.CheckInDate
		}
		return appendHistory(tx, booking, newRoom, models.BookingHistory{
			HistoryType: models.HistoryChangeRoom,
			Note:        defaultNote(note, "Changed room"),
			ChangeDate:  &recorded,
		})
	})
	if err != nil {
		return nil, err
	}

	return s.reload(bookingID)
}

// CancelBooking cancels a CONFIRMED booking. The room returns to AVAILABLE
// only when this was its sole CONFIRMED booking, otherwise it stays
// RESERVED for the remaining one(s).
func (s *BookingService) CancelBooking(bookingID uint, note string) (*models.Booking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		booking, err := findBooking(lockForUpdate(tx), bookingID)
		if err != nil {
			return err
		}
		if booking.BookingStatus != models.BookingConfirmed {
			return &utils.BookingStatusError{Message: "This booking cannot be canceled as it has not been confirmed."}
		}

		var confirmedOnRoom int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND booking_status = ?", booking.RoomID, models.BookingConfirmed).
			Count(&confirmedOnRoom).Error; err != nil {
			return err
		}

		booking.BookingStatus = models.BookingCancelled

		room, err := findRoom(lockForUpdate(tx), booking.RoomID)
		if err != nil {
			return err
		}
		if confirmedOnRoom == 1 {
			room.RoomStatus = models.RoomAvailable
		} else {
			room.RoomStatus = models.RoomReserved
		}

		if err := tx.Save(booking).Error; err != nil {
			return err
		}
		if err := tx.Save(room).Error; err != nil {
			return err
		}
		return appendHistory(tx, booking, room, models.BookingHistory{
			HistoryType: models.HistoryCancel,
			Note:        defaultNote(note, "Cancel"),
		})
	})
	if err != nil {
		return nil, err
	}

	return s.reload(bookingID)
}

// UpdateBooking overwrites dates, voucher and room directly. Unlike
// ReserveRoom it performs no availability re-check; this is the
// administrative edit path and callers are trusted not to create overlaps.
func (s *BookingService) UpdateBooking(bookingID, roomID uint, checkIn, checkOut, voucher string) (*models.Booking, error) {
	in, out, err := utils.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	discount, err := parseVoucher("bookingVoucher", voucher)
	if err != nil {
		return nil, err
	}

	booking, err := findBooking(s.DB, bookingID)
	if err != nil {
		return nil, err
	}
	room, err := findRoom(s.DB, roomID)
	if err != nil {
		return nil, err
	}

	booking.CheckInDate = in
	booking.CheckOutDate = out
	booking.BookingVoucher = discount
	// Both the foreign key and the loaded association must move, or gorm
	// writes the old room's id back on save.
	booking.RoomID = room.ID
	booking.Room = *room

	if err := s.DB.Save(booking).Error; err != nil {
		return nil, err
	}
	return s.reload(bookingID)
}

// DeleteBooking hard-deletes a booking together with its history, service
// usages and payment, all in one transaction.
func (s *BookingService) DeleteBooking(bookingID uint) error {
	booking, err := findBooking(s.DB, bookingID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.BookingHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.ServiceUsage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, booking.ID).Error
	})
}

// FinalTotalPrice computes the amount due for the stay: the flat path when
// the booking never changed rooms, otherwise a replay of its CHANGE_ROOM
// ledger entries as (room, until-date) segments.
func (s *BookingService) FinalTotalPrice(bookingID uint) (decimal.Decimal, error) {
	return s.finalTotalPrice(s.DB, bookingID)
}

func (s *BookingService) finalTotalPrice(tx *gorm.DB, bookingID uint) (decimal.Decimal, error) {
	booking, err := findBooking(tx, bookingID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	var changes []models.BookingHistory
	if err := tx.Preload("Room").
		Where("booking_id = ? AND history_type = ? AND change_date >= ?",
			booking.ID, models.HistoryChangeRoom, booking.CheckInDate).
		Order("change_date, seq").
		Find(&changes).Error; err != nil {
		return decimal.Decimal{}, err
	}

	if len(changes) == 0 {
		return booking.FlatStayPrice(), nil
	}

	// The replay starts from the room recorded at check-in; a booking that
	// changed rooms without ever checking in cannot be priced this way.
	var checkInEntry models.BookingHistory
	if err := tx.Preload("Room").
		Where("booking_id = ? AND history_type = ?", booking.ID, models.HistoryCheckIn).
		Order("seq").
		First(&checkInEntry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Decimal{}, &utils.BookingStatusError{Message: "This booking has not been checked-in!"}
		}
		return decimal.Decimal{}, err
	}

	currentDate := booking.CheckInDate
	currentRoom := checkInEntry.Room
	total := decimal.Zero

	for _, change := range changes {
		days := utils.DaysBetween(currentDate, *change.ChangeDate)
		total = total.Add(currentRoom.Price.Mul(decimal.NewFromInt(days)))
		currentDate = *change.ChangeDate
		currentRoom = change.Room
	}

	remaining := utils.DaysBetween(currentDate, booking.CheckOutDate)
	total = total.Add(currentRoom.Price.Mul(decimal.NewFromInt(remaining)))

	voucher := decimal.NewFromInt(1).Sub(booking.BookingVoucher)
	return total.Mul(voucher).RoundBank(2), nil
}

// lastRoomChange returns the ledger entry with the latest change date for
// the booking, ties broken by the per-booking sequence; nil when the
// booking never changed rooms.
func lastRoomChange(tx *gorm.DB, bookingID uint) (*models.BookingHistory, error) {
	var entry models.BookingHistory
	err := tx.
		Where("booking_id = ? AND change_date IS NOT NULL", bookingID).
		Order("change_date DESC, seq DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *BookingService) reload(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.
		Preload("Room").
		Preload("Customer").
		Preload("ServiceUsages.Service").
		First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// Reads

func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Preload("Room").Preload("Customer").Preload("ServiceUsages.Service").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) GetBookingByID(bookingID uint) (*models.Booking, error) {
	if _, err := findBooking(s.DB, bookingID); err != nil {
		return nil, err
	}
	return s.reload(bookingID)
}

func (s *BookingService) GetAllBookingsByCheckInDate(checkInDate string) ([]models.Booking, error) {
	day, err := utils.ParseDate(checkInDate)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := s.DB.Preload("Room").Preload("Customer").Preload("ServiceUsages.Service").
		Where("check_in_date = ?", day).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) GetAllBookingsByCheckOutDate(checkOutDate string) ([]models.Booking, error) {
	day, err := utils.ParseDate(checkOutDate)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := s.DB.Preload("Room").Preload("Customer").Preload("ServiceUsages.Service").
		Where("check_out_date = ?", day).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) GetAllBookingsByStatus(statusIndex string) ([]models.Booking, error) {
	status, err := models.BookingStatusFromIndex(statusIndex)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := s.DB.Preload("Room").Preload("Customer").Preload("ServiceUsages.Service").
		Where("booking_status = ?", status).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) GetAllBookingsByCustomer(customerID uint) ([]models.Booking, error) {
	var customer models.Customer
	if err := s.DB.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFound("Customer", "customerId", fmt.Sprint(customerID))
		}
		return nil, err
	}
	var bookings []models.Booking
	if err := s.DB.Preload("Room").Preload("Customer").Preload("ServiceUsages.Service").
		Where("customer_id = ?", customer.ID).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) GetAllBookingsByRoom(roomID uint) ([]models.Booking, error) {
	room, err := findRoom(s.DB, roomID)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := s.DB.Preload("Room").Preload("Customer").Preload("ServiceUsages.Service").
		Where("room_id = ?", room.ID).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
