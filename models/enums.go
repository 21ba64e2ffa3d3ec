package models

import (
	"strconv"

	"github.com/minhtriet326/Hotel-management-system/utils"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeTwin   RoomType = "TWIN"
	RoomTypeTriple RoomType = "TRIPLE"
	RoomTypeQuad   RoomType = "QUAD"
	RoomTypeFamily RoomType = "FAMILY"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomReserved    RoomStatus = "RESERVED"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomDirty       RoomStatus = "DIRTY"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

type BookingStatus string

const (
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
	BookingCancelled  BookingStatus = "CANCELLED"
)

type HistoryType string

const (
	HistoryCheckIn    HistoryType = "CHECK_IN"
	HistoryCheckOut   HistoryType = "CHECK_OUT"
	HistoryExtendStay HistoryType = "EXTEND_STAY"
	HistoryChangeRoom HistoryType = "CHANGE_ROOM"
	HistoryCancel     HistoryType = "CANCEL"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentCash       PaymentMethod = "CASH"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentPending   PaymentStatus = "PENDING"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Request payloads address enum values by 1-based numeric index. Each enum
// has exactly one lookup table below; the wire order is load-bearing and is
// pinned by tests.
var (
	roomTypeByIndex      = []RoomType{RoomTypeSingle, RoomTypeDouble, RoomTypeTwin, RoomTypeTriple, RoomTypeQuad, RoomTypeFamily}
	roomStatusByIndex    = []RoomStatus{RoomAvailable, RoomReserved, RoomOccupied, RoomDirty, RoomMaintenance}
	bookingStatusByIndex = []BookingStatus{BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled}
	historyTypeByIndex   = []HistoryType{HistoryCheckIn, HistoryCheckOut, HistoryExtendStay, HistoryChangeRoom, HistoryCancel}
	paymentMethodByIndex = []PaymentMethod{PaymentCreditCard, PaymentCash}
	paymentStatusByIndex = []PaymentStatus{PaymentCompleted, PaymentPending, PaymentFailed}
)

func indexOk(index string, size int) (int, bool) {
	i, err := strconv.Atoi(index)
	if err != nil || i < 1 || i > size {
		return 0, false
	}
	return i, true
}

func RoomTypeFromIndex(index string) (RoomType, error) {
	i, ok := indexOk(index, len(roomTypeByIndex))
	if !ok {
		return "", utils.NewNotFound("Room type", "roomType", index)
	}
	return roomTypeByIndex[i-1], nil
}

func RoomStatusFromIndex(index string) (RoomStatus, error) {
	i, ok := indexOk(index, len(roomStatusByIndex))
	if !ok {
		return "", utils.NewNotFound("Room status", "roomStatus", index)
	}
	return roomStatusByIndex[i-1], nil
}

func BookingStatusFromIndex(index string) (BookingStatus, error) {
	i, ok := indexOk(index, len(bookingStatusByIndex))
	if !ok {
		return "", utils.NewNotFound("Booking status", "bookingStatus", index)
	}
	return bookingStatusByIndex[i-1], nil
}

func HistoryTypeFromIndex(index string) (HistoryType, error) {
	i, ok := indexOk(index, len(historyTypeByIndex))
	if !ok {
		return "", utils.NewNotFound("History type", "index", index)
	}
	return historyTypeByIndex[i-1], nil
}

func PaymentMethodFromIndex(index string) (PaymentMethod, error) {
	i, ok := indexOk(index, len(paymentMethodByIndex))
	if !ok {
		return "", utils.NewNotFound("Payment method", "Payment method index", index)
	}
	return paymentMethodByIndex[i-1], nil
}

func PaymentStatusFromIndex(index string) (PaymentStatus, error) {
	i, ok := indexOk(index, len(paymentStatusByIndex))
	if !ok {
		return "", utils.NewNotFound("Payment status", "Payment status index", index)
	}
	return paymentStatusByIndex[i-1], nil
}

func (t RoomType) Index() int      { return enumIndex(roomTypeByIndex, t) }
func (s RoomStatus) Index() int    { return enumIndex(roomStatusByIndex, s) }
func (s BookingStatus) Index() int { return enumIndex(bookingStatusByIndex, s) }
func (t HistoryType) Index() int   { return enumIndex(historyTypeByIndex, t) }
func (m PaymentMethod) Index() int { return enumIndex(paymentMethodByIndex, m) }
func (s PaymentStatus) Index() int { return enumIndex(paymentStatusByIndex, s) }

func enumIndex[T comparable](table []T, v T) int {
	for i, candidate := range table {
		if candidate == v {
			return i + 1
		}
	}
	return 0
}
