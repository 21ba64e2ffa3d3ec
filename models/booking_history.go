package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BookingHistory is an append-only audit record, written exactly once per
// lifecycle transition inside the same transaction as the booking mutation.
// Seq is a per-booking monotonic sequence assigned on append; orderings use
// (change_date, seq) so nothing depends on id assignment order.
type BookingHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Seq uint `gorm:"column:seq;index:idx_booking_seq" json:"seq"`

	ActualCheckInDate  datatypes.Date `gorm:"column:actual_check_in_date" json:"-"`
	ActualCheckOutDate datatypes.Date `gorm:"column:actual_check_out_date" json:"-"`

	HistoryType HistoryType `gorm:"column:history_type;type:varchar(20)" json:"historyType"`
	Note        string      `gorm:"type:text" json:"note"`

	// Populated only for CHANGE_ROOM entries.
	ChangeDate *datatypes.Date `gorm:"column:change_date" json:"-"`

	// Populated at CHECK_OUT with the pricing engine result at that instant.
	FinalTotalPrice decimal.NullDecimal `gorm:"column:final_total_price;type:decimal(19,10)" json:"-"`

	BookingID uint `gorm:"index:idx_booking_seq;column:booking_id" json:"bookingId"`
	RoomID    uint `gorm:"index;column:current_room_id" json:"roomId"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
	Room    Room    `gorm:"foreignKey:RoomID" json:"-"`
}
