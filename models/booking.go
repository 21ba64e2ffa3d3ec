package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/minhtriet326/Hotel-management-system/utils"
)

type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	CheckInDate  datatypes.Date `gorm:"column:check_in_date" json:"-"`
	CheckOutDate datatypes.Date `gorm:"column:check_out_date" json:"-"`

	BookingStatus BookingStatus `gorm:"column:booking_status;type:varchar(20)" json:"bookingStatus"`

	// Discount fraction in [0, 1], at most two fractional digits.
	BookingVoucher decimal.Decimal `gorm:"column:booking_voucher;type:decimal(3,2);default:0" json:"bookingVoucher"`

	CustomerID uint `gorm:"index;column:customer_id" json:"customerId"`
	RoomID     uint `gorm:"index;column:room_id" json:"roomId"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Room     Room     `gorm:"foreignKey:RoomID" json:"-"`

	ServiceUsages    []ServiceUsage   `gorm:"foreignKey:BookingID" json:"-"`
	BookingHistories []BookingHistory `gorm:"foreignKey:BookingID" json:"-"`
	Payment          *Payment         `gorm:"foreignKey:BookingID" json:"-"`
}

// FlatStayPrice prices a stay with no room changes: nightly rate times the
// exclusive night count, discounted by the voucher, rounded half-to-even.
// The Room relation must be loaded.
func (b *Booking) FlatStayPrice() decimal.Decimal {
	nights := utils.DaysBetween(b.CheckInDate, b.CheckOutDate)
	voucher := decimal.NewFromInt(1).Sub(b.BookingVoucher)
	return b.Room.Price.Mul(voucher).Mul(decimal.NewFromInt(nights)).RoundBank(2)
}
