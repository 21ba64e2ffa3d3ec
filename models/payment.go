package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Payment is one-to-one with a booking; the amount is always computed from
// the pricing engine plus the booking's service usages, never taken from
// the request.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	PaymentDate   datatypes.Date  `gorm:"column:payment_date" json:"-"`
	Amount        decimal.Decimal `gorm:"type:decimal(19,10)" json:"amount"`
	PaymentMethod PaymentMethod   `gorm:"column:payment_method;type:varchar(20)" json:"paymentMethod"`
	PaymentStatus PaymentStatus   `gorm:"column:payment_status;type:varchar(20)" json:"paymentStatus"`

	BookingID uint    `gorm:"uniqueIndex;column:booking_id" json:"bookingId"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"-"`
}
