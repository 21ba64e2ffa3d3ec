package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/minhtriet326/Hotel-management-system/utils"
)

type ServiceUsage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	NumOfUsers int `gorm:"column:num_of_users" json:"numOfUsers"`

	// Both dates must fall inside the booking's check-in/check-out window.
	StartDate datatypes.Date `gorm:"column:start_date" json:"-"`
	EndDate   datatypes.Date `gorm:"column:end_date" json:"-"`

	ServiceVoucher decimal.Decimal `gorm:"column:service_voucher;type:decimal(3,2);default:0" json:"serviceVoucher"`
	TotalPrice     decimal.Decimal `gorm:"column:total_price;type:decimal(19,10)" json:"totalPrice"`

	ServiceID uint `gorm:"index;column:service_id" json:"serviceId"`
	BookingID uint `gorm:"index;column:booking_id" json:"bookingId"`

	Service Service `gorm:"foreignKey:ServiceID" json:"-"`
	Booking Booking `gorm:"foreignKey:BookingID" json:"-"`
}

// CalculateTotalPrice prices the usage over an inclusive day count: a usage
// starting and ending on the same day is charged one day. This deliberately
// differs from the exclusive night count used for room charges. The Service
// relation must be loaded.
func (su *ServiceUsage) CalculateTotalPrice() decimal.Decimal {
	days := utils.DaysBetween(su.StartDate, su.EndDate)
	voucher := decimal.NewFromInt(1).Sub(su.ServiceVoucher)
	return su.Service.Price.
		Mul(voucher).
		Mul(decimal.NewFromInt(int64(su.NumOfUsers))).
		Mul(decimal.NewFromInt(days + 1)).
		RoundBank(2)
}
