package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room status is derived from booking-lifecycle transitions; only the
// administrative room update path sets it directly.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	RoomNumber string          `gorm:"column:room_number;uniqueIndex;type:varchar(50)" json:"roomNumber"`
	RoomType   RoomType        `gorm:"column:room_type;type:varchar(20)" json:"roomType"`
	Price      decimal.Decimal `gorm:"type:decimal(19,10)" json:"price"`
	RoomStatus RoomStatus      `gorm:"column:room_status;type:varchar(20)" json:"roomStatus"`

	Photos []Photo `gorm:"foreignKey:RoomID" json:"photos,omitempty"`
}
