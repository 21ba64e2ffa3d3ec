package models

import "time"

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `gorm:"uniqueIndex;type:varchar(191)" json:"email"`
	PhoneNumber string `gorm:"column:phone_number;uniqueIndex;type:varchar(15)" json:"phoneNumber"`
	Address     string `gorm:"type:text" json:"address"`

	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"-"`
}
