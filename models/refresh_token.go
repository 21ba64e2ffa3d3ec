package models

import "time"

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	RefreshToken   string    `gorm:"column:refresh_token;uniqueIndex;type:varchar(64)" json:"refreshToken"`
	ExpirationDate time.Time `gorm:"column:expiration_date" json:"expirationDate"`

	UserID uint `gorm:"uniqueIndex;column:user_id" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
}
