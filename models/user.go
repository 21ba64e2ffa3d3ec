package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Username string `gorm:"uniqueIndex;type:varchar(191)" json:"username"`
	Password string `json:"-"`
	Roles    string `gorm:"type:varchar(64)" json:"roles"`

	RefreshToken *RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}
