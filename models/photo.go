package models

import "time"

// Photo records a stored file name for a room image; the bytes live on
// disk under the configured photo directory.
type Photo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name string `gorm:"type:varchar(191)" json:"name"`

	RoomID uint `gorm:"index;column:room_id" json:"roomId"`
	Room   Room `gorm:"foreignKey:RoomID" json:"-"`
}
