package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a catalog entry for a billable hotel service (laundry, spa...).
type Service struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	ServiceName string          `gorm:"column:service_name;uniqueIndex;type:varchar(191)" json:"serviceName"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(19,10)" json:"price"`

	ServiceUsages []ServiceUsage `gorm:"foreignKey:ServiceID" json:"-"`
}
