package domain

import "github.com/shopspring/decimal"

// Tariff exposes an hourly and/or per-minute rate. At least one must be set
// for the tariff to be bookable; when both are set the hourly rate wins.
type Tariff struct {
	ID             int64            `json:"id" gorm:"column:id;primaryKey"`
	Name           string           `json:"name" gorm:"column:name;size:50;not null;index"`
	PricePerMinute *decimal.Decimal `json:"price_per_minute" gorm:"column:price_per_minute;type:numeric(12,2)"`
	PricePerHour   *decimal.Decimal `json:"price_per_hour" gorm:"column:price_per_hour;type:numeric(12,2)"`
}

func (Tariff) TableName() string { return "tariffs" }
