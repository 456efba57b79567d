package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
)

// Booking reserves one vehicle for one user over a closed calendar-day
// interval. TotalCost is snapshotted at creation and trued up at completion;
// it is never re-derived from the tariff afterwards.
type Booking struct {
	ID        int64            `json:"id" gorm:"column:id;primaryKey"`
	UserID    int64            `json:"user_id" gorm:"column:user_id;not null;index"`
	VehicleID int64            `json:"vehicle_id" gorm:"column:vehicle_id;not null;index"`
	TariffID  *int64           `json:"tariff_id" gorm:"column:tariff_id"`
	StartTime time.Time        `json:"start_time" gorm:"column:start_time;not null;index"`
	EndTime   *time.Time       `json:"end_time" gorm:"column:end_time"`
	TotalCost decimal.Decimal  `json:"total_cost" gorm:"column:total_cost;type:numeric(12,2);not null;default:0"`
	Status    BookingStatus    `json:"status" gorm:"column:status;size:30;not null;default:pending;index"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Tariff  *Tariff  `json:"tariff,omitempty" gorm:"foreignKey:TariffID"`
}

func (Booking) TableName() string { return "bookings" }
