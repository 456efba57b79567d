package domain

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in_use"
	VehicleMaintenance VehicleStatus = "maintenance"
)

// Vehicle status is the availability gate for bookings: a booking may only
// start while the vehicle is "available" and holds "in_use" until completion.
type Vehicle struct {
	ID            int64         `json:"id" gorm:"column:id;primaryKey"`
	LicensePlate  string        `json:"license_plate" gorm:"column:license_plate;size:20;uniqueIndex;not null"`
	Brand         string        `json:"brand" gorm:"column:brand;size:50;not null;index"`
	Model         string        `json:"model" gorm:"column:model;size:50;not null"`
	VehicleType   string        `json:"vehicle_type" gorm:"column:vehicle_type;size:30;not null;index"`
	Year          *int          `json:"year,omitempty" gorm:"column:year"`
	Color         *string       `json:"color,omitempty" gorm:"column:color;size:30"`
	ImageURL      *string       `json:"image_url,omitempty" gorm:"column:image_url;size:500"`
	Description   *string       `json:"description,omitempty" gorm:"column:description;size:500"`
	Status        VehicleStatus `json:"status" gorm:"column:status;size:30;not null;default:available;index"`
	ParkingZoneID *int64        `json:"parking_zone_id" gorm:"column:parking_zone_id"`
	TariffID      *int64        `json:"tariff_id" gorm:"column:tariff_id"`

	ParkingZone *ParkingZone `json:"parking_zone,omitempty" gorm:"foreignKey:ParkingZoneID"`
	Tariff      *Tariff      `json:"tariff,omitempty" gorm:"foreignKey:TariffID"`
}

func (Vehicle) TableName() string { return "vehicles" }
