package domain

type ParkingZone struct {
	ID       int64  `json:"id" gorm:"column:id;primaryKey"`
	Name     string `json:"name" gorm:"column:name;size:100;not null;index"`
	Address  string `json:"address" gorm:"column:address;size:255;not null"`
	Capacity int    `json:"capacity" gorm:"column:capacity;not null;default:10"`
}

func (ParkingZone) TableName() string { return "parking_zones" }
