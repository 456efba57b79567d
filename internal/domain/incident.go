package domain

type IncidentStatus string

const (
	IncidentReported   IncidentStatus = "reported"
	IncidentInProgress IncidentStatus = "in_progress"
	IncidentResolved   IncidentStatus = "resolved"
)

type Incident struct {
	ID           int64          `json:"id" gorm:"column:id;primaryKey"`
	BookingID    *int64         `json:"booking_id" gorm:"column:booking_id;index"`
	VehicleID    int64          `json:"vehicle_id" gorm:"column:vehicle_id;not null;index"`
	UserID       *int64         `json:"user_id" gorm:"column:user_id;index"`
	IncidentType string         `json:"incident_type" gorm:"column:incident_type;size:50;not null;index"`
	Description  string         `json:"description" gorm:"column:description;not null"`
	Status       IncidentStatus `json:"status" gorm:"column:status;size:30;not null;default:reported;index"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Incident) TableName() string { return "incidents" }
