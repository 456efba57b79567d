package vehicle

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"carsharex/internal/domain"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

// Filter narrows the vehicle catalog. Zero values mean "no constraint".
type Filter struct {
	Status        string
	VehicleType   string
	Brand         string
	TariffID      int64
	ParkingZoneID int64
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Vehicle, error) {
	q := s.db.WithContext(ctx).
		Preload("ParkingZone").
		Preload("Tariff")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.VehicleType != "" {
		q = q.Where("vehicle_type = ?", f.VehicleType)
	}
	if f.Brand != "" {
		q = q.Where("brand LIKE ?", "%"+f.Brand+"%")
	}
	if f.TariffID > 0 {
		q = q.Where("tariff_id = ?", f.TariffID)
	}
	if f.ParkingZoneID > 0 {
		q = q.Where("parking_zone_id = ?", f.ParkingZoneID)
	}

	var vehicles []domain.Vehicle
	if err := q.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := s.db.WithContext(ctx).
		Preload("ParkingZone").
		Preload("Tariff").
		First(&vehicle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}
