package parking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"carsharex/internal/domain"
)

var ErrZoneNotFound = errors.New("parking zone not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ZoneWithOccupancy sits on top of the zone row with the live vehicle count.
type ZoneWithOccupancy struct {
	domain.ParkingZone
	VehicleCount int64 `json:"vehicle_count"`
	FreeSpots    int64 `json:"free_spots"`
}

func (s *Service) List(ctx context.Context) ([]ZoneWithOccupancy, error) {
	var zones []domain.ParkingZone
	if err := s.db.WithContext(ctx).Order("id").Find(&zones).Error; err != nil {
		return nil, err
	}

	result := make([]ZoneWithOccupancy, 0, len(zones))
	for _, z := range zones {
		withCount, err := s.withOccupancy(ctx, z)
		if err != nil {
			return nil, err
		}
		result = append(result, withCount)
	}
	return result, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*ZoneWithOccupancy, error) {
	var zone domain.ParkingZone
	if err := s.db.WithContext(ctx).First(&zone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}

	withCount, err := s.withOccupancy(ctx, zone)
	if err != nil {
		return nil, err
	}
	return &withCount, nil
}

func (s *Service) withOccupancy(ctx context.Context, zone domain.ParkingZone) (ZoneWithOccupancy, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Vehicle{}).
		Where("parking_zone_id = ?", zone.ID).
		Count(&count).Error
	if err != nil {
		return ZoneWithOccupancy{}, err
	}

	free := int64(zone.Capacity) - count
	if free < 0 {
		free = 0
	}
	return ZoneWithOccupancy{ParkingZone: zone, VehicleCount: count, FreeSpots: free}, nil
}
