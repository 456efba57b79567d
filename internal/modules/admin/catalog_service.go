package admin

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"carsharex/internal/domain"
)

// -------------------- Vehicles --------------------

func (s *Service) CreateVehicle(ctx context.Context, req VehicleRequest) (*domain.Vehicle, error) {
	if req.TariffID != nil {
		if err := s.mustExist(ctx, &domain.Tariff{}, *req.TariffID, ErrTariffNotFound); err != nil {
			return nil, err
		}
	}
	if req.ParkingZoneID != nil {
		if err := s.mustExist(ctx, &domain.ParkingZone{}, *req.ParkingZoneID, ErrZoneNotFound); err != nil {
			return nil, err
		}
	}

	vehicle := domain.Vehicle{
		LicensePlate:  strings.ToUpper(strings.TrimSpace(req.LicensePlate)),
		Brand:         strings.TrimSpace(req.Brand),
		Model:         strings.TrimSpace(req.Model),
		VehicleType:   strings.TrimSpace(req.VehicleType),
		Year:          req.Year,
		Color:         req.Color,
		ImageURL:      req.ImageURL,
		Description:   req.Description,
		Status:        domain.VehicleAvailable,
		ParkingZoneID: req.ParkingZoneID,
		TariffID:      req.TariffID,
	}
	if err := s.db.WithContext(ctx).Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *Service) UpdateVehicle(ctx context.Context, id int64, req UpdateVehicleRequest) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	previousStatus := vehicle.Status

	updates := map[string]interface{}{}
	if req.LicensePlate != nil {
		updates["license_plate"] = strings.ToUpper(strings.TrimSpace(*req.LicensePlate))
	}
	if req.Brand != nil {
		updates["brand"] = strings.TrimSpace(*req.Brand)
	}
	if req.Model != nil {
		updates["model"] = strings.TrimSpace(*req.Model)
	}
	if req.VehicleType != nil {
		updates["vehicle_type"] = strings.TrimSpace(*req.VehicleType)
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.TariffID != nil {
		if err := s.mustExist(ctx, &domain.Tariff{}, *req.TariffID, ErrTariffNotFound); err != nil {
			return nil, err
		}
		updates["tariff_id"] = *req.TariffID
	}
	if req.ParkingZoneID != nil {
		if err := s.mustExist(ctx, &domain.ParkingZone{}, *req.ParkingZoneID, ErrZoneNotFound); err != nil {
			return nil, err
		}
		updates["parking_zone_id"] = *req.ParkingZoneID
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&domain.Vehicle{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	err := s.db.WithContext(ctx).
		Preload("ParkingZone").
		Preload("Tariff").
		First(&vehicle, id).Error
	if err != nil {
		return nil, err
	}

	if s.feed != nil && vehicle.Status != previousStatus {
		s.feed.PublishVehicleStatus(vehicle.ID, vehicle.Status)
	}
	return &vehicle, nil
}

func (s *Service) DeleteVehicle(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		err := tx.Model(&domain.Booking{}).
			Where("vehicle_id = ? AND status = ?", id, domain.BookingActive).
			Count(&active).Error
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrVehicleInUse
		}

		res := tx.Delete(&domain.Vehicle{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVehicleNotFound
		}
		return nil
	})
}

// -------------------- Tariffs --------------------

func (s *Service) CreateTariff(ctx context.Context, req TariffRequest) (*domain.Tariff, error) {
	tariff := domain.Tariff{
		Name:           strings.TrimSpace(req.Name),
		PricePerMinute: req.PricePerMinute,
		PricePerHour:   req.PricePerHour,
	}
	if err := s.db.WithContext(ctx).Create(&tariff).Error; err != nil {
		return nil, err
	}
	return &tariff, nil
}

func (s *Service) UpdateTariff(ctx context.Context, id int64, req TariffRequest) (*domain.Tariff, error) {
	var tariff domain.Tariff
	if err := s.db.WithContext(ctx).First(&tariff, id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrTariffNotFound
		}
		return nil, err
	}

	err := s.db.WithContext(ctx).Model(&tariff).Updates(map[string]interface{}{
		"name":             strings.TrimSpace(req.Name),
		"price_per_minute": req.PricePerMinute,
		"price_per_hour":   req.PricePerHour,
	}).Error
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&tariff, id).Error; err != nil {
		return nil, err
	}
	return &tariff, nil
}

func (s *Service) DeleteTariff(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var assigned int64
		if err := tx.Model(&domain.Vehicle{}).Where("tariff_id = ?", id).Count(&assigned).Error; err != nil {
			return err
		}
		if assigned > 0 {
			return ErrTariffInUse
		}

		res := tx.Delete(&domain.Tariff{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTariffNotFound
		}
		return nil
	})
}

// -------------------- Branches --------------------

func (s *Service) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	var branches []domain.Branch
	if err := s.db.WithContext(ctx).Order("id").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (s *Service) CreateBranch(ctx context.Context, req BranchRequest) (*domain.Branch, error) {
	branch := domain.Branch{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		Phone:   req.Phone,
	}
	if err := s.db.WithContext(ctx).Create(&branch).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (s *Service) UpdateBranch(ctx context.Context, id int64, req BranchRequest) (*domain.Branch, error) {
	var branch domain.Branch
	if err := s.db.WithContext(ctx).First(&branch, id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}

	err := s.db.WithContext(ctx).Model(&branch).Updates(map[string]interface{}{
		"name":    strings.TrimSpace(req.Name),
		"address": strings.TrimSpace(req.Address),
		"phone":   req.Phone,
	}).Error
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&branch, id).Error; err != nil {
		return nil, err
	}
	return &branch, nil
}

func (s *Service) DeleteBranch(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.Branch{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBranchNotFound
	}
	return nil
}

// -------------------- Parking zones --------------------

func (s *Service) CreateParkingZone(ctx context.Context, req ParkingZoneRequest) (*domain.ParkingZone, error) {
	zone := domain.ParkingZone{
		Name:     strings.TrimSpace(req.Name),
		Address:  strings.TrimSpace(req.Address),
		Capacity: req.Capacity,
	}
	if err := s.db.WithContext(ctx).Create(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

func (s *Service) UpdateParkingZone(ctx context.Context, id int64, req ParkingZoneRequest) (*domain.ParkingZone, error) {
	var zone domain.ParkingZone
	if err := s.db.WithContext(ctx).First(&zone, id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}

	err := s.db.WithContext(ctx).Model(&zone).Updates(map[string]interface{}{
		"name":     strings.TrimSpace(req.Name),
		"address":  strings.TrimSpace(req.Address),
		"capacity": req.Capacity,
	}).Error
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).First(&zone, id).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

func (s *Service) DeleteParkingZone(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var parked int64
		if err := tx.Model(&domain.Vehicle{}).Where("parking_zone_id = ?", id).Count(&parked).Error; err != nil {
			return err
		}
		if parked > 0 {
			return ErrZoneOccupied
		}

		res := tx.Delete(&domain.ParkingZone{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrZoneNotFound
		}
		return nil
	})
}
