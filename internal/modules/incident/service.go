package incident

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"carsharex/internal/domain"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Report(ctx context.Context, req ReportIncidentRequest) (*domain.Incident, error) {
	var created domain.Incident

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Vehicle{}).Where("id = ?", req.VehicleID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrVehicleNotFound
		}

		if req.BookingID != nil {
			if err := tx.Model(&domain.Booking{}).Where("id = ?", *req.BookingID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrBookingNotFound
			}
		}

		created = domain.Incident{
			VehicleID:    req.VehicleID,
			BookingID:    req.BookingID,
			UserID:       req.UserID,
			IncidentType: req.IncidentType,
			Description:  req.Description,
			Status:       domain.IncidentReported,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) List(ctx context.Context, status domain.IncidentStatus) ([]domain.Incident, error) {
	q := s.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("User").
		Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var incidents []domain.Incident
	if err := q.Find(&incidents).Error; err != nil {
		return nil, err
	}
	return incidents, nil
}

func (s *Service) ListByVehicle(ctx context.Context, vehicleID int64) ([]domain.Incident, error) {
	var incidents []domain.Incident
	err := s.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("id DESC").
		Find(&incidents).Error
	if err != nil {
		return nil, err
	}
	return incidents, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.IncidentStatus) (*domain.Incident, error) {
	switch status {
	case domain.IncidentReported, domain.IncidentInProgress, domain.IncidentResolved:
	default:
		return nil, ErrInvalidStatus
	}

	var incident domain.Incident
	if err := s.db.WithContext(ctx).First(&incident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&incident).Update("status", status).Error; err != nil {
		return nil, err
	}
	incident.Status = status
	return &incident, nil
}
