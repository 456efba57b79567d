package tariff

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"carsharex/internal/domain"
)

var ErrTariffNotFound = errors.New("tariff not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(ctx context.Context) ([]domain.Tariff, error) {
	var tariffs []domain.Tariff
	if err := s.db.WithContext(ctx).Order("id").Find(&tariffs).Error; err != nil {
		return nil, err
	}
	return tariffs, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Tariff, error) {
	var tariff domain.Tariff
	if err := s.db.WithContext(ctx).First(&tariff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTariffNotFound
		}
		return nil, err
	}
	return &tariff, nil
}
