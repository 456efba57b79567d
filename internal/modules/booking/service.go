package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carsharex/internal/domain"
)

// Service is the booking lifecycle manager. Every lifecycle operation runs
// as one database transaction: the vehicle claim, the balance mutation, the
// booking row and the ledger row commit together or not at all.
type Service struct {
	db   *gorm.DB
	feed StatusPublisher
}

func NewService(db *gorm.DB, feed StatusPublisher) *Service {
	return &Service{db: db, feed: feed}
}

func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	var created domain.Booking

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle domain.Vehicle
		if err := tx.First(&vehicle, req.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVehicleNotFound
			}
			return err
		}
		if vehicle.Status != domain.VehicleAvailable {
			return ErrVehicleUnavailable
		}

		var tariff domain.Tariff
		if err := tx.First(&tariff, req.TariffID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTariffNotFound
			}
			return err
		}

		quote, err := Calculate(&tariff, startDate, endDate)
		if err != nil {
			return err
		}

		var user domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if user.Balance.LessThan(quote.TotalCost) {
			return ErrInsufficientBalance
		}

		// Conditional claim: the losing side of a concurrent create sees
		// zero affected rows and is rejected here.
		claim := tx.Model(&domain.Vehicle{}).
			Where("id = ? AND status = ?", vehicle.ID, domain.VehicleAvailable).
			Update("status", domain.VehicleInUse)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ErrVehicleUnavailable
		}

		newBalance := user.Balance.Sub(quote.TotalCost)
		if err := tx.Model(&domain.User{}).Where("id = ?", user.ID).
			Update("balance", newBalance).Error; err != nil {
			return err
		}

		start, end := bookingInterval(startDate, endDate)
		created = domain.Booking{
			UserID:    user.ID,
			VehicleID: vehicle.ID,
			TariffID:  &tariff.ID,
			StartTime: start,
			EndTime:   &end,
			TotalCost: quote.TotalCost,
			Status:    domain.BookingActive,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		desc := fmt.Sprintf("Booking payment for %s %s, %d day(s)", vehicle.Brand, vehicle.Model, quote.DaysCount)
		payment := domain.Transaction{
			UserID:          user.ID,
			BookingID:       &created.ID,
			TransactionType: domain.TransactionPayment,
			Amount:          quote.TotalCost,
			Description:     &desc,
			Status:          domain.TransactionCompleted,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.PublishVehicleStatus(created.VehicleID, domain.VehicleInUse)
	}

	return s.getBookingWithRelations(ctx, created.ID)
}

// CompleteBooking closes an active booking: the vehicle returns to the pool
// and the user settles the difference between the actual cost and the amount
// captured at creation. A cheaper actual cost is refunded to the balance.
func (s *Service) CompleteBooking(ctx context.Context, bookingID int64, req CompleteBookingRequest) (*domain.Booking, error) {
	actual := req.TotalCost.Round(2)

	var vehicleID int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if b.Status != domain.BookingActive {
			return ErrBookingAlreadyCompleted
		}

		delta := actual.Sub(b.TotalCost)

		if err := tx.Model(&domain.Booking{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
			"end_time":   req.EndTime,
			"total_cost": actual,
			"status":     domain.BookingCompleted,
		}).Error; err != nil {
			return err
		}

		release := tx.Model(&domain.Vehicle{}).Where("id = ?", b.VehicleID).
			Update("status", domain.VehicleAvailable)
		if release.Error != nil {
			return release.Error
		}
		if release.RowsAffected > 0 {
			vehicleID = b.VehicleID
		}

		var user domain.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, b.UserID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // orphaned booking, nothing to settle
		}
		if err != nil {
			return err
		}

		if delta.IsZero() {
			return nil
		}

		if err := tx.Model(&domain.User{}).Where("id = ?", user.ID).
			Update("balance", user.Balance.Sub(delta)).Error; err != nil {
			return err
		}

		settle := domain.Transaction{
			UserID:    user.ID,
			BookingID: &b.ID,
			Amount:    delta.Abs(),
			Status:    domain.TransactionCompleted,
		}
		if delta.IsPositive() {
			settle.TransactionType = domain.TransactionPayment
			desc := "Final booking cost settlement"
			settle.Description = &desc
		} else {
			settle.TransactionType = domain.TransactionDeposit
			desc := "Refund of unused booking cost"
			settle.Description = &desc
		}
		return tx.Create(&settle).Error
	})
	if err != nil {
		return nil, err
	}

	if s.feed != nil && vehicleID != 0 {
		s.feed.PublishVehicleStatus(vehicleID, domain.VehicleAvailable)
	}

	return s.getBookingWithRelations(ctx, bookingID)
}

func (s *Service) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Vehicle.Tariff").
		Preload("Tariff").
		Where("user_id = ?", userID).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CalculateCost prices a booking without creating one.
func (s *Service) CalculateCost(ctx context.Context, req CalculateCostRequest) (*CalculateCostResponse, error) {
	var tariff domain.Tariff
	if err := s.db.WithContext(ctx).First(&tariff, req.TariffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTariffNotFound
		}
		return nil, err
	}

	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	quote, err := Calculate(&tariff, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &CalculateCostResponse{
		TariffID:    tariff.ID,
		TariffName:  tariff.Name,
		DaysCount:   quote.DaysCount,
		TotalCost:   quote.TotalCost,
		PricePerDay: quote.PricePerDay,
	}, nil
}

func (s *Service) getBookingWithRelations(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Vehicle.Tariff").
		Preload("Tariff").
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// LedgerBalance recomputes a user's balance from the transaction log:
// deposits minus payments and penalties. Exposed for reconciliation checks.
func (s *Service) LedgerBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	var txns []domain.Transaction
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&txns).Error; err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, t := range txns {
		switch t.TransactionType {
		case domain.TransactionDeposit:
			sum = sum.Add(t.Amount)
		case domain.TransactionPayment, domain.TransactionPenalty:
			sum = sum.Sub(t.Amount)
		}
	}
	return sum, nil
}
