package transaction

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carsharex/internal/domain"
)

// Service appends entries to the transaction ledger. Only deposits move the
// cached balance here; payments and penalties recorded through this service
// are informational entries (booking settlement debits happen inside the
// booking lifecycle transaction).
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(ctx context.Context, req CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	switch req.TransactionType {
	case domain.TransactionPayment, domain.TransactionDeposit, domain.TransactionPenalty:
	default:
		return nil, ErrUnknownTxnType
	}

	var created domain.Transaction

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if req.BookingID != nil {
			var count int64
			if err := tx.Model(&domain.Booking{}).Where("id = ?", *req.BookingID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrBookingNotFound
			}
		}

		created = domain.Transaction{
			UserID:          req.UserID,
			BookingID:       req.BookingID,
			TransactionType: req.TransactionType,
			Amount:          req.Amount.Round(2),
			Description:     req.Description,
			Status:          domain.TransactionCompleted,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		if req.TransactionType == domain.TransactionDeposit {
			return tx.Model(&domain.User{}).Where("id = ?", user.ID).
				Update("balance", user.Balance.Add(created.Amount)).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Deposit credits a user's balance and records the matching ledger entry.
// An empty description falls back to the default top-up label.
func (s *Service) Deposit(ctx context.Context, userID int64, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	if description == "" {
		description = "Balance top-up"
	}
	return s.Create(ctx, CreateTransactionRequest{
		UserID:          userID,
		TransactionType: domain.TransactionDeposit,
		Amount:          amount,
		Description:     &description,
	})
}

func (s *Service) ListUserTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var txns []domain.Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
