package profile

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"carsharex/internal/domain"
	"carsharex/internal/modules/transaction"
)

type Service struct {
	db   *gorm.DB
	txns *transaction.Service
}

func NewService(db *gorm.DB, txns *transaction.Service) *Service {
	return &Service{db: db, txns: txns}
}

func (s *Service) Get(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) Update(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.DriversLicense != nil {
		updates["drivers_license"] = req.DriversLicense
	}
	if len(updates) == 0 {
		return user, nil
	}

	err = s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", userID).Updates(updates).Error
	if err != nil {
		if dup := duplicateFieldError(err); dup != nil {
			return nil, dup
		}
		return nil, err
	}

	return s.Get(ctx, userID)
}

// TopUp credits the balance through the transaction ledger so the deposit
// shows up in the user's history.
func (s *Service) TopUp(ctx context.Context, userID int64, req TopUpRequest) (*domain.User, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	_, err := s.txns.Deposit(ctx, userID, req.Amount, "")
	if err != nil {
		if errors.Is(err, transaction.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, transaction.ErrInvalidAmount) {
			return nil, ErrInvalidAmount
		}
		return nil, err
	}

	return s.Get(ctx, userID)
}

func duplicateFieldError(err error) error {
	text := err.Error()
	if !strings.Contains(text, "UNIQUE constraint failed") && !strings.Contains(text, "23505") {
		return nil
	}
	switch {
	case strings.Contains(text, "phone"):
		return ErrPhoneTaken
	case strings.Contains(text, "drivers_license"):
		return ErrLicenseTaken
	default:
		return ErrPhoneTaken
	}
}
