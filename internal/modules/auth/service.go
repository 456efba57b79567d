package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"carsharex/internal/domain"
	jwtsvc "carsharex/internal/pkg/jwt"
)

type Service struct {
	db  *gorm.DB
	jwt *jwtsvc.Service
}

func NewService(db *gorm.DB, jwt *jwtsvc.Service) *Service {
	return &Service{db: db, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:          strings.TrimSpace(req.Phone),
		PasswordHash:   string(hash),
		DriversLicense: req.DriversLicense,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if dup := duplicateFieldError(err); dup != nil {
			return nil, dup
		}
		return nil, err
	}

	return s.tokenFor(&user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var user domain.User
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenFor(&user)
}

func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) tokenFor(user *domain.User) (*TokenResponse, error) {
	token, err := s.jwt.GenerateToken(user.ID, nil)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// duplicateFieldError maps a unique-constraint violation to the registration
// field it concerns. Postgres reports code 23505 with the constraint name;
// sqlite reports the column in the error text.
func duplicateFieldError(err error) error {
	var pgErr *pgconn.PgError
	text := err.Error()
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return nil
		}
		text = pgErr.ConstraintName
	} else if !strings.Contains(text, "UNIQUE constraint failed") {
		return nil
	}

	switch {
	case strings.Contains(text, "email"):
		return ErrEmailTaken
	case strings.Contains(text, "phone"):
		return ErrPhoneTaken
	case strings.Contains(text, "drivers_license"):
		return ErrLicenseTaken
	default:
		return ErrEmailTaken
	}
}
