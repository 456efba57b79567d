package admin

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"carsharex/internal/domain"
	jwtsvc "carsharex/internal/pkg/jwt"
)

// StatusPublisher pushes vehicle status transitions to the admin live feed.
type StatusPublisher interface {
	PublishVehicleStatus(vehicleID int64, status domain.VehicleStatus)
}

type Service struct {
	db   *gorm.DB
	jwt  *jwtsvc.Service
	feed StatusPublisher
}

func NewService(db *gorm.DB, jwt *jwtsvc.Service, feed StatusPublisher) *Service {
	return &Service{db: db, jwt: jwt, feed: feed}
}

// -------------------- Employee auth --------------------

func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var emp domain.Employee
	err := s.db.WithContext(ctx).
		Preload("Role").
		Preload("Branch").
		Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&emp).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(emp.ID, emp.RoleID)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{AccessToken: token, TokenType: "bearer", Employee: &emp}, nil
}

func (s *Service) Me(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := s.db.WithContext(ctx).
		Preload("Role").
		Preload("Branch").
		First(&emp, employeeID).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

// -------------------- Employees --------------------

func (s *Service) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := s.db.WithContext(ctx).
		Preload("Role").
		Preload("Branch").
		Order("id").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*domain.Employee, error) {
	if req.RoleID != nil {
		if err := s.mustExist(ctx, &domain.Role{}, *req.RoleID, ErrRoleNotFound); err != nil {
			return nil, err
		}
	}
	if req.BranchID != nil {
		if err := s.mustExist(ctx, &domain.Branch{}, *req.BranchID, ErrBranchNotFound); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	emp := domain.Employee{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		RoleID:       req.RoleID,
		BranchID:     req.BranchID,
	}
	if err := s.db.WithContext(ctx).Create(&emp).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.Me(ctx, emp.ID)
}

func (s *Service) UpdateEmployee(ctx context.Context, id int64, req UpdateEmployeeRequest) (*domain.Employee, error) {
	if _, err := s.Me(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = string(hash)
	}
	if req.RoleID != nil {
		if err := s.mustExist(ctx, &domain.Role{}, *req.RoleID, ErrRoleNotFound); err != nil {
			return nil, err
		}
		updates["role_id"] = *req.RoleID
	}
	if req.BranchID != nil {
		if err := s.mustExist(ctx, &domain.Branch{}, *req.BranchID, ErrBranchNotFound); err != nil {
			return nil, err
		}
		updates["branch_id"] = *req.BranchID
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&domain.Employee{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return s.Me(ctx, id)
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// -------------------- Users --------------------

func (s *Service) ListUsers(ctx context.Context, query string) ([]domain.User, error) {
	q := s.db.WithContext(ctx).Model(&domain.User{}).Order("id")

	if v := strings.TrimSpace(query); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like, like)
	}

	var users []domain.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.DriversLicense != nil {
		updates["drivers_license"] = strings.TrimSpace(*req.DriversLicense)
	}

	if len(updates) > 0 {
		err := s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Updates(updates).Error
		if err != nil {
			if isDuplicate(err) {
				return nil, ErrEmailTaken
			}
			return nil, err
		}
	}

	return s.GetUser(ctx, id)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		err := tx.Model(&domain.Booking{}).
			Where("user_id = ? AND status = ?", id, domain.BookingActive).
			Count(&active).Error
		if err != nil {
			return err
		}
		if active > 0 {
			return ErrUserHasActiveRides
		}

		res := tx.Delete(&domain.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

// -------------------- Bookings --------------------

func (s *Service) ListBookings(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	q := s.db.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Tariff").
		Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []domain.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	var booking domain.Booking
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Vehicle").
		Preload("Tariff").
		First(&booking, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// -------------------- helpers --------------------

func (s *Service) mustExist(ctx context.Context, model interface{}, id int64, notFound error) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	text := err.Error()
	return strings.Contains(text, "UNIQUE constraint failed") ||
		strings.Contains(text, "duplicate key value") ||
		strings.Contains(text, "23505")
}
