package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"carsharex/internal/domain"
	jwtsvc "carsharex/internal/pkg/jwt"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:admin_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Role{}, &domain.Branch{}, &domain.Employee{},
		&domain.User{}, &domain.Tariff{}, &domain.ParkingZone{},
		&domain.Vehicle{}, &domain.Booking{}, &domain.Transaction{},
		&domain.Incident{},
	); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewService(db, jwtsvc.New("test-secret", time.Hour), nil), db
}

type recordingFeed struct {
	events []string
}

func (f *recordingFeed) PublishVehicleStatus(vehicleID int64, status domain.VehicleStatus) {
	f.events = append(f.events, fmt.Sprintf("%d:%s", vehicleID, status))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func seedEmployee(t *testing.T, db *gorm.DB, email, password string) (*domain.Employee, *domain.Role, *domain.Branch) {
	t.Helper()

	role := &domain.Role{Name: "Manager"}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}
	branch := &domain.Branch{Name: "Central Office", Address: "10 Tverskaya St"}
	if err := db.Create(branch).Error; err != nil {
		t.Fatalf("seed branch: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	emp := &domain.Employee{
		FirstName:    "Maria",
		LastName:     "Petrova",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       &role.ID,
		BranchID:     &branch.ID,
	}
	if err := db.Create(emp).Error; err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return emp, role, branch
}

func TestLoginReturnsTokenAndEmployee(t *testing.T) {
	svc, db := newTestService(t)
	seedEmployee(t, db, "petrova@carsharex.ru", "manager123")
	ctx := context.Background()

	resp, err := svc.Login(ctx, LoginRequest{Email: "Petrova@CarShareX.ru", Password: "manager123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token type = %q, want bearer", resp.TokenType)
	}
	if resp.Employee == nil || resp.Employee.Email != "petrova@carsharex.ru" {
		t.Fatalf("unexpected employee payload: %+v", resp.Employee)
	}
	if resp.Employee.Role == nil || resp.Employee.Role.Name != "Manager" {
		t.Errorf("expected role preloaded, got %+v", resp.Employee.Role)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, db := newTestService(t)
	seedEmployee(t, db, "petrova@carsharex.ru", "manager123")
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Email: "petrova@carsharex.ru", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@carsharex.ru", Password: "manager123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, db := newTestService(t)
	_, role, branch := seedEmployee(t, db, "petrova@carsharex.ru", "manager123")
	ctx := context.Background()

	emp, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
		FirstName: "Dmitry",
		LastName:  "Sidorov",
		Email:     "  Sidorov@CarShareX.ru ",
		Password:  "support123",
		RoleID:    &role.ID,
		BranchID:  &branch.ID,
	})
	if err != nil {
		t.Fatalf("create employee: %v", err)
	}
	if emp.Email != "sidorov@carsharex.ru" {
		t.Errorf("email not normalized: %q", emp.Email)
	}
	if emp.PasswordHash == "support123" {
		t.Error("password stored in plaintext")
	}
	if emp.Branch == nil || emp.Branch.ID != branch.ID {
		t.Errorf("expected branch preloaded, got %+v", emp.Branch)
	}

	// login works with the freshly created account
	if _, err := svc.Login(ctx, LoginRequest{Email: "sidorov@carsharex.ru", Password: "support123"}); err != nil {
		t.Fatalf("login as new employee: %v", err)
	}
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	svc, db := newTestService(t)
	seedEmployee(t, db, "petrova@carsharex.ru", "manager123")
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
		FirstName: "Other",
		LastName:  "Petrova",
		Email:     "petrova@carsharex.ru",
		Password:  "secret1",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("got %v, want ErrEmailTaken", err)
	}
}

func TestCreateEmployeeUnknownRoleOrBranch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	missing := int64(404)

	_, err := svc.CreateEmployee(ctx, CreateEmployeeRequest{
		FirstName: "A", LastName: "B", Email: "a@b.c", Password: "secret1",
		RoleID: &missing,
	})
	if !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("got %v, want ErrRoleNotFound", err)
	}

	_, err = svc.CreateEmployee(ctx, CreateEmployeeRequest{
		FirstName: "A", LastName: "B", Email: "a@b.c", Password: "secret1",
		BranchID: &missing,
	})
	if !errors.Is(err, ErrBranchNotFound) {
		t.Fatalf("got %v, want ErrBranchNotFound", err)
	}
}

func TestUpdateEmployee(t *testing.T) {
	svc, db := newTestService(t)
	emp, _, _ := seedEmployee(t, db, "petrova@carsharex.ru", "manager123")
	ctx := context.Background()

	support := &domain.Role{Name: "Support"}
	if err := db.Create(support).Error; err != nil {
		t.Fatalf("seed role: %v", err)
	}

	updated, err := svc.UpdateEmployee(ctx, emp.ID, UpdateEmployeeRequest{
		FirstName: strPtr("Marya"),
		Password:  strPtr("newpass1"),
		RoleID:    &support.ID,
	})
	if err != nil {
		t.Fatalf("update employee: %v", err)
	}
	if updated.FirstName != "Marya" {
		t.Errorf("first name = %q, want Marya", updated.FirstName)
	}
	if updated.Role == nil || updated.Role.Name != "Support" {
		t.Errorf("role not updated: %+v", updated.Role)
	}

	if _, err := svc.Login(ctx, LoginRequest{Email: "petrova@carsharex.ru", Password: "newpass1"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestDeleteEmployee(t *testing.T) {
	svc, db := newTestService(t)
	emp, _, _ := seedEmployee(t, db, "petrova@carsharex.ru", "manager123")
	ctx := context.Background()

	if err := svc.DeleteEmployee(ctx, emp.ID); err != nil {
		t.Fatalf("delete employee: %v", err)
	}
	if err := svc.DeleteEmployee(ctx, emp.ID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("second delete: got %v, want ErrEmployeeNotFound", err)
	}
}

func seedFleet(t *testing.T, db *gorm.DB) (*domain.User, *domain.Vehicle, *domain.Tariff, *domain.ParkingZone) {
	t.Helper()

	user := &domain.User{
		FirstName:    "Ivan",
		LastName:     "Morozov",
		Email:        "morozov@mail.ru",
		Phone:        "+79161234572",
		PasswordHash: "x",
		Balance:      dec("500"),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	tariff := &domain.Tariff{Name: "Hourly", PricePerHour: decPtr("350")}
	if err := db.Create(tariff).Error; err != nil {
		t.Fatalf("seed tariff: %v", err)
	}

	zone := &domain.ParkingZone{Name: "Center Parking", Address: "10 Tverskaya St", Capacity: 15}
	if err := db.Create(zone).Error; err != nil {
		t.Fatalf("seed zone: %v", err)
	}

	vehicle := &domain.Vehicle{
		LicensePlate:  "A123BC777",
		Brand:         "Kia",
		Model:         "Rio",
		VehicleType:   "sedan",
		Status:        domain.VehicleAvailable,
		ParkingZoneID: &zone.ID,
		TariffID:      &tariff.ID,
	}
	if err := db.Create(vehicle).Error; err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}

	return user, vehicle, tariff, zone
}

func seedActiveBooking(t *testing.T, db *gorm.DB, userID, vehicleID int64, tariffID *int64) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		UserID:    userID,
		VehicleID: vehicleID,
		TariffID:  tariffID,
		StartTime: time.Now().UTC(),
		TotalCost: dec("0"),
		Status:    domain.BookingActive,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return b
}

func TestDeleteVehicleWithActiveBookingGuard(t *testing.T) {
	svc, db := newTestService(t)
	user, vehicle, tariff, _ := seedFleet(t, db)
	ctx := context.Background()

	seedActiveBooking(t, db, user.ID, vehicle.ID, &tariff.ID)

	if err := svc.DeleteVehicle(ctx, vehicle.ID); !errors.Is(err, ErrVehicleInUse) {
		t.Fatalf("got %v, want ErrVehicleInUse", err)
	}

	// completing the ride lifts the guard
	err := db.Model(&domain.Booking{}).Where("vehicle_id = ?", vehicle.ID).
		Update("status", domain.BookingCompleted).Error
	if err != nil {
		t.Fatalf("complete booking: %v", err)
	}
	if err := svc.DeleteVehicle(ctx, vehicle.ID); err != nil {
		t.Fatalf("delete vehicle after completion: %v", err)
	}
}

func TestDeleteTariffAssignedGuard(t *testing.T) {
	svc, db := newTestService(t)
	_, vehicle, tariff, _ := seedFleet(t, db)
	ctx := context.Background()

	if err := svc.DeleteTariff(ctx, tariff.ID); !errors.Is(err, ErrTariffInUse) {
		t.Fatalf("got %v, want ErrTariffInUse", err)
	}

	if err := db.Model(&domain.Vehicle{}).Where("id = ?", vehicle.ID).Update("tariff_id", nil).Error; err != nil {
		t.Fatalf("unassign tariff: %v", err)
	}
	if err := svc.DeleteTariff(ctx, tariff.ID); err != nil {
		t.Fatalf("delete unassigned tariff: %v", err)
	}
}

func TestDeleteParkingZoneOccupiedGuard(t *testing.T) {
	svc, db := newTestService(t)
	_, vehicle, _, zone := seedFleet(t, db)
	ctx := context.Background()

	if err := svc.DeleteParkingZone(ctx, zone.ID); !errors.Is(err, ErrZoneOccupied) {
		t.Fatalf("got %v, want ErrZoneOccupied", err)
	}

	if err := db.Model(&domain.Vehicle{}).Where("id = ?", vehicle.ID).Update("parking_zone_id", nil).Error; err != nil {
		t.Fatalf("relocate vehicle: %v", err)
	}
	if err := svc.DeleteParkingZone(ctx, zone.ID); err != nil {
		t.Fatalf("delete empty zone: %v", err)
	}
}

func TestDeleteUserWithActiveRideGuard(t *testing.T) {
	svc, db := newTestService(t)
	user, vehicle, tariff, _ := seedFleet(t, db)
	ctx := context.Background()

	seedActiveBooking(t, db, user.ID, vehicle.ID, &tariff.ID)

	if err := svc.DeleteUser(ctx, user.ID); !errors.Is(err, ErrUserHasActiveRides) {
		t.Fatalf("got %v, want ErrUserHasActiveRides", err)
	}

	err := db.Model(&domain.Booking{}).Where("user_id = ?", user.ID).
		Update("status", domain.BookingCompleted).Error
	if err != nil {
		t.Fatalf("complete booking: %v", err)
	}
	if err := svc.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("delete user after completion: %v", err)
	}
	if err := svc.DeleteUser(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("second delete: got %v, want ErrUserNotFound", err)
	}
}

func TestListUsersSearch(t *testing.T) {
	svc, db := newTestService(t)
	seedFleet(t, db)
	ctx := context.Background()

	second := &domain.User{
		FirstName:    "Elena",
		LastName:     "Vasileva",
		Email:        "vasileva@gmail.com",
		Phone:        "+79161234573",
		PasswordHash: "x",
		Balance:      dec("1000"),
	}
	if err := db.Create(second).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	all, err := svc.ListUsers(ctx, "")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d users, want 2", len(all))
	}

	found, err := svc.ListUsers(ctx, "VASIL")
	if err != nil {
		t.Fatalf("search users: %v", err)
	}
	if len(found) != 1 || found[0].Email != "vasileva@gmail.com" {
		t.Fatalf("unexpected search result: %+v", found)
	}
}

func TestVehicleCRUD(t *testing.T) {
	svc, db := newTestService(t)
	_, _, tariff, zone := seedFleet(t, db)
	ctx := context.Background()

	created, err := svc.CreateVehicle(ctx, VehicleRequest{
		LicensePlate:  " b456ek199 ",
		Brand:         "Hyundai",
		Model:         "Solaris",
		VehicleType:   "sedan",
		ParkingZoneID: &zone.ID,
		TariffID:      &tariff.ID,
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	if created.LicensePlate != "B456EK199" {
		t.Errorf("plate not normalized: %q", created.LicensePlate)
	}
	if created.Status != domain.VehicleAvailable {
		t.Errorf("status = %q, want available", created.Status)
	}

	maintenance := domain.VehicleMaintenance
	updated, err := svc.UpdateVehicle(ctx, created.ID, UpdateVehicleRequest{
		Status: &maintenance,
		Color:  strPtr("white"),
	})
	if err != nil {
		t.Fatalf("update vehicle: %v", err)
	}
	if updated.Status != domain.VehicleMaintenance {
		t.Errorf("status = %q, want maintenance", updated.Status)
	}
	if updated.Color == nil || *updated.Color != "white" {
		t.Errorf("color not updated: %v", updated.Color)
	}
	if updated.Tariff == nil {
		t.Error("expected tariff preloaded after update")
	}

	missing := int64(404)
	if _, err := svc.UpdateVehicle(ctx, created.ID, UpdateVehicleRequest{TariffID: &missing}); !errors.Is(err, ErrTariffNotFound) {
		t.Fatalf("got %v, want ErrTariffNotFound", err)
	}
}

func TestUpdateVehicleStatusPublishesToFeed(t *testing.T) {
	db := setupTestDB(t)
	feed := &recordingFeed{}
	svc := NewService(db, jwtsvc.New("test-secret", time.Hour), feed)
	_, vehicle, _, _ := seedFleet(t, db)
	ctx := context.Background()

	maintenance := domain.VehicleMaintenance
	if _, err := svc.UpdateVehicle(ctx, vehicle.ID, UpdateVehicleRequest{Status: &maintenance}); err != nil {
		t.Fatalf("update vehicle: %v", err)
	}
	want := fmt.Sprintf("%d:%s", vehicle.ID, domain.VehicleMaintenance)
	if len(feed.events) != 1 || feed.events[0] != want {
		t.Fatalf("feed events = %v, want [%s]", feed.events, want)
	}

	// a non-status update stays silent
	if _, err := svc.UpdateVehicle(ctx, vehicle.ID, UpdateVehicleRequest{Color: strPtr("red")}); err != nil {
		t.Fatalf("update vehicle: %v", err)
	}
	if len(feed.events) != 1 {
		t.Fatalf("expected no event for a color change, got %v", feed.events)
	}
}

func TestDashboardAndRevenue(t *testing.T) {
	svc, db := newTestService(t)
	user, vehicle, tariff, _ := seedFleet(t, db)
	ctx := context.Background()

	booking := seedActiveBooking(t, db, user.ID, vehicle.ID, &tariff.ID)
	if err := db.Model(vehicle).Update("status", domain.VehicleInUse).Error; err != nil {
		t.Fatalf("claim vehicle: %v", err)
	}

	txns := []domain.Transaction{
		{UserID: user.ID, BookingID: &booking.ID, TransactionType: domain.TransactionPayment, Amount: dec("720"), Status: domain.TransactionCompleted},
		{UserID: user.ID, TransactionType: domain.TransactionPenalty, Amount: dec("500"), Status: domain.TransactionCompleted},
		// top-up: a liability, never revenue
		{UserID: user.ID, TransactionType: domain.TransactionDeposit, Amount: dec("1000"), Status: domain.TransactionCompleted},
		// settlement refund: subtracted from revenue
		{UserID: user.ID, BookingID: &booking.ID, TransactionType: domain.TransactionDeposit, Amount: dec("100"), Status: domain.TransactionCompleted},
	}
	for i := range txns {
		if err := db.Create(&txns[i]).Error; err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}

	incident := &domain.Incident{
		VehicleID:    vehicle.ID,
		IncidentType: "damage",
		Description:  "Scratch on the front fender",
		Status:       domain.IncidentReported,
	}
	if err := db.Create(incident).Error; err != nil {
		t.Fatalf("seed incident: %v", err)
	}

	stats, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.TotalUsers != 1 || stats.TotalVehicles != 1 {
		t.Errorf("counts = %d users / %d vehicles, want 1/1", stats.TotalUsers, stats.TotalVehicles)
	}
	if stats.AvailableVehicles != 0 {
		t.Errorf("available vehicles = %d, want 0", stats.AvailableVehicles)
	}
	if stats.ActiveBookings != 1 || stats.TotalBookings != 1 {
		t.Errorf("bookings = %d active / %d total, want 1/1", stats.ActiveBookings, stats.TotalBookings)
	}
	if stats.OpenIncidents != 1 {
		t.Errorf("open incidents = %d, want 1", stats.OpenIncidents)
	}
	// payments + penalties − booking-linked refunds; plain top-ups stay out
	if !stats.TotalRevenue.Equal(dec("1120")) {
		t.Errorf("total revenue = %s, want 1120", stats.TotalRevenue)
	}

	points, err := svc.Revenue(ctx, 7)
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("got %d revenue points, want 1", len(points))
	}
	if !points[0].Revenue.Equal(dec("1120")) {
		t.Errorf("day revenue = %s, want 1120", points[0].Revenue)
	}
}
