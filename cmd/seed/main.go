package main

import (
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"carsharex/internal/database"
	"carsharex/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func i64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "carsharex.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	var existing int64
	db.Model(&domain.Role{}).Count(&existing)
	if existing > 0 {
		log.Println("Database already seeded, nothing to do")
		return
	}

	// ================== ROLES ==================
	log.Println("Creating roles...")
	roles := []domain.Role{
		{Name: "SuperAdmin"},
		{Name: "Manager"},
		{Name: "Support"},
		{Name: "Mechanic"},
	}
	for i := range roles {
		db.Create(&roles[i])
	}

	// ================== BRANCHES ==================
	log.Println("Creating branches...")
	branches := []domain.Branch{
		{Name: "Central Office", Address: "10 Tverskaya St", Phone: strPtr("+7 (495) 123-45-67")},
		{Name: "Arbat Office", Address: "25 Arbat St", Phone: strPtr("+7 (495) 234-56-78")},
		{Name: "VDNKh Office", Address: "119 Mira Ave", Phone: strPtr("+7 (495) 345-67-89")},
	}
	for i := range branches {
		db.Create(&branches[i])
	}

	// ================== EMPLOYEES ==================
	log.Println("Creating employees...")
	employees := []struct {
		first, last, email, password string
		roleID, branchID             int64
	}{
		{"Alexey", "Ivanov", "ivanov@carsharex.ru", "admin123", roles[0].ID, branches[0].ID},
		{"Maria", "Petrova", "petrova@carsharex.ru", "manager123", roles[1].ID, branches[0].ID},
		{"Dmitry", "Sidorov", "sidorov@carsharex.ru", "support123", roles[2].ID, branches[1].ID},
		{"Sergey", "Kuznetsov", "kuznetsov@carsharex.ru", "mechanic123", roles[3].ID, branches[2].ID},
	}
	for _, e := range employees {
		hash, _ := bcrypt.GenerateFromPassword([]byte(e.password), bcrypt.DefaultCost)
		db.Create(&domain.Employee{
			FirstName:    e.first,
			LastName:     e.last,
			Email:        e.email,
			PasswordHash: string(hash),
			RoleID:       i64Ptr(e.roleID),
			BranchID:     i64Ptr(e.branchID),
		})
	}

	// ================== USERS ==================
	log.Println("Creating users...")
	users := []struct {
		first, last, email, phone, license, balance string
	}{
		{"Ivan", "Morozov", "morozov@mail.ru", "+79161234572", "77 12 345678", "500"},
		{"Elena", "Vasileva", "vasileva@gmail.com", "+79161234573", "77 23 456789", "1000"},
		{"Mikhail", "Novikov", "novikov@yandex.ru", "+79161234574", "77 34 567890", "250"},
		{"Olga", "Kozlova", "kozlova@mail.ru", "+79161234575", "77 45 678901", "750"},
		{"Alexander", "Lebedev", "lebedev@gmail.com", "+79161234576", "77 56 789012", "300"},
	}
	userIDs := make([]int64, 0, len(users))
	for _, u := range users {
		hash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
		row := domain.User{
			FirstName:      u.first,
			LastName:       u.last,
			Email:          u.email,
			Phone:          u.phone,
			PasswordHash:   string(hash),
			DriversLicense: strPtr(u.license),
			Balance:        dec(u.balance),
		}
		db.Create(&row)
		userIDs = append(userIDs, row.ID)
	}

	// ================== TARIFFS ==================
	log.Println("Creating tariffs...")
	tariffs := []domain.Tariff{
		{Name: "Per-minute", PricePerMinute: decPtr("8.0")},
		{Name: "Hourly", PricePerHour: decPtr("350.0")},
		{Name: "Daily", PricePerHour: decPtr("2500.0")},
		{Name: "Premium", PricePerMinute: decPtr("12.0"), PricePerHour: decPtr("550.0")},
	}
	for i := range tariffs {
		db.Create(&tariffs[i])
	}

	// ================== PARKING ZONES ==================
	log.Println("Creating parking zones...")
	zones := []domain.ParkingZone{
		{Name: "Center Parking", Address: "10 Tverskaya St", Capacity: 15},
		{Name: "Arbat Parking", Address: "25 Arbat St", Capacity: 12},
		{Name: "Lubyanka Parking", Address: "2 Lubyanka Sq", Capacity: 10},
		{Name: "Gorky Park Parking", Address: "9 Krymsky Val St", Capacity: 20},
		{Name: "VDNKh Parking", Address: "119 Mira Ave", Capacity: 25},
	}
	for i := range zones {
		db.Create(&zones[i])
	}

	// ================== VEHICLES ==================
	log.Println("Creating vehicles...")
	vehicles := []domain.Vehicle{
		{LicensePlate: "A123BC777", Brand: "Kia", Model: "Rio", VehicleType: "sedan", Year: intPtr(2022), Status: domain.VehicleAvailable, ParkingZoneID: i64Ptr(zones[0].ID), TariffID: i64Ptr(tariffs[0].ID)},
		{LicensePlate: "B456EK199", Brand: "Hyundai", Model: "Solaris", VehicleType: "sedan", Year: intPtr(2021), Status: domain.VehicleAvailable, ParkingZoneID: i64Ptr(zones[0].ID), TariffID: i64Ptr(tariffs[0].ID)},
		{LicensePlate: "C789MH777", Brand: "Renault", Model: "Duster", VehicleType: "suv", Year: intPtr(2023), Status: domain.VehicleAvailable, ParkingZoneID: i64Ptr(zones[1].ID), TariffID: i64Ptr(tariffs[1].ID)},
		{LicensePlate: "E012OP199", Brand: "Volkswagen", Model: "Polo", VehicleType: "sedan", Year: intPtr(2020), Status: domain.VehicleAvailable, ParkingZoneID: i64Ptr(zones[2].ID), TariffID: i64Ptr(tariffs[0].ID)},
		{LicensePlate: "K345CT777", Brand: "Skoda", Model: "Rapid", VehicleType: "sedan", Year: intPtr(2022), Status: domain.VehicleInUse, ParkingZoneID: i64Ptr(zones[3].ID), TariffID: i64Ptr(tariffs[0].ID)},
		{LicensePlate: "M678YF199", Brand: "Tesla", Model: "Model 3", VehicleType: "electric", Year: intPtr(2023), Status: domain.VehicleAvailable, ParkingZoneID: i64Ptr(zones[1].ID), TariffID: i64Ptr(tariffs[3].ID)},
		{LicensePlate: "H901XC777", Brand: "Nissan", Model: "Leaf", VehicleType: "electric", Year: intPtr(2021), Status: domain.VehicleAvailable, ParkingZoneID: i64Ptr(zones[4].ID), TariffID: i64Ptr(tariffs[1].ID)},
		{LicensePlate: "O234CH199", Brand: "Toyota", Model: "Prius", VehicleType: "hybrid", Year: intPtr(2022), Status: domain.VehicleAvailable, ParkingZoneID: i64Ptr(zones[2].ID), TariffID: i64Ptr(tariffs[1].ID)},
		{LicensePlate: "P567SH777", Brand: "Lexus", Model: "UX 300h", VehicleType: "hybrid", Year: intPtr(2023), Status: domain.VehicleAvailable, ParkingZoneID: i64Ptr(zones[0].ID), TariffID: i64Ptr(tariffs[3].ID)},
		{LicensePlate: "R890EY199", Brand: "Kia", Model: "Rio", VehicleType: "sedan", Year: intPtr(2019), Status: domain.VehicleMaintenance, TariffID: i64Ptr(tariffs[0].ID)},
	}
	for i := range vehicles {
		db.Create(&vehicles[i])
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	at := func(y int, m time.Month, d, h, min int) time.Time {
		return time.Date(y, m, d, h, min, 0, 0, time.UTC)
	}
	timePtr := func(t time.Time) *time.Time { return &t }

	bookings := []domain.Booking{
		{UserID: userIDs[0], VehicleID: vehicles[0].ID, TariffID: i64Ptr(tariffs[0].ID), StartTime: at(2026, 7, 28, 9, 0), EndTime: timePtr(at(2026, 7, 28, 10, 30)), TotalCost: dec("720.0"), Status: domain.BookingCompleted},
		{UserID: userIDs[1], VehicleID: vehicles[1].ID, TariffID: i64Ptr(tariffs[1].ID), StartTime: at(2026, 7, 28, 14, 0), EndTime: timePtr(at(2026, 7, 28, 17, 0)), TotalCost: dec("1050.0"), Status: domain.BookingCompleted},
		{UserID: userIDs[2], VehicleID: vehicles[2].ID, TariffID: i64Ptr(tariffs[1].ID), StartTime: at(2026, 7, 29, 11, 0), EndTime: timePtr(at(2026, 7, 29, 13, 30)), TotalCost: dec("875.0"), Status: domain.BookingCompleted},
		{UserID: userIDs[3], VehicleID: vehicles[5].ID, TariffID: i64Ptr(tariffs[3].ID), StartTime: at(2026, 7, 29, 16, 0), EndTime: timePtr(at(2026, 7, 29, 18, 0)), TotalCost: dec("1440.0"), Status: domain.BookingCompleted},
		{UserID: userIDs[4], VehicleID: vehicles[3].ID, TariffID: i64Ptr(tariffs[0].ID), StartTime: at(2026, 7, 29, 19, 0), EndTime: timePtr(at(2026, 7, 29, 20, 0)), TotalCost: dec("480.0"), Status: domain.BookingCompleted},
		{UserID: userIDs[0], VehicleID: vehicles[4].ID, TariffID: i64Ptr(tariffs[0].ID), StartTime: at(2026, 7, 30, 8, 0), TotalCost: dec("0"), Status: domain.BookingActive},
		{UserID: userIDs[1], VehicleID: vehicles[6].ID, TariffID: i64Ptr(tariffs[1].ID), StartTime: at(2026, 7, 31, 10, 0), TotalCost: dec("0"), Status: domain.BookingPending},
	}
	for i := range bookings {
		db.Create(&bookings[i])
	}

	// ================== TRANSACTIONS ==================
	log.Println("Creating transactions...")
	transactions := []domain.Transaction{
		{UserID: userIDs[0], BookingID: i64Ptr(bookings[0].ID), TransactionType: domain.TransactionPayment, Amount: dec("720.0"), Status: domain.TransactionCompleted},
		{UserID: userIDs[1], BookingID: i64Ptr(bookings[1].ID), TransactionType: domain.TransactionPayment, Amount: dec("1050.0"), Status: domain.TransactionCompleted},
		{UserID: userIDs[2], BookingID: i64Ptr(bookings[2].ID), TransactionType: domain.TransactionPayment, Amount: dec("875.0"), Status: domain.TransactionCompleted},
		{UserID: userIDs[3], BookingID: i64Ptr(bookings[3].ID), TransactionType: domain.TransactionPayment, Amount: dec("1440.0"), Status: domain.TransactionCompleted},
		{UserID: userIDs[4], BookingID: i64Ptr(bookings[4].ID), TransactionType: domain.TransactionPayment, Amount: dec("480.0"), Status: domain.TransactionCompleted},
		{UserID: userIDs[0], TransactionType: domain.TransactionDeposit, Amount: dec("1000.0"), Status: domain.TransactionCompleted},
		{UserID: userIDs[2], BookingID: i64Ptr(bookings[2].ID), TransactionType: domain.TransactionPenalty, Amount: dec("500.0"), Status: domain.TransactionCompleted},
	}
	for i := range transactions {
		db.Create(&transactions[i])
	}

	// ================== INCIDENTS ==================
	log.Println("Creating incidents...")
	incidents := []domain.Incident{
		{BookingID: i64Ptr(bookings[2].ID), VehicleID: vehicles[2].ID, UserID: i64Ptr(userIDs[2]), IncidentType: "damage", Description: "Scratch on the front fender", Status: domain.IncidentInProgress},
		{VehicleID: vehicles[9].ID, IncidentType: "technical_issue", Description: "Engine does not start", Status: domain.IncidentReported},
		{BookingID: i64Ptr(bookings[4].ID), VehicleID: vehicles[3].ID, UserID: i64Ptr(userIDs[4]), IncidentType: "violation", Description: "Parking violation fine", Status: domain.IncidentResolved},
	}
	for i := range incidents {
		db.Create(&incidents[i])
	}

	log.Println("Seed completed!")
	log.Println("Admin: ivanov@carsharex.ru / admin123")
	log.Println("Users: morozov@mail.ru ... lebedev@gmail.com / user123")
}
