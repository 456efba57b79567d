package database

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "modernc.org/sqlite"

	"carsharex/internal/domain"
)

func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logrus.Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	logrus.WithField("dsn", dsn).Info("using SQLite for local development")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate keeps the schema in sync with the domain entities. Called on
// startup and by the seed command.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Role{},
		&domain.Branch{},
		&domain.Employee{},
		&domain.User{},
		&domain.Tariff{},
		&domain.ParkingZone{},
		&domain.Vehicle{},
		&domain.Booking{},
		&domain.Transaction{},
		&domain.Incident{},
	)
}
