package domain

import "github.com/shopspring/decimal"

// User is a client of the platform. Balance is a denormalized cache of the
// transaction ledger and is only mutated inside the same database
// transaction as the ledger insert that explains the change.
type User struct {
	ID             int64           `json:"id" gorm:"column:id;primaryKey"`
	FirstName      string          `json:"first_name" gorm:"column:first_name;size:50;not null"`
	LastName       string          `json:"last_name" gorm:"column:last_name;size:50;not null"`
	Email          string          `json:"email" gorm:"column:email;size:100;uniqueIndex;not null"`
	Phone          string          `json:"phone" gorm:"column:phone;size:20;uniqueIndex;not null"`
	PasswordHash   string          `json:"-" gorm:"column:password_hash;size:100;not null"`
	DriversLicense *string         `json:"drivers_license,omitempty" gorm:"column:drivers_license;size:20;uniqueIndex"`
	Balance        decimal.Decimal `json:"balance" gorm:"column:balance;type:numeric(12,2);not null;default:0"`
}

func (User) TableName() string { return "users" }
