package transaction

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"carsharex/internal/domain"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:txn_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Booking{}, &domain.Transaction{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return NewService(db), db
}

func seedUser(t *testing.T, db *gorm.DB, balance string) *domain.User {
	t.Helper()
	user := &domain.User{
		FirstName:    "Dana",
		LastName:     "Omarova",
		Email:        "dana@example.com",
		Phone:        "+77010000002",
		PasswordHash: "x",
		Balance:      decimal.RequireFromString(balance),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestDepositCreditsBalance(t *testing.T) {
	svc, db := setupTestService(t)
	user := seedUser(t, db, "1000")

	txn, err := svc.Deposit(context.Background(), user.ID, decimal.RequireFromString("2500.50"), "")
	if err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	if txn.TransactionType != domain.TransactionDeposit {
		t.Fatalf("expected deposit entry, got %s", txn.TransactionType)
	}
	if txn.Description == nil || *txn.Description != "Balance top-up" {
		t.Fatalf("expected default description, got %v", txn.Description)
	}

	var stored domain.User
	db.First(&stored, user.ID)
	if !stored.Balance.Equal(decimal.RequireFromString("3500.50")) {
		t.Fatalf("expected balance 3500.50, got %s", stored.Balance)
	}
}

func TestDepositsAreAdditive(t *testing.T) {
	svc, db := setupTestService(t)
	user := seedUser(t, db, "0")
	ctx := context.Background()

	for _, amount := range []string{"100", "250.25", "649.75"} {
		if _, err := svc.Deposit(ctx, user.ID, decimal.RequireFromString(amount), ""); err != nil {
			t.Fatalf("Deposit(%s): %v", amount, err)
		}
	}

	var stored domain.User
	db.First(&stored, user.ID)
	if !stored.Balance.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("expected balance 1000, got %s", stored.Balance)
	}

	txns, err := svc.ListUserTransactions(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListUserTransactions: %v", err)
	}
	if len(txns) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(txns))
	}
}

func TestPaymentEntryDoesNotTouchBalance(t *testing.T) {
	svc, db := setupTestService(t)
	user := seedUser(t, db, "5000")

	desc := "Damage penalty"
	_, err := svc.Create(context.Background(), CreateTransactionRequest{
		UserID:          user.ID,
		TransactionType: domain.TransactionPenalty,
		Amount:          decimal.RequireFromString("700"),
		Description:     &desc,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	var stored domain.User
	db.First(&stored, user.ID)
	if !stored.Balance.Equal(decimal.RequireFromString("5000")) {
		t.Fatalf("penalty entry must not move the balance, got %s", stored.Balance)
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc, db := setupTestService(t)
	user := seedUser(t, db, "0")
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTransactionRequest{
		UserID:          user.ID,
		TransactionType: domain.TransactionDeposit,
		Amount:          decimal.Zero,
	})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	_, err = svc.Create(ctx, CreateTransactionRequest{
		UserID:          user.ID,
		TransactionType: "transfer",
		Amount:          decimal.RequireFromString("10"),
	})
	if !errors.Is(err, ErrUnknownTxnType) {
		t.Fatalf("expected ErrUnknownTxnType, got %v", err)
	}

	_, err = svc.Deposit(ctx, 9999, decimal.RequireFromString("10"), "")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	missing := int64(4242)
	_, err = svc.Create(ctx, CreateTransactionRequest{
		UserID:          user.ID,
		BookingID:       &missing,
		TransactionType: domain.TransactionPayment,
		Amount:          decimal.RequireFromString("10"),
	})
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestListUserTransactionsUnknownUser(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.ListUserTransactions(context.Background(), 12345)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
