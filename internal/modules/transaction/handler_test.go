package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carsharex/internal/domain"
)

func setupRouter(t *testing.T) (*gin.Engine, *Service, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, db := setupTestService(t)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(svc).RegisterRoutes(api)
	return r, svc, db
}

func TestCreateTransactionTakesUserIDFromQuery(t *testing.T) {
	r, _, db := setupRouter(t)
	user := seedUser(t, db, "0")

	body, _ := json.Marshal(gin.H{
		"transaction_type": "deposit",
		"amount":           "500",
	})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/transactions?user_id=%d", user.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var created struct {
		UserID          int64  `json:"user_id"`
		TransactionType string `json:"transaction_type"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.UserID != user.ID || created.TransactionType != string(domain.TransactionDeposit) {
		t.Fatalf("unexpected transaction: %+v", created)
	}

	var stored domain.User
	db.First(&stored, user.ID)
	if !stored.Balance.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("expected balance 500, got %s", stored.Balance)
	}
}

func TestCreateTransactionRequiresUserIDQuery(t *testing.T) {
	r, _, _ := setupRouter(t)

	body, _ := json.Marshal(gin.H{
		"transaction_type": "deposit",
		"amount":           "500",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var apiErr struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if apiErr.Detail != "user_id query parameter is required" {
		t.Fatalf("detail = %q", apiErr.Detail)
	}
}

func TestDepositEndpointKeepsDescription(t *testing.T) {
	r, _, db := setupRouter(t)
	user := seedUser(t, db, "0")

	path := fmt.Sprintf("/api/transactions/deposit?user_id=%d&amount=250&description=Gift+card", user.ID)
	req := httptest.NewRequest(http.MethodPost, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var created struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Description != "Gift card" {
		t.Fatalf("description = %q, want Gift card", created.Description)
	}
}
