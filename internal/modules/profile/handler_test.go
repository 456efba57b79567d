package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"carsharex/internal/domain"
	"carsharex/internal/modules/transaction"
)

func setupRouter(t *testing.T, authedUserID int64) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:profile_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Booking{}, &domain.Transaction{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	handler := NewHandler(NewService(db, transaction.NewService(db)))

	r := gin.New()
	api := r.Group("/api", func(c *gin.Context) {
		c.Set("user_id", authedUserID)
	})
	handler.RegisterRoutes(api)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, balance string) *domain.User {
	t.Helper()
	user := &domain.User{
		FirstName:    "Ivan",
		LastName:     "Morozov",
		Email:        "morozov@mail.ru",
		Phone:        "+79161234572",
		PasswordHash: "x",
		Balance:      decimal.RequireFromString(balance),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProfileRoutesCarryUserIDInPath(t *testing.T) {
	r, db := setupRouter(t, 1)
	user := seedUser(t, db, "500")

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/profile/%d", user.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, body %s", w.Code, w.Body.String())
	}
	var got struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if got.Email != user.Email {
		t.Fatalf("email = %q, want %q", got.Email, user.Email)
	}

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/profile/%d", user.ID), gin.H{
		"first_name": "Vanya",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("patch status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/profile/%d/top-up", user.ID), gin.H{
		"amount": "250",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("top-up status = %d, body %s", w.Code, w.Body.String())
	}

	var stored domain.User
	db.First(&stored, user.ID)
	if stored.FirstName != "Vanya" {
		t.Fatalf("first name = %q, want Vanya", stored.FirstName)
	}
	if !stored.Balance.Equal(decimal.RequireFromString("750")) {
		t.Fatalf("balance = %s, want 750", stored.Balance)
	}
}

func TestProfileRejectsForeignUserID(t *testing.T) {
	r, db := setupRouter(t, 42)
	user := seedUser(t, db, "500")

	for _, tc := range []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, fmt.Sprintf("/api/profile/%d", user.ID), nil},
		{http.MethodPatch, fmt.Sprintf("/api/profile/%d", user.ID), gin.H{"first_name": "Mallory"}},
		{http.MethodPost, fmt.Sprintf("/api/profile/%d/top-up", user.ID), gin.H{"amount": "250"}},
	} {
		w := doJSON(t, r, tc.method, tc.path, tc.body)
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s %s: status = %d, want 403", tc.method, tc.path, w.Code)
		}
		var apiErr struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &apiErr); err != nil {
			t.Fatalf("decode error body: %v", err)
		}
		if apiErr.Detail != "Access denied" {
			t.Fatalf("detail = %q", apiErr.Detail)
		}
	}

	var stored domain.User
	db.First(&stored, user.ID)
	if stored.FirstName != "Ivan" || !stored.Balance.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("profile must be untouched, got %s / %s", stored.FirstName, stored.Balance)
	}
}
