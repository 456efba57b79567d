package admin

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carsharex/internal/domain"
)

// Dashboard aggregates the headline counters for the admin console.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{TotalRevenue: decimal.Zero}

	counts := []struct {
		dest  *int64
		model interface{}
		where []interface{}
	}{
		{&stats.TotalUsers, &domain.User{}, nil},
		{&stats.TotalVehicles, &domain.Vehicle{}, nil},
		{&stats.AvailableVehicles, &domain.Vehicle{}, []interface{}{"status = ?", domain.VehicleAvailable}},
		{&stats.TotalBookings, &domain.Booking{}, nil},
		{&stats.ActiveBookings, &domain.Booking{}, []interface{}{"status = ?", domain.BookingActive}},
		{&stats.OpenIncidents, &domain.Incident{}, []interface{}{"status <> ?", domain.IncidentResolved}},
	}
	for _, c := range counts {
		q := s.db.WithContext(ctx).Model(c.model)
		if c.where != nil {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	revenue, err := s.sumRevenue(ctx, nil)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue

	return stats, nil
}

// Revenue returns per-day revenue over the trailing window. Payments and
// penalties count toward revenue; top-up deposits are customer liabilities,
// not income, but booking-linked deposits are settlement refunds and are
// subtracted so revenue reflects what was actually kept.
func (s *Service) Revenue(ctx context.Context, days int) ([]RevenuePoint, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)

	var rows []struct {
		Day     string
		Revenue decimal.Decimal
	}
	err := s.revenueQuery(ctx).
		Select("DATE(created_at) AS day, SUM(CASE WHEN transaction_type = ? THEN -amount ELSE amount END) AS revenue",
			domain.TransactionDeposit).
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("day").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]RevenuePoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, RevenuePoint{Day: r.Day, Revenue: r.Revenue})
	}
	return points, nil
}

func (s *Service) sumRevenue(ctx context.Context, since *time.Time) (decimal.Decimal, error) {
	var raw *string
	q := s.revenueQuery(ctx).
		Select("SUM(CASE WHEN transaction_type = ? THEN -amount ELSE amount END)", domain.TransactionDeposit)
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	if err := q.Scan(&raw).Error; err != nil {
		return decimal.Zero, err
	}
	if raw == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}

func (s *Service) revenueQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("transaction_type IN ? OR (transaction_type = ? AND booking_id IS NOT NULL)",
			[]domain.TransactionType{domain.TransactionPayment, domain.TransactionPenalty},
			domain.TransactionDeposit)
}
