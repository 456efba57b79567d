package booking

import (
	"time"

	"github.com/shopspring/decimal"

	"carsharex/internal/domain"
)

const dateLayout = "2006-01-02"

var (
	hoursPerDay   = decimal.NewFromInt(24)
	minutesPerDay = decimal.NewFromInt(1440)
)

// Quote is the priced-out result of a tariff applied to a date range.
type Quote struct {
	DaysCount   int
	PricePerDay decimal.Decimal
	TotalCost   decimal.Decimal
}

// Calculate prices a closed calendar-day interval against a tariff. The
// range is counted in whole days (Apr 1 to Apr 3 = 2 days) and must be
// strictly positive. The hourly rate wins when a tariff carries both rates.
// Amounts are rounded half away from zero to 2 decimal places.
func Calculate(tariff *domain.Tariff, startDate, endDate time.Time) (Quote, error) {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)

	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return Quote{}, ErrInvalidDateRange
	}

	var pricePerDay decimal.Decimal
	switch {
	case tariff.PricePerHour != nil:
		pricePerDay = tariff.PricePerHour.Mul(hoursPerDay)
	case tariff.PricePerMinute != nil:
		pricePerDay = tariff.PricePerMinute.Mul(minutesPerDay)
	default:
		return Quote{}, ErrTariffHasNoPrice
	}

	pricePerDay = pricePerDay.Round(2)

	return Quote{
		DaysCount:   days,
		PricePerDay: pricePerDay,
		TotalCost:   pricePerDay.Mul(decimal.NewFromInt(int64(days))).Round(2),
	}, nil
}

// ParseDate accepts the API's YYYY-MM-DD wire format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateRange
	}
	return t, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// bookingInterval converts the date range into the stored closed interval:
// start of the first day through the last second of the last day.
func bookingInterval(startDate, endDate time.Time) (time.Time, time.Time) {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate).AddDate(0, 0, 1).Add(-time.Second)
	return start, end
}
