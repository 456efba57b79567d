package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carsharex/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateHourlyTariff(t *testing.T) {
	tariff := &domain.Tariff{ID: 1, Name: "Standard", PricePerHour: decPtr("350")}

	quote, err := Calculate(tariff, day(2026, 4, 1), day(2026, 4, 3))
	require.NoError(t, err)

	assert.Equal(t, 2, quote.DaysCount)
	assert.True(t, quote.PricePerDay.Equal(dec("8400.00")), "price per day = %s", quote.PricePerDay)
	assert.True(t, quote.TotalCost.Equal(dec("16800.00")), "total = %s", quote.TotalCost)
}

func TestCalculatePerMinuteTariff(t *testing.T) {
	tariff := &domain.Tariff{ID: 2, Name: "Econom", PricePerMinute: decPtr("0.5")}

	quote, err := Calculate(tariff, day(2026, 4, 1), day(2026, 4, 2))
	require.NoError(t, err)

	assert.Equal(t, 1, quote.DaysCount)
	assert.True(t, quote.PricePerDay.Equal(dec("720.00")))
	assert.True(t, quote.TotalCost.Equal(dec("720.00")))
}

func TestCalculateHourlyRateWinsOverPerMinute(t *testing.T) {
	tariff := &domain.Tariff{
		ID:             3,
		Name:           "Mixed",
		PricePerHour:   decPtr("100"),
		PricePerMinute: decPtr("99"),
	}

	quote, err := Calculate(tariff, day(2026, 4, 1), day(2026, 4, 2))
	require.NoError(t, err)
	assert.True(t, quote.PricePerDay.Equal(dec("2400.00")), "hourly rate must take precedence, got %s", quote.PricePerDay)
}

func TestCalculateRoundsToTwoDecimals(t *testing.T) {
	tariff := &domain.Tariff{ID: 4, Name: "Odd", PricePerMinute: decPtr("0.333")}

	quote, err := Calculate(tariff, day(2026, 4, 1), day(2026, 4, 4))
	require.NoError(t, err)

	// 0.333 * 1440 = 479.52 per day, three days
	assert.True(t, quote.PricePerDay.Equal(dec("479.52")))
	assert.True(t, quote.TotalCost.Equal(dec("1438.56")))
}

func TestCalculateCostGrowsWithRange(t *testing.T) {
	tariffs := []*domain.Tariff{
		{ID: 8, Name: "Standard", PricePerHour: decPtr("350")},
		{ID: 9, Name: "Econom", PricePerMinute: decPtr("0.333")},
	}

	start := day(2026, 4, 1)
	for _, tariff := range tariffs {
		prev := decimal.Zero
		for days := 1; days <= 14; days++ {
			quote, err := Calculate(tariff, start, start.AddDate(0, 0, days))
			require.NoError(t, err)
			assert.True(t, quote.TotalCost.GreaterThan(prev),
				"%s: cost for %d days (%s) must exceed %s", tariff.Name, days, quote.TotalCost, prev)
			prev = quote.TotalCost
		}
	}
}

func TestCalculateRejectsEmptyOrInvertedRange(t *testing.T) {
	tariff := &domain.Tariff{ID: 5, Name: "Standard", PricePerHour: decPtr("350")}

	_, err := Calculate(tariff, day(2026, 4, 3), day(2026, 4, 3))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = Calculate(tariff, day(2026, 4, 3), day(2026, 4, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCalculateIgnoresTimeOfDay(t *testing.T) {
	tariff := &domain.Tariff{ID: 6, Name: "Standard", PricePerHour: decPtr("350")}

	late := time.Date(2026, 4, 1, 23, 45, 0, 0, time.UTC)
	early := time.Date(2026, 4, 3, 0, 10, 0, 0, time.UTC)

	quote, err := Calculate(tariff, late, early)
	require.NoError(t, err)
	assert.Equal(t, 2, quote.DaysCount)
}

func TestCalculateTariffWithoutRates(t *testing.T) {
	tariff := &domain.Tariff{ID: 7, Name: "Broken"}

	_, err := Calculate(tariff, day(2026, 4, 1), day(2026, 4, 2))
	assert.ErrorIs(t, err, ErrTariffHasNoPrice)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-04-01")
	require.NoError(t, err)
	assert.Equal(t, day(2026, 4, 1), parsed)

	_, err = ParseDate("01.04.2026")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestBookingInterval(t *testing.T) {
	start, end := bookingInterval(day(2026, 4, 1), day(2026, 4, 3))

	assert.Equal(t, day(2026, 4, 1), start)
	assert.Equal(t, time.Date(2026, 4, 3, 23, 59, 59, 0, time.UTC), end)
}
