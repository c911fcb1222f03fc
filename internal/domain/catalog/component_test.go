package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a Wednesday and a Sunday, for weekday-dependent pricing
var (
	wednesday = time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	sunday    = time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC)
)

func newTestComponent(t *testing.T) *Component {
	t.Helper()
	c, err := NewComponent("RTX 5080", "GPU-5080", uuid.New(), "Graphics Cards")
	require.NoError(t, err)
	return c
}

func TestNewComponentValidation(t *testing.T) {
	_, err := NewComponent("", "X", uuid.New(), "Graphics Cards")
	assert.Error(t, err)
	_, err = NewComponent("X", "", uuid.New(), "Graphics Cards")
	assert.Error(t, err)
	_, err = NewComponent("X", "X", uuid.Nil, "Graphics Cards")
	assert.Error(t, err)
}

func TestDayTypeFor(t *testing.T) {
	assert.Equal(t, DayType(3), DayTypeFor(wednesday))
	assert.Equal(t, DayTypeSunday, DayTypeFor(sunday))
}

func TestPriceOnFallsBackToDefault(t *testing.T) {
	c := newTestComponent(t)
	require.NoError(t, c.SetPrice(DayTypeDefault, decimal.NewFromInt(1500), true))

	assert.True(t, decimal.NewFromInt(1500).Equal(c.PriceOn(wednesday)))
}

func TestPriceOnPrefersActiveWeekdayTier(t *testing.T) {
	c := newTestComponent(t)
	require.NoError(t, c.SetPrice(DayTypeDefault, decimal.NewFromInt(1500), true))
	require.NoError(t, c.SetPrice(DayType(3), decimal.NewFromInt(1350), true))

	assert.True(t, decimal.NewFromInt(1350).Equal(c.PriceOn(wednesday)))
	// other weekdays still get the default tier
	assert.True(t, decimal.NewFromInt(1500).Equal(c.PriceOn(sunday)))
}

func TestPriceOnIgnoresInactiveTier(t *testing.T) {
	c := newTestComponent(t)
	require.NoError(t, c.SetPrice(DayTypeDefault, decimal.NewFromInt(1500), true))
	require.NoError(t, c.SetPrice(DayType(3), decimal.NewFromInt(1350), false))

	assert.True(t, decimal.NewFromInt(1500).Equal(c.PriceOn(wednesday)))
}

func TestPriceOnWithoutAnyTierIsZero(t *testing.T) {
	c := newTestComponent(t)
	assert.True(t, c.PriceOn(wednesday).IsZero())
}

func TestSetPriceReplacesExistingTier(t *testing.T) {
	c := newTestComponent(t)
	require.NoError(t, c.SetPrice(DayTypeDefault, decimal.NewFromInt(1500), true))
	require.NoError(t, c.SetPrice(DayTypeDefault, decimal.NewFromInt(1600), true))

	assert.Len(t, c.SellPrices, 1)
	assert.True(t, decimal.NewFromInt(1600).Equal(c.PriceOn(sunday)))
}

func TestSetPriceValidation(t *testing.T) {
	c := newTestComponent(t)
	assert.Error(t, c.SetPrice(DayType(8), decimal.NewFromInt(1), true))
	assert.Error(t, c.SetPrice(DayTypeDefault, decimal.NewFromInt(-1), true))
}
