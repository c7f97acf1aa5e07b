package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func level(available, reorder int64) StockLevel {
	return StockLevel{
		ProductID:         uuid.New(),
		ProductName:       "Test Product",
		QuantityAvailable: available,
		ReorderLevel:      reorder,
	}
}

func TestStockLevel_Classify(t *testing.T) {
	cases := []struct {
		name      string
		available int64
		reorder   int64
		want      AlertSeverity
	}{
		{"empty stock is out of stock", 0, 100, SeverityOutOfStock},
		{"at quarter of reorder level is critical", 25, 100, SeverityCritical},
		{"below quarter is critical", 20, 100, SeverityCritical},
		{"at half of reorder level is warning", 50, 100, SeverityWarning},
		{"between quarter and half is warning", 40, 100, SeverityWarning},
		{"above half is healthy", 60, 100, SeverityNone},
		{"well stocked is healthy", 500, 100, SeverityNone},
		{"zero reorder level never alerts", 0, 0, SeverityNone},
		{"negative reorder level never alerts", 0, -5, SeverityNone},
		{"odd thresholds round toward critical", 2, 9, SeverityCritical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, level(tc.available, tc.reorder).Classify())
		})
	}
}

func TestStockLevel_StockPercentage(t *testing.T) {
	t.Run("percentage of reorder level", func(t *testing.T) {
		assert.Equal(t, "40", level(40, 100).StockPercentage().String())
		assert.Equal(t, "33.33", level(1, 3).StockPercentage().String())
	})

	t.Run("zero reorder level yields zero not an error", func(t *testing.T) {
		assert.True(t, level(75, 0).StockPercentage().IsZero())
	})

	t.Run("above reorder level exceeds 100", func(t *testing.T) {
		assert.Equal(t, "250", level(250, 100).StockPercentage().String())
	})
}

func TestStockLevel_BelowReorderLevel(t *testing.T) {
	assert.True(t, level(10, 10).BelowReorderLevel())
	assert.True(t, level(0, 0).BelowReorderLevel())
	assert.False(t, level(11, 10).BelowReorderLevel())
}
