package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/analytics"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "R$ 0,00",
		"4.5":        "R$ 4,50",
		"1234.5":     "R$ 1.234,50",
		"1000000.99": "R$ 1.000.000,99",
		"-12.3":      "-R$ 12,30",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateInventoryReport_DevuelvePDF(t *testing.T) {
	frutas := "Frutas"
	report := analytics.InventoryReport{
		GeneratedAt:       time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		LowStockThreshold: 10,
		Stats: repository.InventoryStats{
			TotalProducts:  2,
			LowStock:       1,
			InventoryValue: decimal.RequireFromString("150.00"),
		},
		Products: []*entity.Product{
			{ID: 1, Name: "Banana", Price: decimal.RequireFromString("5.00"), Unit: "kg", CategoryName: &frutas, Stock: 20},
			{ID: 2, Name: "Sal", Price: decimal.RequireFromString("10.00"), Unit: "un", Stock: 5},
		},
	}

	out, err := NewMarotoReportGenerator().GenerateInventoryReport(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
