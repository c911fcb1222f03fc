package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesFormat(t *testing.T) {
	assert.Equal(t, "BUY-00001", PurchaseInvoices.Format(1))
	assert.Equal(t, "IBD-00042", InboundDeliveries.Format(42))
	assert.Equal(t, "HSF-QUOT-00007", SalesQuotes.Format(7))
	assert.Equal(t, "HSF-SALES-12345", SalesInvoices.Format(12345))
	// Width is a minimum, not a cap
	assert.Equal(t, "BUY-123456", PurchaseInvoices.Format(123456))
}

func TestSeriesParse(t *testing.T) {
	tests := []struct {
		name   string
		series Series
		input  string
		want   int64
		ok     bool
	}{
		{"canonical", PurchaseInvoices, "BUY-00001", 1, true},
		{"canonical large", PurchaseInvoices, "BUY-99999", 99999, true},
		{"legacy sales invoice", SalesInvoices, "PS-CUAN-00000123", 123, true},
		{"canonical sales invoice", SalesInvoices, "HSF-SALES-00009", 9, true},
		{"legacy sales delivery", SalesDeliveries, "OUTBOUND-DELIVERY-00031", 31, true},
		{"wrong series", PurchaseInvoices, "IBD-00001", 0, false},
		{"malformed suffix", PurchaseInvoices, "BUY-1a", 0, false},
		{"no suffix", PurchaseInvoices, "BUY-", 0, false},
		{"trailing garbage", PurchaseInvoices, "BUY-00001x", 0, false},
		{"empty", PurchaseInvoices, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.series.Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeriesRoundTrip(t *testing.T) {
	for _, s := range []Series{PurchaseInvoices, InboundDeliveries, SalesQuotes, SalesInvoices, SalesDeliveries} {
		for _, n := range []int64{1, 10, 99999, 100000} {
			got, ok := s.Parse(s.Format(n))
			assert.True(t, ok, "series %s value %d", s.Name, n)
			assert.Equal(t, n, got)
		}
	}
}
