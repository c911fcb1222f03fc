package sequence

import (
	"context"
	"fmt"
	"regexp"
)

// Series identifies one family of document numbers sharing a prefix, a
// zero-pad width and a single counter. Numbers in a series are strictly
// increasing by one per created document.
type Series struct {
	// Name is the counter key, stable across prefix migrations.
	Name string
	// Prefix is the canonical prefix new numbers are emitted with.
	Prefix string
	// Width is the zero-pad width of the numeric suffix.
	Width int
	// LegacyPrefixes are prefixes from earlier revisions of the same series.
	// They are only ever parsed (when seeding a counter from historical
	// documents), never emitted.
	LegacyPrefixes []string
}

// The document series in use. Sales invoices and sales deliveries had two
// numbering schemes in historical data; the HSF- scheme is canonical and the
// other is kept for parsing only.
var (
	PurchaseInvoices = Series{Name: "purchase_invoices", Prefix: "BUY-", Width: 5}
	InboundDeliveries = Series{Name: "inbound_deliveries", Prefix: "IBD-", Width: 5}
	SalesQuotes       = Series{Name: "sales_quotes", Prefix: "HSF-QUOT-", Width: 5}
	SalesInvoices     = Series{Name: "sales_invoices", Prefix: "HSF-SALES-", Width: 5, LegacyPrefixes: []string{"PS-CUAN-"}}
	SalesDeliveries   = Series{Name: "sales_deliveries", Prefix: "HSF-OBD-", Width: 5, LegacyPrefixes: []string{"OUTBOUND-DELIVERY-"}}
)

// Format renders the number n as a document number in this series.
func (s Series) Format(n int64) string {
	return fmt.Sprintf("%s%0*d", s.Prefix, s.Width, n)
}

// Parse extracts the numeric value from a document number, accepting the
// canonical prefix and any legacy prefix. Returns false for numbers that do
// not belong to this series or have a malformed suffix.
func (s Series) Parse(documentNo string) (int64, bool) {
	prefixes := append([]string{s.Prefix}, s.LegacyPrefixes...)
	for _, prefix := range prefixes {
		re := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)$`)
		m := re.FindStringSubmatch(documentNo)
		if m == nil {
			continue
		}
		var n int64
		if _, err := fmt.Sscanf(m[1], "%d", &n); err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Allocator assigns the next gap-free number in a series. Implementations
// must serialize concurrent callers on the series' counter so that two
// transactions never receive the same number; gaps from rolled-back
// transactions are tolerated, duplicates are not.
type Allocator interface {
	// Next returns the next document number in the series. It must be called
	// inside the same transaction that persists the numbered document.
	Next(ctx context.Context, series Series) (string, error)
}
