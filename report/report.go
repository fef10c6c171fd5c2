package report

import (
	"fmt"
	"strings"

	"github.com/streetvendor/ledger/atomicfile"
	"github.com/streetvendor/ledger/inventory"
	"github.com/streetvendor/ledger/record"
	"github.com/streetvendor/ledger/saleslog"
)

// ItemCount pairs an item name with how many units of it were sold.
type ItemCount struct {
	Name  string
	Count int
}

// Summary is derived from a sales log, never persisted.
type Summary struct {
	TotalRevenue float64
	ItemsSold    int
	UniqueItems  int
	// nil when the log has no rows. On equal counts the first item
	// to reach the maximum in row order wins.
	BestSeller *ItemCount
	// units sold per item
	ItemBreakdown map[string]int
}

// Summarize scans the whole sales log and aggregates it. A header-only
// or empty log yields a zero summary, not an error.
func Summarize(path string) (*Summary, error) {
	rows, err := saleslog.ReadRows(path)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	// names in order of first appearance, for a stable best-seller
	// pick (map iteration order won't do)
	var order []string
	s := &Summary{ItemBreakdown: counts}
	for _, r := range rows {
		s.TotalRevenue += r.TotalPrice
		if _, ok := counts[r.ItemName]; !ok {
			order = append(order, r.ItemName)
		}
		counts[r.ItemName] += r.Quantity
		s.ItemsSold += r.Quantity
	}
	s.UniqueItems = len(counts)

	for _, name := range order {
		if s.BestSeller == nil || counts[name] > s.BestSeller.Count {
			s.BestSeller = &ItemCount{Name: name, Count: counts[name]}
		}
	}
	return s, nil
}

// WriteDaily renders the daily report for date into reportPath,
// overwriting whatever was there. Sales are matched by literal date
// prefix on the timestamp, so a malformed date simply matches nothing.
func WriteDaily(inventoryPath, salesPath, reportPath, date string) error {
	inv, err := inventory.Read(inventoryPath)
	if err != nil {
		return fmt.Errorf("error generating report: %w", err)
	}
	rows, err := saleslog.ReadRows(salesPath)
	if err != nil {
		return fmt.Errorf("error generating report: %w", err)
	}

	var daily []record.SaleRow
	var revenue float64
	for _, r := range rows {
		if strings.HasPrefix(r.Timestamp, date) {
			daily = append(daily, r)
			revenue += r.TotalPrice
		}
	}

	f, err := atomicfile.New(reportPath)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()

	w := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(f, format, args...)
		}
	}
	w("DAILY SALES REPORT - %s\n", date)
	w("%s\n\n", strings.Repeat("=", 50))
	w("SALES SUMMARY\n")
	w("Total Revenue: $%s\n", record.FormatPrice2(revenue))
	w("Number of Sales: %d\n\n", len(daily))
	w("INVENTORY STATUS\n")
	for _, name := range inv.Names() {
		it, _ := inv.Get(name)
		w("%s: %d units at $%s each\n", name, it.Quantity, record.FormatPrice2(it.Price))
	}
	w("\nDETAILED SALES\n")
	for _, r := range daily {
		w("%s - %s x%d - $%s\n", r.Timestamp, r.ItemName, r.Quantity, record.FormatPrice2(r.TotalPrice))
	}
	if err != nil {
		return err
	}
	return f.Close()
}
