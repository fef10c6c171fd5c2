package record

import (
	"fmt"
	"strconv"
	"strings"
)

/*
Line formats for the vendor data files.

Inventory file: "name,quantity,price", one line per item, optional
comment lines starting with '#'.

Sales log: "timestamp,item_name,quantity,total_price", first line is
a fixed header naming those fields.

Feedback log: repeating 4-line blocks opened by a banner line and
closed by a blank line.
*/

const (
	// TimeLayout is the timestamp format used in sale rows and
	// feedback banners.
	TimeLayout = "2006-01-02 15:04:05"

	// SalesHeader is the first line of every sales log file.
	SalesHeader = "timestamp,item_name,quantity,total_price"

	// InventoryHeader is the comment line written at the top of the
	// inventory file on every rewrite.
	InventoryHeader = "# Inventory - format: item_name,quantity,price"
)

// Markers of a feedback block. The banner opens a block, the field
// prefixes label its lines.
const (
	FeedbackBannerMark = "===== FEEDBACK:"
	CustomerPrefix     = "Customer: "
	RatingPrefix       = "Rating: "
	CommentsPrefix     = "Comments: "
)

// SaleRow is one row of the sales log. Timestamp stays a string: rows
// are filtered by literal date prefix, never by parsed time.
type SaleRow struct {
	Timestamp  string
	ItemName   string
	Quantity   int
	TotalPrice float64
}

// ParseInventoryLine parses "name,quantity,price". The caller skips
// blank and comment lines; everything else must have exactly 3 fields.
// The name is kept as split, quantity/price tolerate surrounding spaces.
func ParseInventoryLine(line string) (name string, quantity int, price float64, err error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return "", 0, 0, &FormatError{Line: line, Reason: fmt.Sprintf("expected 3 fields, got %d", len(parts))}
	}
	name = parts[0]
	quantity, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", 0, 0, &FormatError{Line: line, Reason: "quantity is not an integer"}
	}
	price, err = strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return "", 0, 0, &FormatError{Line: line, Reason: "price is not a number"}
	}
	return name, quantity, price, nil
}

// FormatInventoryLine renders one inventory line, with a trailing
// newline. Price is written in its natural form ("2.5", not "2.50").
func FormatInventoryLine(name string, quantity int, price float64) string {
	return name + "," + strconv.Itoa(quantity) + "," + FormatPrice(price) + "\n"
}

// ParseSaleRow parses one data row of the sales log.
func ParseSaleRow(line string) (SaleRow, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return SaleRow{}, &FormatError{Line: line, Reason: fmt.Sprintf("expected 4 fields, got %d", len(parts))}
	}
	r := SaleRow{
		Timestamp: parts[0],
		ItemName:  parts[1],
	}
	var err error
	r.Quantity, err = strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return SaleRow{}, &FormatError{Line: line, Reason: "quantity is not an integer"}
	}
	r.TotalPrice, err = strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return SaleRow{}, &FormatError{Line: line, Reason: "total_price is not a number"}
	}
	return r, nil
}

// FormatSaleRow renders one sale row, with a trailing newline.
func FormatSaleRow(r SaleRow) string {
	return r.Timestamp + "," + r.ItemName + "," + strconv.Itoa(r.Quantity) + "," + FormatPrice(r.TotalPrice) + "\n"
}

// FormatPrice renders a price the shortest way that round-trips.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// FormatPrice2 renders a price with 2 decimals, for display contexts.
func FormatPrice2(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
