package saleslog

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/streetvendor/ledger/record"
	"github.com/streetvendor/ledger/u"
)

// The sales log is strictly append-only: the first write puts down the
// header row, every sale after that appends one timestamped row. Prior
// content is never re-read or rewritten.

// for tests
var timeNow = time.Now

// appendToFile appends data and syncs before closing, so a logged sale
// is durable when LogSale returns.
func appendToFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if err != nil {
		f.Close()
		return err
	}
	err = f.Sync()
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LogSale appends one sale row with the current timestamp. It does not
// check the sale against inventory; that cross-check belongs to the
// caller.
func LogSale(path, itemName string, quantity int, totalPrice float64) error {
	if itemName == "" || quantity <= 0 || totalPrice <= 0 {
		return &record.ValidationError{Reason: "invalid sale data"}
	}

	var data []byte
	if !u.FileExists(path) {
		data = append(data, record.SalesHeader...)
		data = append(data, '\n')
	}
	row := record.SaleRow{
		Timestamp:  timeNow().Format(record.TimeLayout),
		ItemName:   itemName,
		Quantity:   quantity,
		TotalPrice: totalPrice,
	}
	data = append(data, record.FormatSaleRow(row)...)
	return appendToFile(path, data)
}

// ReadRows reads and parses every data row of a sales log. An empty
// file has no rows; a non-empty file must start with the header row.
func ReadRows(path string) ([]record.SaleRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("sales file %s: %w", path, record.ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	var rows []record.SaleRow
	first := true
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if line != record.SalesHeader {
				return nil, fmt.Errorf("sales file %s: %w", path,
					&record.FormatError{Line: line, Reason: "missing header row"})
			}
			continue
		}
		if line == "" {
			continue
		}
		row, err := record.ParseSaleRow(line)
		if err != nil {
			return nil, fmt.Errorf("sales file %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
