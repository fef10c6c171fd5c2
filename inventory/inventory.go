package inventory

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/streetvendor/ledger/atomicfile"
	"github.com/streetvendor/ledger/record"
	"github.com/streetvendor/ledger/u"
)

// The inventory file is a keyed-record store: a mapping from item name
// to quantity and price, rewritten wholesale on every mutation. The
// rewrite goes through atomicfile, so a crash mid-update leaves the
// previous content intact. Concurrent writers are not supported: two
// updates racing on the same file will lose one of them.

// Item is a single inventory entry.
type Item struct {
	Quantity int
	Price    float64
}

// Inventory is the in-memory form of an inventory file. It keeps the
// file order of the keys so a read-modify-rewrite cycle preserves the
// line order; new keys go to the end.
type Inventory struct {
	items map[string]Item
	names []string
}

func New() *Inventory {
	return &Inventory{
		items: map[string]Item{},
	}
}

func (inv *Inventory) Get(name string) (Item, bool) {
	it, ok := inv.items[name]
	return it, ok
}

// Set inserts or overwrites an item. A repeated key keeps its
// original position.
func (inv *Inventory) Set(name string, it Item) {
	if _, ok := inv.items[name]; !ok {
		inv.names = append(inv.names, name)
	}
	inv.items[name] = it
}

// Names returns item names in file order.
func (inv *Inventory) Names() []string {
	return inv.names
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Read loads an inventory file. Blank lines and lines starting with
// '#' are skipped; every other line must parse as name,quantity,price.
// A repeated name overwrites the earlier entry.
func Read(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("inventory file %s: %w", path, record.ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	inv := New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, quantity, price, err := record.ParseInventoryLine(line)
		if err != nil {
			return nil, fmt.Errorf("inventory file %s: %w", path, err)
		}
		inv.Set(name, Item{Quantity: quantity, Price: price})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inv, nil
}

// Update inserts or overwrites one item from text field values, the
// form they arrive in from the vendor-facing front end. Quantity must
// coerce to a non-negative integer and price to a non-negative number.
func Update(path, name, quantity, price string) error {
	if name == "" {
		return &record.ValidationError{Reason: "item name cannot be empty"}
	}
	q, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return &record.ValidationError{Reason: "quantity must be an integer"}
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		return &record.ValidationError{Reason: "price must be a number"}
	}
	return SetItem(path, name, q, p)
}

// SetItem is the typed form of Update: it reads the existing mapping
// (empty if the file does not exist), inserts or overwrites the entry
// and rewrites the whole file atomically.
func SetItem(path, name string, quantity int, price float64) error {
	if name == "" {
		return &record.ValidationError{Reason: "item name cannot be empty"}
	}
	if quantity < 0 {
		return &record.ValidationError{Reason: "quantity cannot be negative"}
	}
	if price < 0 {
		return &record.ValidationError{Reason: "price cannot be negative"}
	}

	inv := New()
	if u.FileExists(path) {
		var err error
		inv, err = Read(path)
		if err != nil {
			return err
		}
	}
	inv.Set(name, Item{Quantity: quantity, Price: price})

	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()

	if _, err = f.WriteString(record.InventoryHeader + "\n"); err != nil {
		return err
	}
	for _, n := range inv.Names() {
		it, _ := inv.Get(n)
		if _, err = f.WriteString(record.FormatInventoryLine(n, it.Quantity, it.Price)); err != nil {
			return err
		}
	}
	return f.Close()
}
