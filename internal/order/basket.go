package order

import (
	"sync"

	"github.com/shopspring/decimal"

	"kissthecheff/internal/menu"
)

// Basket maps menu item ids to quantities. Invariant: no stored
// quantity is ever zero or negative; decrementing to zero removes
// the key. Iteration follows first-add order.
type Basket struct {
	mu  sync.Mutex
	ids []string
	qty map[string]int
}

func NewBasket() *Basket {
	return &Basket{qty: make(map[string]int)}
}

// AddOne increments the quantity for the id, inserting it with
// quantity 1 when absent. Whether the id resolves to a live menu
// item is the caller's concern; dead ids are simply skipped when
// lines are resolved.
func (b *Basket) AddOne(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.qty[id]; !ok {
		b.ids = append(b.ids, id)
	}
	b.qty[id]++
}

// RemoveOne decrements by one and drops the key entirely when the
// quantity would reach zero
func (b *Basket) RemoveOne(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, ok := b.qty[id]
	if !ok {
		return
	}
	if current <= 1 {
		b.drop(id)
		return
	}
	b.qty[id] = current - 1
}

// RemoveAll drops the key unconditionally
func (b *Basket) RemoveAll(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.drop(id)
}

// OnItemDeleted is the cascade hook for catalog deletions
func (b *Basket) OnItemDeleted(id string) {
	b.RemoveAll(id)
}

// Clear empties the basket; called when an order completes
func (b *Basket) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ids = nil
	b.qty = make(map[string]int)
}

// ResolvedLines joins the basket against the given catalog items.
// Entries whose item no longer exists are skipped, not removed.
func (b *Basket) ResolvedLines(items []menu.MenuItem) []Line {
	byID := make(map[string]menu.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var lines []Line
	for _, id := range b.ids {
		item, ok := byID[id]
		if !ok {
			continue
		}
		lines = append(lines, Line{Item: item, Quantity: b.qty[id]})
	}
	return lines
}

// Total is the sum of price times quantity over resolved lines.
// An empty basket totals zero.
func (b *Basket) Total(items []menu.MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, line := range b.ResolvedLines(items) {
		total = total.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// TotalQuantity counts items, not lines
func (b *Basket) TotalQuantity() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	total := 0
	for _, q := range b.qty {
		total += q
	}
	return total
}

// Quantity reports the current quantity for an id, zero when absent
func (b *Basket) Quantity(id string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.qty[id]
}

// caller must hold b.mu
func (b *Basket) drop(id string) {
	if _, ok := b.qty[id]; !ok {
		return
	}
	delete(b.qty, id)
	for i, existing := range b.ids {
		if existing == id {
			b.ids = append(b.ids[:i], b.ids[i+1:]...)
			return
		}
	}
}
