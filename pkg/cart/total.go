package cart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Total returns the sum of line subtotals. It is zero unless the mirror is
// in StatusReady.
func (c *Cache) Total() float64 {
	if c.Status() != StatusReady {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Len returns the number of distinct cart lines.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// FormatTotal renders Total with two decimal places using the locale's
// numbering conventions.
func (c *Cache) FormatTotal(tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf("%.2f", c.Total())
}
