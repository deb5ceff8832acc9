package domain

import "slices"

// CartLine holds every unit of one menu item in the cart.
type CartLine struct {
	Item     MenuItem
	Quantity int
}

// Cart keeps one line per distinct item name, in the order each name was
// first added. A line is dropped as soon as its quantity reaches zero.
type Cart struct {
	Lines []CartLine
}

type AggregatedLine struct {
	Name      string
	UnitPrice Amount
	Quantity  int
	LineTotal Amount
}

func NewCart() *Cart {
	return &Cart{Lines: []CartLine{}}
}

func (c *Cart) indexOf(name string) int {
	for i, line := range c.Lines {
		if line.Item.Name == name {
			return i
		}
	}
	return -1
}

func (c *Cart) Add(item MenuItem) {
	if idx := c.indexOf(item.Name); idx >= 0 {
		c.Lines[idx].Quantity++
		return
	}
	c.Lines = append(c.Lines, CartLine{Item: item, Quantity: 1})
}

// RemoveOne takes a single unit of name out of the cart and reports whether
// anything changed.
func (c *Cart) RemoveOne(name string) bool {
	idx := c.indexOf(name)
	if idx < 0 {
		return false
	}
	c.Lines[idx].Quantity--
	if c.Lines[idx].Quantity <= 0 {
		c.Lines = slices.Delete(c.Lines, idx, idx+1)
	}
	return true
}

func (c *Cart) RemoveAll(name string) bool {
	idx := c.indexOf(name)
	if idx < 0 {
		return false
	}
	c.Lines = slices.Delete(c.Lines, idx, idx+1)
	return true
}

func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) Aggregate() []AggregatedLine {
	lines := make([]AggregatedLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, AggregatedLine{
			Name:      line.Item.Name,
			UnitPrice: line.Item.Price,
			Quantity:  line.Quantity,
			LineTotal: line.Item.Price.Multiply(line.Quantity),
		})
	}
	return lines
}

func (c *Cart) GrandTotal() Amount {
	return GrandTotal(c.Aggregate())
}

func GrandTotal(lines []AggregatedLine) Amount {
	total := Amount(0)
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	return total
}

// SyncWithCatalog points every line at the catalog's current item and drops
// lines whose name is no longer on the menu. It reports whether anything
// changed.
func (c *Cart) SyncWithCatalog(catalog *Catalog) bool {
	changed := false
	lines := make([]CartLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		item, ok := catalog.Lookup(line.Item.Name)
		if !ok || line.Quantity <= 0 {
			changed = true
			continue
		}
		if item != line.Item {
			changed = true
		}
		lines = append(lines, CartLine{Item: item, Quantity: line.Quantity})
	}
	c.Lines = lines
	return changed
}
