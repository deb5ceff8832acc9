package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyCatalog = errors.New("menu catalog has no items")

// MenuItem is identified by its name; price and image never change at runtime.
type MenuItem struct {
	Name     string
	Price    Amount
	ImageRef string
}

func NewMenuItem(name string, price Amount, imageRef string) MenuItem {
	return MenuItem{
		Name:     strings.TrimSpace(name),
		Price:    price,
		ImageRef: imageRef,
	}
}

func (m MenuItem) Validate() error {
	if m.Name == "" {
		return errors.New("menu item name is empty")
	}
	if m.Price < 0 {
		return fmt.Errorf("menu item %q has a negative price", m.Name)
	}
	return nil
}

// Catalog is the ordered, read-only list of purchasable items.
type Catalog struct {
	items  []MenuItem
	byName map[string]int
}

func NewCatalog(items []MenuItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		items:  make([]MenuItem, 0, len(items)),
		byName: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byName[item.Name]; exists {
			return nil, fmt.Errorf("menu item %q is listed twice", item.Name)
		}
		c.byName[item.Name] = len(c.items)
		c.items = append(c.items, item)
	}
	return c, nil
}

func (c *Catalog) Items() []MenuItem {
	items := make([]MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Catalog) Lookup(name string) (MenuItem, bool) {
	idx, ok := c.byName[name]
	if !ok {
		return MenuItem{}, false
	}
	return c.items[idx], true
}

func (c *Catalog) Len() int {
	return len(c.items)
}
