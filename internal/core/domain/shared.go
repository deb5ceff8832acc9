package domain

import "fmt"

// Amount is a price in whole rupees. Menu prices have no fractional part.
type Amount int

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Multiply(b int) Amount {
	return a * Amount(b)
}

func (a Amount) String() string {
	return fmt.Sprintf("Rs. %d", int(a))
}

type Event interface {
	GetName() string
	GetEntityName() string
}
