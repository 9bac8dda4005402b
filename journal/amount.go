package journal

import (
	"github.com/shopspring/decimal"
)

// Amount is a quantity of a single commodity. The quantity is stored as a
// fixed-point integer in hundredths of the commodity's unit, so £15.00 is
// {Commodity: "£", Quantity: 1500}. Addition is only meaningful between
// amounts of the same commodity.
type Amount struct {
	Commodity string
	Quantity  int64
}

// NewAmount creates an Amount from a quantity in hundredths.
func NewAmount(quantity int64, commodity string) Amount {
	return Amount{Commodity: commodity, Quantity: quantity}
}

// String renders the amount with the commodity prefixed and the quantity
// shown with two decimal places, e.g. "£-15.00".
func (a Amount) String() string {
	return a.Commodity + decimal.New(a.Quantity, -2).StringFixed(2)
}
