package services

import (
	"eats/internal/core/domain/model/kernel"
)

// PricedItem is one order line with the authoritative catalog prices attached,
// as re-read inside the creation transaction. Validation-time reads are not
// trusted for money; only these values feed the total.
type PricedItem struct {
	// DishPrice is the dish's base price.
	DishPrice kernel.Money

	// Extras are the per-selection surcharges, one entry per selected choice.
	Extras []kernel.Money

	// Count is how many units of the dish the line orders; always >= 1.
	Count int
}

// OrderPricer computes order totals. Stateless; safe for concurrent use.
type OrderPricer struct{}

// NewOrderPricer creates an OrderPricer.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Total computes the order total from its priced lines.
//
// For each line the extras are summed onto the dish price first, and only
// then is the subtotal multiplied by the count:
//
//	itemTotal = (dishPrice + Σ extras) * count
//
// The order total is the sum over all lines. The grouping matters: scaling
// before adding the extras would undercharge multi-count items.
func (OrderPricer) Total(items []PricedItem) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		subtotal := item.DishPrice
		for _, extra := range item.Extras {
			subtotal = subtotal.Add(extra)
		}
		total = total.Add(subtotal.MulCount(item.Count))
	}
	return total
}
