package transactions

import (
	"github.com/crownpanel/crownpanel/internal/shared"
)

// Transaction is one purchase line: which client bought which product, at
// what price, on what day. The price is a snapshot taken at purchase time
// and never tracks later product price changes. ClientID and ProductID are
// plain references with no enforced integrity; a deleted product leaves its
// id dangling here and that is tolerated.
type Transaction struct {
	ID              int64       `json:"id"`
	ClientID        int64       `json:"clientId"`
	ProductID       int64       `json:"productId"`
	Qty             int         `json:"qty"`
	PriceAtPurchase float64     `json:"priceAtPurchase"`
	Date            shared.Date `json:"date"`
}

// NextID returns max existing id + 1. Ids are never reused.
func NextID(list []Transaction) int64 {
	var max int64
	for _, t := range list {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
