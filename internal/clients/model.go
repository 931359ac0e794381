package clients

import (
	"github.com/crownpanel/crownpanel/internal/shared"
)

// Client is a customer record in the back office.
//
// Status is the field captured on the add-client form; it goes stale as
// purchases age and the derived value from StatusIndex is authoritative for
// display and filtering. ProductsPurchased is a snapshot taken when the
// client was created and is deliberately never reconciled with the
// transaction history afterwards.
type Client struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email"`
	Birthday          shared.Date     `json:"birthday"`
	Status            string          `json:"status,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	ProductsPurchased []PurchasedItem `json:"productsPurchased,omitempty"`
}

// PurchasedItem is one line of the creation-time purchase snapshot.
type PurchasedItem struct {
	ProductID       int64   `json:"productId"`
	Qty             int     `json:"qty"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
}

// NextID returns max existing id + 1.
func NextID(list []Client) int64 {
	var max int64
	for _, c := range list {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
