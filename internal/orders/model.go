package orders

import (
	"encoding/json"
	"strings"

	"github.com/crownpanel/crownpanel/internal/shared"
)

// Status is an order's fulfilment state.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusInTransit Status = "In Transit"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

var statuses = []Status{StatusPending, StatusInTransit, StatusDelivered, StatusCancelled}

// ParseStatus normalises free-form input ("pending", "IN TRANSIT") to the
// canonical casing. Unknown or empty input defaults to Pending.
func ParseStatus(s string) Status {
	for _, st := range statuses {
		if strings.EqualFold(s, string(st)) {
			return st
		}
	}
	return StatusPending
}

// UnmarshalJSON normalises whatever casing an older writer stored.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}

// OrderItem is one line of an order, with the product's name and price
// snapshotted at purchase time.
type OrderItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Customer is the checkout form as captured on the order.
type Customer struct {
	Name     string      `json:"name"`
	Phone    string      `json:"phone"`
	Address  string      `json:"address"`
	Notes    string      `json:"notes,omitempty"`
	Birthday shared.Date `json:"birthday,omitempty"`
}

// Order ids are the placement timestamp in milliseconds, which keeps them
// unique and sortable without coordination between writers.
type Order struct {
	ID       int64       `json:"id"`
	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
	Customer Customer    `json:"customer"`
	Date     shared.Date `json:"date"`
	Status   Status      `json:"status"`
}
