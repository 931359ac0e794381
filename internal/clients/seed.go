package clients

import (
	"time"

	"github.com/crownpanel/crownpanel/internal/shared"
)

var seedClients = []Client{
	{ID: 1, Name: "Amira Haddad", Phone: "+1 555 010 1001", Email: "amira@example.com",
		Birthday: shared.NewDate(1992, time.June, 15), Status: "Active",
		Notes: "Prefers gift wrapping.",
		ProductsPurchased: []PurchasedItem{
			{ProductID: 1, Qty: 2, PriceAtPurchase: 18},
		}},
	{ID: 2, Name: "Ben Carter", Phone: "+1 555 010 1002", Email: "ben.carter@example.com",
		Birthday: shared.NewDate(1988, time.November, 3), Status: "Active",
		ProductsPurchased: []PurchasedItem{
			{ProductID: 2, Qty: 1, PriceAtPurchase: 22},
		}},
	{ID: 3, Name: "Chloe Nguyen", Phone: "+1 555 010 1003", Email: "chloe.n@example.com",
		Birthday: shared.NewDate(1995, time.February, 29), Status: "Active",
		Notes: "Leap-year birthday."},
	{ID: 4, Name: "Dario Rossi", Phone: "+1 555 010 1004", Email: "dario@example.com",
		Birthday: shared.NewDate(1979, time.August, 30), Status: "Inactive"},
	{ID: 5, Name: "Emma Lindqvist", Phone: "+1 555 010 1005", Email: "emma.l@example.com",
		Birthday: shared.NewDate(2000, time.January, 12), Status: "Active",
		Notes: "Asked about bulk sticker pricing.",
		ProductsPurchased: []PurchasedItem{
			{ProductID: 6, Qty: 1, PriceAtPurchase: 14},
			{ProductID: 2, Qty: 2, PriceAtPurchase: 22},
		}},
	{ID: 6, Name: "Farid Mansour", Phone: "+1 555 010 1006", Email: "farid.m@example.com",
		Birthday: shared.NewDate(1984, time.May, 21), Status: "Inactive"},
}
