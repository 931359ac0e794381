package transactions

import (
	"time"

	"github.com/crownpanel/crownpanel/internal/shared"
)

var seedTransactions = []Transaction{
	{ID: 1, ClientID: 1, ProductID: 1, Qty: 2, PriceAtPurchase: 18, Date: shared.NewDate(2026, time.June, 2)},
	{ID: 2, ClientID: 1, ProductID: 3, Qty: 1, PriceAtPurchase: 8, Date: shared.NewDate(2026, time.July, 14)},
	{ID: 3, ClientID: 2, ProductID: 2, Qty: 1, PriceAtPurchase: 22, Date: shared.NewDate(2026, time.March, 9)},
	{ID: 4, ClientID: 3, ProductID: 4, Qty: 3, PriceAtPurchase: 12.5, Date: shared.NewDate(2026, time.July, 28)},
	{ID: 5, ClientID: 3, ProductID: 1, Qty: 1, PriceAtPurchase: 18, Date: shared.NewDate(2026, time.August, 5)},
	{ID: 6, ClientID: 4, ProductID: 5, Qty: 2, PriceAtPurchase: 35, Date: shared.NewDate(2025, time.November, 20)},
	{ID: 7, ClientID: 5, ProductID: 6, Qty: 1, PriceAtPurchase: 14, Date: shared.NewDate(2026, time.August, 11)},
	{ID: 8, ClientID: 5, ProductID: 2, Qty: 2, PriceAtPurchase: 22, Date: shared.NewDate(2026, time.August, 19)},
	{ID: 9, ClientID: 2, ProductID: 3, Qty: 4, PriceAtPurchase: 8, Date: shared.NewDate(2025, time.December, 30)},
	{ID: 10, ClientID: 6, ProductID: 4, Qty: 1, PriceAtPurchase: 12.5, Date: shared.NewDate(2026, time.May, 17)},
}
