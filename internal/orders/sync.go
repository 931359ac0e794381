package orders

import (
	"context"
	"time"

	"github.com/crownpanel/crownpanel/internal/clients"
	"github.com/crownpanel/crownpanel/internal/shared"
	"github.com/crownpanel/crownpanel/internal/transactions"
)

// Syncer mirrors a placed order into the back-office data: the customer
// becomes (or updates) a client, and each line item becomes a transaction.
type Syncer struct {
	clients clients.Repository
	txs     transactions.Repository
	now     func() time.Time
}

func NewSyncer(clientRepo clients.Repository, txRepo transactions.Repository) *Syncer {
	return &Syncer{clients: clientRepo, txs: txRepo, now: time.Now}
}

// SyncToAdmin resolves the order's customer by exact phone match. A match
// updates the client in place, overwriting name and notes only when the order
// carries non-empty values. No match creates a new client with the next id
// and empty email and birthday. Either way one transaction is appended per
// line item, dated today, priced as at order time.
func (s *Syncer) SyncToAdmin(ctx context.Context, o Order) error {
	list := s.clients.GetAll(ctx)

	var clientID int64
	found := false
	for i := range list {
		if list[i].Phone == o.Customer.Phone {
			if o.Customer.Name != "" {
				list[i].Name = o.Customer.Name
			}
			if o.Customer.Notes != "" {
				list[i].Notes = o.Customer.Notes
			}
			clientID = list[i].ID
			found = true
			break
		}
	}
	if !found {
		c := clients.Client{
			ID:     clients.NextID(list),
			Name:   o.Customer.Name,
			Phone:  o.Customer.Phone,
			Notes:  o.Customer.Notes,
			Status: string(clients.StatusActive),
		}
		clientID = c.ID
		list = append(list, c)
	}
	if err := s.clients.SetAll(ctx, list); err != nil {
		return err
	}

	txs := s.txs.GetAll(ctx)
	nextID := transactions.NextID(txs)
	today := shared.DateOf(s.now())
	for i, item := range o.Items {
		txs = append(txs, transactions.Transaction{
			ID:              nextID + int64(i),
			ClientID:        clientID,
			ProductID:       item.ID,
			Qty:             item.Qty,
			PriceAtPurchase: item.Price,
			Date:            today,
		})
	}
	return s.txs.SetAll(ctx, txs)
}
