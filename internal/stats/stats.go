package stats

import (
	"context"
	"sort"
	"time"

	"github.com/crownpanel/crownpanel/internal/clients"
	"github.com/crownpanel/crownpanel/internal/products"
	"github.com/crownpanel/crownpanel/internal/settings"
	"github.com/crownpanel/crownpanel/internal/transactions"
)

// ProductRevenue is one row of the top-products board.
type ProductRevenue struct {
	ProductID int64
	Name      string
	Revenue   float64
}

// Summary is the headline money and client view: everything ever sold, the
// profit estimate derived from the configured margin, the best sellers, and
// the client book counts.
type Summary struct {
	Revenue      float64
	Profit       float64
	ProfitMargin float64
	Sales        int
	Currency     string

	Clients           int
	Active            int
	Inactive          int
	UpcomingBirthdays int

	TopProducts []ProductRevenue
}

// How many best sellers the board shows.
const topProductCount = 5

// Upcoming birthdays count within this many days.
const birthdayHorizonDays = 30

type Service struct {
	txs      transactions.Repository
	settings settings.Repository
	clients  clients.Repository
	products products.Repository
	now      func() time.Time
}

func NewService(txs transactions.Repository, settings settings.Repository, clientRepo clients.Repository, productRepo products.Repository) *Service {
	return &Service{
		txs:      txs,
		settings: settings,
		clients:  clientRepo,
		products: productRepo,
		now:      time.Now,
	}
}

func (s *Service) Summary(ctx context.Context) Summary {
	cfg := s.settings.Get(ctx)
	txs := s.txs.GetAll(ctx)
	now := s.now()

	out := Summary{ProfitMargin: cfg.ProfitMargin, Currency: cfg.Currency}

	revenueByProduct := make(map[int64]float64)
	for _, t := range txs {
		lineRevenue := t.PriceAtPurchase * float64(t.Qty)
		out.Revenue += lineRevenue
		out.Sales++
		revenueByProduct[t.ProductID] += lineRevenue
	}
	out.Profit = out.Revenue * cfg.ProfitMargin

	// Best sellers rank the catalogue as it stands; revenue from deleted
	// products is counted in the totals above but has no row here.
	for _, p := range s.products.GetAll(ctx) {
		out.TopProducts = append(out.TopProducts, ProductRevenue{
			ProductID: p.ID,
			Name:      p.Name,
			Revenue:   revenueByProduct[p.ID],
		})
	}
	sort.SliceStable(out.TopProducts, func(i, j int) bool {
		return out.TopProducts[i].Revenue > out.TopProducts[j].Revenue
	})
	if len(out.TopProducts) > topProductCount {
		out.TopProducts = out.TopProducts[:topProductCount]
	}

	statusOf := clients.StatusIndex(txs, now)
	for _, c := range s.clients.GetAll(ctx) {
		out.Clients++
		if statusOf(c.ID) == clients.StatusActive {
			out.Active++
		} else {
			out.Inactive++
		}
		if !c.Birthday.IsZero() && clients.DaysUntilBirthday(c.Birthday, now) <= birthdayHorizonDays {
			out.UpcomingBirthdays++
		}
	}
	return out
}
