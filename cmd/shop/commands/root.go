package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/app"
	"github.com/crownpanel/crownpanel/internal/cart"
	"github.com/crownpanel/crownpanel/internal/clients"
	"github.com/crownpanel/crownpanel/internal/messages"
	"github.com/crownpanel/crownpanel/internal/money"
	"github.com/crownpanel/crownpanel/internal/orders"
	"github.com/crownpanel/crownpanel/internal/platform/store"
	"github.com/crownpanel/crownpanel/internal/products"
	"github.com/crownpanel/crownpanel/internal/settings"
	"github.com/crownpanel/crownpanel/internal/transactions"
	"github.com/crownpanel/crownpanel/internal/view"
)

var (
	cfg *app.Config
	log *slog.Logger

	productRepo products.Repository
	cartRepo    cart.Repository
	orderSvc    *orders.Service
	messageSvc  *messages.Service
	formatMoney money.FormatFunc
)

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Crown Panel storefront",
	Long: `Crown Panel storefront.

Browse the catalogue, fill a cart and check out. Orders land in the same
Redis the back office reads, so they show up there immediately.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = app.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log = app.NewLogger(cfg)

		ctx := cmd.Context()
		db, err := store.New(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}

		productRepo = products.NewRepository(db)
		if err := productRepo.Seed(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		settingsRepo := settings.NewRepository(db)
		if err := settingsRepo.Seed(ctx); err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		cartRepo = cart.NewRepository(db)
		sync := orders.NewSyncer(clients.NewRepository(db), transactions.NewRepository(db))
		orderSvc = orders.NewService(orders.NewRepository(db), sync, log)
		messageSvc = messages.NewService(messages.NewRepository(db), nil)
		formatMoney = money.Formatter(settingsRepo.Get(ctx).Currency)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		view.Error("%v", err)
		os.Exit(1)
	}
}
