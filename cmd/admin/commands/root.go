package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crownpanel/crownpanel/internal/app"
	"github.com/crownpanel/crownpanel/internal/auth"
	"github.com/crownpanel/crownpanel/internal/clients"
	"github.com/crownpanel/crownpanel/internal/messages"
	"github.com/crownpanel/crownpanel/internal/money"
	"github.com/crownpanel/crownpanel/internal/orders"
	"github.com/crownpanel/crownpanel/internal/platform/store"
	"github.com/crownpanel/crownpanel/internal/products"
	"github.com/crownpanel/crownpanel/internal/settings"
	"github.com/crownpanel/crownpanel/internal/stats"
	"github.com/crownpanel/crownpanel/internal/transactions"
	"github.com/crownpanel/crownpanel/internal/view"
)

var (
	assumeYes bool

	cfg *app.Config
	log *slog.Logger

	clientRepo   clients.Repository
	txRepo       transactions.Repository
	settingsRepo settings.Repository

	clientSvc   *clients.Service
	productSvc  *products.Service
	orderSvc    *orders.Service
	authSvc     *auth.Service
	statsSvc    *stats.Service
	messageSvc  *messages.Service
	formatMoney money.FormatFunc
)

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Crown Panel back office",
	Long: `Crown Panel back office console.

Manages the client book, product catalogue, incoming orders, birthday
reminders, CSV export and shop settings. Shares its data with the
storefront through the configured Redis instance.`,
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

		clientRepo = clients.NewRepository(db)
		productRepo := products.NewRepository(db)
		txRepo = transactions.NewRepository(db)
		settingsRepo = settings.NewRepository(db)

		// First run gets the demo dataset; existing data is never touched.
		for _, seed := range []func(context.Context) error{
			clientRepo.Seed, productRepo.Seed, txRepo.Seed, settingsRepo.Seed,
		} {
			if err := seed(ctx); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}

		confirm := newConfirmer(assumeYes)
		clientSvc = clients.NewService(clientRepo, txRepo, confirm)
		productSvc = products.NewService(productRepo, confirm)
		orderSvc = orders.NewService(orders.NewRepository(db), nil, log)
		authSvc = auth.NewService(db)
		messageSvc = messages.NewService(messages.NewRepository(db), confirm)
		statsSvc = stats.NewService(txRepo, settingsRepo, clientRepo, productRepo)
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

func init() {
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmation prompts")
}
