package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/kvstore"
	"storefront/internal/order"
	"storefront/internal/query"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("backend", cfg.Store.Backend).Msg("starting storefront")

	ctx := context.Background()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close store")
		}
	}()

	cat, err := catalog.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	cartEngine := cart.NewEngine(cat, store, logger)
	orderEngine := order.NewEngine(store, logger)
	checkoutService := checkout.NewService(cartEngine, orderEngine, logger)

	// Demonstration flow: browse, fill a cart, check out.
	logger.Info().
		Strs("categories", cat.Categories()).
		Int("products", len(cat.All())).
		Int("featured", len(cat.Featured())).
		Msg("catalogue ready")

	results := query.Apply(cat.All(), query.Params{
		Category:    "Electronics",
		InStockOnly: true,
		SortKey:     query.SortPriceAsc,
	})
	names := make([]string, len(results))
	for i, p := range results {
		names[i] = fmt.Sprintf("%s ($%.2f)", p.Name, p.Price)
	}
	logger.Info().Str("results", strings.Join(names, ", ")).Msg("electronics in stock, cheapest first")

	if _, err := cartEngine.AddToCart(ctx, "1", 2); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	if _, err := cartEngine.AddOne(ctx, "6"); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	state, err := cartEngine.UpdateItem(ctx, "1", 1)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	logger.Info().
		Int("item_count", state.ItemCount).
		Float64("total", state.Total).
		Msg("cart ready for checkout")

	ord, err := checkoutService.PlaceOrder(ctx, nil)
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}
	logger.Info().
		Str("order_id", ord.ID.String()).
		Float64("total", ord.Total).
		Str("status", string(ord.Status)).
		Msg("order confirmed")

	orders := orderEngine.ListOrders(ctx)
	logger.Info().Int("count", len(orders)).Msg("order history")

	return nil
}

// openStore builds the persistence adapter selected by configuration.
func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (kvstore.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return kvstore.NewMemoryStore(logger), nil
	case config.BackendFile:
		return kvstore.NewFileStore(cfg.Store.Dir, logger)
	case config.BackendSQLite:
		return kvstore.OpenSQLite(cfg.Store.Path, logger)
	case config.BackendPostgres:
		return kvstore.OpenPostgres(ctx, cfg.Store.Postgres.ConnectionString(), logger)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}
