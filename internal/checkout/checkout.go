// Package checkout sequences the order-then-clear pair that completes a
// purchase. The cart and order engines stay decoupled; this service is
// the one place that treats the two steps as a transaction.
package checkout

import (
	"context"
	"fmt"

	"storefront/internal/cart"
	"storefront/internal/model"
	"storefront/internal/order"

	"github.com/rs/zerolog"
)

// Service places orders from the current cart contents.
type Service struct {
	cart   *cart.Engine
	orders *order.Engine
	logger zerolog.Logger
}

// NewService creates a checkout service over the two engines.
func NewService(cartEngine *cart.Engine, orderEngine *order.Engine, logger zerolog.Logger) *Service {
	return &Service{
		cart:   cartEngine,
		orders: orderEngine,
		logger: logger.With().Str("service", "checkout").Logger(),
	}
}

// PlaceOrder snapshots the cart, creates an order from it, then clears
// the cart. If the clear fails after the order was persisted, the order
// is returned together with model.ErrCartNotCleared wrapping the cause:
// the cart still holds already-ordered items and the caller must surface
// that inconsistency rather than retry blindly.
func (s *Service) PlaceOrder(ctx context.Context, addr *model.ShippingAddress) (*model.Order, error) {
	snapshot := s.cart.GetCart(ctx)

	ord, err := s.orders.CreateOrder(ctx, snapshot.Items, addr)
	if err != nil {
		return nil, err
	}

	if _, err := s.cart.ClearCart(ctx); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", ord.ID.String()).
			Msg("order placed but cart clear failed")
		return ord, fmt.Errorf("%w: %w", model.ErrCartNotCleared, err)
	}

	s.logger.Info().Str("order_id", ord.ID.String()).Msg("checkout completed")
	return ord, nil
}
