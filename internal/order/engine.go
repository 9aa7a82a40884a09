// Package order converts cart snapshots into immutable order records.
// Orders are persisted newest-first under a single blob and are never
// mutated after creation; fulfilment is an external concern.
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"storefront/internal/kvstore"
	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine exposes order creation and listing.
type Engine struct {
	store  kvstore.Store
	userID string
	now    func() time.Time
	mu     sync.Mutex
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithUser sets the user id attached to created orders.
func WithUser(userID string) Option {
	return func(e *Engine) {
		e.userID = userID
	}
}

// NewEngine creates an order engine over the given store.
func NewEngine(store kvstore.Store, logger zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		userID: model.DefaultUser.ID,
		now:    time.Now,
		logger: logger.With().Str("engine", "order").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CreateOrder turns the given line items into a pending order and
// prepends it to the persisted order list. The items are deep-copied so
// the order is isolated from later cart mutations. An empty item list is
// rejected with model.ErrEmptyCart.
//
// Clearing the cart afterwards is the caller's responsibility; the two
// engines stay decoupled.
func (e *Engine) CreateOrder(ctx context.Context, items []model.CartItem, addr *model.ShippingAddress) (*model.Order, error) {
	if len(items) == 0 {
		e.logger.Warn().Msg("order rejected, empty cart")
		return nil, model.ErrEmptyCart
	}

	snapshot := model.CloneItems(items)

	var total float64
	for _, item := range snapshot {
		total += item.Subtotal()
	}

	shipping := model.DefaultShippingAddress
	if addr != nil {
		shipping = *addr
	}

	ord := model.Order{
		ID:              uuid.New(),
		UserID:          e.userID,
		Items:           snapshot,
		Total:           total,
		Status:          model.StatusPending,
		CreatedAt:       e.now(),
		ShippingAddress: shipping,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	orders := append([]model.Order{ord}, e.loadOrders(ctx)...)

	blob, err := json.Marshal(orders)
	if err != nil {
		return nil, fmt.Errorf("failed to encode orders: %w", err)
	}

	if err := e.store.Write(ctx, kvstore.KeyOrders, blob); err != nil {
		e.logger.Error().Err(err).Str("order_id", ord.ID.String()).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	e.logger.Info().
		Str("order_id", ord.ID.String()).
		Int("item_count", len(snapshot)).
		Float64("total", total).
		Msg("order created")

	return &ord, nil
}

// ListOrders returns the persisted orders, newest first. A missing or
// unreadable blob yields an empty list.
func (e *Engine) ListOrders(ctx context.Context) []model.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.loadOrders(ctx)
}

// loadOrders reads the persisted order list, degrading to empty on any
// read or parse failure. Callers must hold e.mu.
func (e *Engine) loadOrders(ctx context.Context) []model.Order {
	blob, err := e.store.Read(ctx, kvstore.KeyOrders)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			e.logger.Warn().Err(err).Msg("orders read failed, treating as empty")
		}
		return []model.Order{}
	}

	var orders []model.Order
	if err := json.Unmarshal(blob, &orders); err != nil {
		e.logger.Warn().Err(err).Msg("orders blob is corrupt, treating as empty")
		return []model.Order{}
	}

	return orders
}
