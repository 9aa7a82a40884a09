// Package cart owns the shopping cart state. Every mutation runs a full
// read-modify-write cycle against the persisted blob; a mutex serializes
// those cycles so concurrent callers can never interleave partial state.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/catalog"
	"storefront/internal/kvstore"
	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// Engine exposes the cart operations. It resolves products against the
// catalogue and persists the full line-item list after every mutation.
type Engine struct {
	catalog *catalog.Catalog
	store   kvstore.Store
	mu      sync.Mutex
	logger  zerolog.Logger
}

// NewEngine creates a cart engine over the given catalogue and store.
func NewEngine(cat *catalog.Catalog, store kvstore.Store, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: cat,
		store:   store,
		logger:  logger.With().Str("engine", "cart").Logger(),
	}
}

// AddToCart adds quantity units of the product to the cart, merging into
// an existing line item when the product is already present. It returns
// the resulting cart snapshot.
func (e *Engine) AddToCart(ctx context.Context, productID string, quantity int) (model.CartState, error) {
	if quantity <= 0 {
		return model.CartState{}, model.ErrInvalidQuantity
	}

	product, err := e.catalog.ByID(productID)
	if err != nil {
		e.logger.Warn().Str("product_id", productID).Msg("add rejected, unknown product")
		return model.CartState{}, err
	}

	return e.apply(ctx, action{kind: actionAdd, product: *product, quantity: quantity})
}

// AddOne is AddToCart with the default quantity of one.
func (e *Engine) AddOne(ctx context.Context, productID string) (model.CartState, error) {
	return e.AddToCart(ctx, productID, 1)
}

// UpdateItem sets the absolute quantity of a line item. A quantity of
// zero or less removes the item. Updating a product that is not in the
// cart leaves the items unchanged but still persists.
func (e *Engine) UpdateItem(ctx context.Context, productID string, quantity int) (model.CartState, error) {
	return e.apply(ctx, action{kind: actionSetQuantity, product: model.Product{ID: productID}, quantity: quantity})
}

// RemoveItem removes a line item entirely. It is UpdateItem with
// quantity zero.
func (e *Engine) RemoveItem(ctx context.Context, productID string) (model.CartState, error) {
	return e.UpdateItem(ctx, productID, 0)
}

// ClearCart empties the cart and erases the persisted blob.
func (e *Engine) ClearCart(ctx context.Context) (model.CartState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Delete(ctx, kvstore.KeyCart); err != nil {
		e.logger.Error().Err(err).Msg("failed to clear cart")
		return model.CartState{}, fmt.Errorf("failed to clear cart: %w", err)
	}

	e.logger.Info().Msg("cart cleared")
	return model.NewCartState([]model.CartItem{}), nil
}

// GetCart returns the persisted cart. A missing or unreadable blob is
// treated as an empty cart; loading never fails the caller.
func (e *Engine) GetCart(ctx context.Context) model.CartState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return model.NewCartState(e.loadItems(ctx))
}

// apply runs one serialized read-modify-write cycle: load the persisted
// items, reduce the action over them, persist the result.
func (e *Engine) apply(ctx context.Context, act action) (model.CartState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := reduce(e.loadItems(ctx), act)

	blob, err := json.Marshal(items)
	if err != nil {
		return model.CartState{}, fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := e.store.Write(ctx, kvstore.KeyCart, blob); err != nil {
		e.logger.Error().Err(err).Msg("failed to persist cart")
		return model.CartState{}, fmt.Errorf("failed to persist cart: %w", err)
	}

	state := model.NewCartState(items)
	e.logger.Debug().
		Int("item_count", state.ItemCount).
		Float64("total", state.Total).
		Msg("cart updated")

	return state, nil
}

// loadItems reads the persisted line items. Absent, unreadable, or
// corrupt blobs all degrade to an empty cart. Callers must hold e.mu.
func (e *Engine) loadItems(ctx context.Context) []model.CartItem {
	blob, err := e.store.Read(ctx, kvstore.KeyCart)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			e.logger.Warn().Err(err).Msg("cart read failed, treating as empty")
		}
		return []model.CartItem{}
	}

	var items []model.CartItem
	if err := json.Unmarshal(blob, &items); err != nil {
		e.logger.Warn().Err(err).Msg("cart blob is corrupt, treating as empty")
		return []model.CartItem{}
	}

	return items
}
