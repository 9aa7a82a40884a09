package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront/internal/catalog"
	"storefront/internal/kvstore"
	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDataset = `[
	{"id": "P001", "name": "Ant Farm", "description": "Observe ants at work", "price": 10.00, "category": "X", "rating": 4.0, "reviewCount": 10, "inStock": true, "featured": false, "image": "ant.jpg"},
	{"id": "P002", "name": "Bee Hotel", "description": "A home for solitary bees", "price": 5.00, "category": "Y", "rating": 4.5, "reviewCount": 20, "inStock": true, "featured": true, "image": "bee.jpg"},
	{"id": "P003", "name": "Cricket Cage", "description": "Ventilated cricket keeper", "price": 7.50, "category": "X", "rating": 3.5, "reviewCount": 5, "inStock": false, "featured": false, "image": "cricket.jpg"}
]`

// MockStore is a mock implementation of kvstore.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Read(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Write(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newTestEngine(t *testing.T) (*Engine, *kvstore.MemoryStore) {
	t.Helper()
	logger := zerolog.Nop()

	cat, err := catalog.LoadFrom([]byte(testDataset), logger)
	require.NoError(t, err)

	store := kvstore.NewMemoryStore(logger)
	return NewEngine(cat, store, logger), store
}

func TestEngine_AddToCart_MergesDuplicates(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddToCart(ctx, "P001", 2)
	require.NoError(t, err)
	_, err = engine.AddToCart(ctx, "P001", 3)
	require.NoError(t, err)
	state, err := engine.AddOne(ctx, "P001")
	require.NoError(t, err)

	require.Len(t, state.Items, 1)
	assert.Equal(t, "P001", state.Items[0].Product.ID)
	assert.Equal(t, 6, state.Items[0].Quantity)
	assert.Equal(t, 6, state.ItemCount)
	assert.InDelta(t, 60.00, state.Total, 1e-9)
}

func TestEngine_AddToCart_UnknownProduct(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.AddToCart(context.Background(), "P999", 1)
	assert.ErrorIs(t, err, model.ErrProductNotFound)

	state := engine.GetCart(context.Background())
	assert.Empty(t, state.Items)
}

func TestEngine_AddToCart_InvalidQuantity(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.AddToCart(context.Background(), "P001", 0)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = engine.AddToCart(context.Background(), "P001", -2)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
}

func TestEngine_UpdateItem(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		wantItems     int
		wantQuantity  int
		wantItemCount int
	}{
		{name: "sets absolute quantity", quantity: 5, wantItems: 2, wantQuantity: 5, wantItemCount: 6},
		{name: "quantity one keeps item", quantity: 1, wantItems: 2, wantQuantity: 1, wantItemCount: 2},
		{name: "zero removes item", quantity: 0, wantItems: 1, wantItemCount: 1},
		{name: "negative removes item", quantity: -3, wantItems: 1, wantItemCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _ := newTestEngine(t)
			ctx := context.Background()

			_, err := engine.AddToCart(ctx, "P001", 2)
			require.NoError(t, err)
			_, err = engine.AddOne(ctx, "P002")
			require.NoError(t, err)

			state, err := engine.UpdateItem(ctx, "P001", tt.quantity)
			require.NoError(t, err)

			assert.Len(t, state.Items, tt.wantItems)
			assert.Equal(t, tt.wantItemCount, state.ItemCount)

			for _, item := range state.Items {
				if item.Product.ID == "P001" {
					assert.Equal(t, tt.wantQuantity, item.Quantity)
				}
			}
			if tt.quantity <= 0 {
				for _, item := range state.Items {
					assert.NotEqual(t, "P001", item.Product.ID)
				}
			}
		})
	}
}

func TestEngine_UpdateItem_AbsentProductIsNoOp(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddToCart(ctx, "P001", 2)
	require.NoError(t, err)

	state, err := engine.UpdateItem(ctx, "P999", 4)
	require.NoError(t, err)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)

	// The no-op still rewrote the blob.
	_, err = store.Read(ctx, kvstore.KeyCart)
	assert.NoError(t, err)
}

func TestEngine_RemoveItem(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddToCart(ctx, "P001", 2)
	require.NoError(t, err)
	_, err = engine.AddOne(ctx, "P002")
	require.NoError(t, err)

	state, err := engine.RemoveItem(ctx, "P001")
	require.NoError(t, err)

	require.Len(t, state.Items, 1)
	assert.Equal(t, "P002", state.Items[0].Product.ID)
	assert.Equal(t, 1, state.ItemCount)
	assert.InDelta(t, 5.00, state.Total, 1e-9)
}

func TestEngine_ClearCart(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddToCart(ctx, "P001", 2)
	require.NoError(t, err)

	state, err := engine.ClearCart(ctx)
	require.NoError(t, err)

	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.ItemCount)
	assert.Zero(t, state.Total)

	// The blob is gone, not just emptied.
	_, err = store.Read(ctx, kvstore.KeyCart)
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestEngine_GetCart_Idempotent(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.AddToCart(ctx, "P001", 2)
	require.NoError(t, err)
	_, err = engine.AddOne(ctx, "P002")
	require.NoError(t, err)

	first := engine.GetCart(ctx)
	second := engine.GetCart(ctx)

	assert.Equal(t, first, second)
}

func TestEngine_GetCart_RoundTrip(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	written, err := engine.AddToCart(ctx, "P001", 3)
	require.NoError(t, err)

	read := engine.GetCart(ctx)
	assert.Equal(t, written.Items, read.Items)
	assert.Equal(t, written.ItemCount, read.ItemCount)
	assert.InDelta(t, written.Total, read.Total, 1e-9)
}

func TestEngine_GetCart_CorruptBlobIsEmpty(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, kvstore.KeyCart, []byte("{not json")))

	state := engine.GetCart(ctx)
	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.ItemCount)
	assert.Zero(t, state.Total)
}

func TestEngine_AddToCart_WriteFailurePropagates(t *testing.T) {
	logger := zerolog.Nop()
	cat, err := catalog.LoadFrom([]byte(testDataset), logger)
	require.NoError(t, err)

	mockStore := new(MockStore)
	engine := NewEngine(cat, mockStore, logger)
	ctx := context.Background()

	writeErr := errors.New("disk full")
	mockStore.On("Read", ctx, kvstore.KeyCart).Return(nil, kvstore.ErrKeyNotFound)
	mockStore.On("Write", ctx, kvstore.KeyCart, mock.Anything).Return(writeErr)

	_, err = engine.AddToCart(ctx, "P001", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)

	mockStore.AssertExpectations(t)
}

func TestEngine_ConcurrentAddsAreSerialized(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := engine.AddToCart(ctx, "P001", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state := engine.GetCart(ctx)
	require.Len(t, state.Items, 1)
	assert.Equal(t, workers, state.Items[0].Quantity)
	assert.Equal(t, workers, state.ItemCount)
}
