package catalog

import (
	"testing"

	"storefront/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataset = `[
	{"id": "P001", "name": "Ant Farm", "description": "Observe ants at work", "price": 10.00, "category": "X", "rating": 4.0, "reviewCount": 10, "inStock": true, "featured": true, "image": "ant.jpg"},
	{"id": "P002", "name": "Bee Hotel", "description": "A home for solitary bees", "price": 5.00, "originalPrice": 8.00, "category": "Y", "rating": 4.5, "reviewCount": 20, "inStock": false, "featured": false, "image": "bee.jpg"},
	{"id": "P003", "name": "Cricket Cage", "description": "Ventilated cricket keeper", "price": 7.50, "category": "X", "rating": 3.5, "reviewCount": 5, "inStock": true, "featured": true, "image": "cricket.jpg"}
]`

func TestLoad_EmbeddedDataset(t *testing.T) {
	cat, err := Load(zerolog.Nop())
	require.NoError(t, err)
	assert.NotEmpty(t, cat.All())
	assert.NotEmpty(t, cat.Featured())

	categories := cat.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, model.CategoryAll, categories[0])
}

func TestLoadFrom_DuplicateID(t *testing.T) {
	dup := `[{"id": "P001", "name": "A"}, {"id": "P001", "name": "B"}]`
	_, err := LoadFrom([]byte(dup), zerolog.Nop())
	assert.Error(t, err)
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	_, err := LoadFrom([]byte("not json"), zerolog.Nop())
	assert.Error(t, err)
}

func TestCatalog_ByID(t *testing.T) {
	cat, err := LoadFrom([]byte(testDataset), zerolog.Nop())
	require.NoError(t, err)

	p, err := cat.ByID("P002")
	require.NoError(t, err)
	assert.Equal(t, "Bee Hotel", p.Name)
	require.NotNil(t, p.OriginalPrice)
	assert.InDelta(t, 8.00, *p.OriginalPrice, 1e-9)

	_, err = cat.ByID("P999")
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestCatalog_Featured(t *testing.T) {
	cat, err := LoadFrom([]byte(testDataset), zerolog.Nop())
	require.NoError(t, err)

	featured := cat.Featured()
	require.Len(t, featured, 2)
	assert.Equal(t, "P001", featured[0].ID)
	assert.Equal(t, "P003", featured[1].ID)
}

func TestCatalog_Categories(t *testing.T) {
	cat, err := LoadFrom([]byte(testDataset), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, []string{model.CategoryAll, "X", "Y"}, cat.Categories())
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	cat, err := LoadFrom([]byte(testDataset), zerolog.Nop())
	require.NoError(t, err)

	first := cat.All()
	first[0].Name = "mutated"

	second := cat.All()
	assert.Equal(t, "Ant Farm", second[0].Name)
}
