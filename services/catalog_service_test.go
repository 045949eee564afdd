package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestListProductsPopularFallback(t *testing.T) {
	db := setupDB(t)
	svc := NewCatalogService(seedSmallCatalog(t, db))

	// no filters at all -> only highly rated items, catalogue order
	items, err := svc.ListProducts(ProductQuery{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, uint(2), items[1].ID)
}

func TestListProductsFallbackOnlyWhenAllFiltersUnset(t *testing.T) {
	db := setupDB(t)
	svc := NewCatalogService(seedSmallCatalog(t, db))

	// any active filter switches to the explicit candidate set: a search
	// for a low-rated item finds it even though the fallback would hide it
	items, err := svc.ListProducts(ProductQuery{Search: "kefta"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kefta Skillet", items[0].Name)

	// a price bound alone also disables the fallback, uncapped
	items, err = svc.ListProducts(ProductQuery{MinPrice: dec("0")})
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestListProductsSearchIsCaseInsensitive(t *testing.T) {
	db := setupDB(t)
	svc := NewCatalogService(seedSmallCatalog(t, db))

	items, err := svc.ListProducts(ProductQuery{Search: "tAgInE"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Royal Chicken Tagine", items[0].Name)
	assert.Equal(t, "Fish Tagine", items[1].Name)
}

func TestListProductsImpossiblePriceRangeIsEmpty(t *testing.T) {
	db := setupDB(t)
	svc := NewCatalogService(seedSmallCatalog(t, db))

	items, err := svc.ListProducts(ProductQuery{MinPrice: dec("100"), MaxPrice: dec("50")})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListProductsLocationMatchesRestaurantOrDescription(t *testing.T) {
	db := setupDB(t)
	svc := NewCatalogService(seedSmallCatalog(t, db))

	// restaurant name match
	items, err := svc.ListProducts(ProductQuery{Location: "ocean"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint(2), items[0].ID)
	assert.Equal(t, uint(4), items[1].ID)

	// product description match
	items, err = svc.ListProducts(ProductQuery{Location: "coast"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(2), items[0].ID)
}

func TestListProductsCategoryNarrowsCandidates(t *testing.T) {
	db := setupDB(t)
	svc := NewCatalogService(seedSmallCatalog(t, db))

	items, err := svc.ListProducts(ProductQuery{Search: "t", CategoryID: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mint Tea", items[0].Name)
}

func TestProductViewResolvesUnknownReferences(t *testing.T) {
	db := setupDB(t)
	repo := seedSmallCatalog(t, db)

	// dangling restaurant and category
	seedProduct(t, db, 99, 777, 888, "Orphan Dish", "no owner", "10.00", 4.0)

	svc := NewCatalogService(repo)
	v, err := svc.GetProduct(99)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Restaurant", v.RestaurantName)
	assert.Equal(t, "Unknown", v.CategoryName)
}

func TestMenuSummaryFormat(t *testing.T) {
	db := setupDB(t)
	svc := NewCatalogService(seedSmallCatalog(t, db))

	summary, err := svc.MenuSummary()
	require.NoError(t, err)
	assert.Contains(t, summary, "1: Royal Chicken Tagine (75.00 MAD)")
	assert.Contains(t, summary, "4: Mint Tea (15.00 MAD)")
}
