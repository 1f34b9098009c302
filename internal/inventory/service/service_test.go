package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/database/models"
	"induparts-system/internal/inventory"
	"induparts-system/internal/inventory/dto"
)

type fakeCache struct {
	store map[string]string
}

func newFakeCache() *fakeCache { return &fakeCache{store: make(map[string]string)} }

func (c *fakeCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.store[key]
	return v, ok
}

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) {
	c.store[key] = value
}

func (c *fakeCache) Del(_ context.Context, keys ...string) {
	for _, k := range keys {
		delete(c.store, k)
	}
}

type mockInventoryRepository struct {
	records map[int64]*models.InventoryRecord
	catalog map[int64]*models.CatalogItem
}

var _ inventory.Repository = &mockInventoryRepository{}

func newMockInventoryRepository() *mockInventoryRepository {
	return &mockInventoryRepository{
		records: make(map[int64]*models.InventoryRecord),
		catalog: make(map[int64]*models.CatalogItem),
	}
}

func (m *mockInventoryRepository) Get(_ context.Context, itemID int64) (*models.InventoryRecord, error) {
	if rec, ok := m.records[itemID]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (m *mockInventoryRepository) Create(_ context.Context, rec *models.InventoryRecord) error {
	cp := *rec
	m.records[rec.ItemID] = &cp
	return nil
}

func (m *mockInventoryRepository) Save(_ context.Context, rec *models.InventoryRecord) error {
	cp := *rec
	m.records[rec.ItemID] = &cp
	return nil
}

func (m *mockInventoryRepository) List(_ context.Context) ([]models.InventoryRecord, error) {
	out := make([]models.InventoryRecord, 0, len(m.records))
	for _, rec := range m.records {
		cp := *rec
		if item, ok := m.catalog[rec.ItemID]; ok {
			itemCp := *item
			cp.Item = &itemCp
		}
		out = append(out, cp)
	}
	return out, nil
}

func (m *mockInventoryRepository) CatalogExists(_ context.Context, itemID int64) (bool, error) {
	_, ok := m.catalog[itemID]
	return ok, nil
}

var (
	adminActor     = auth.Actor{UserID: 1, Name: "ana", Role: auth.RoleAdmin}
	consultorActor = auth.Actor{UserID: 3, Name: "eva", Role: auth.RoleConsultor}
)

func setup(t *testing.T) (inventory.Service, *mockInventoryRepository, *fakeCache) {
	t.Helper()
	repo := newMockInventoryRepository()
	repo.catalog[1] = &models.CatalogItem{
		ItemID: 1, SKU: "BLT-001", PartType: "bolt", UnitPrice: "2.50",
	}
	c := newFakeCache()
	return NewService(repo, c), repo, c
}

func TestProvision(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	rec, err := svc.Provision(ctx, adminActor, dto.ProvisionInput{ItemID: 1, Stock: "5", StockMin: "10"})
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Stock)
	assert.Equal(t, 10, rec.StockMin)
	assert.Contains(t, repo.records, int64(1))

	t.Run("duplicate record", func(t *testing.T) {
		_, err := svc.Provision(ctx, adminActor, dto.ProvisionInput{ItemID: 1, Stock: "0", StockMin: "0"})
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})

	t.Run("unknown catalog item", func(t *testing.T) {
		_, err := svc.Provision(ctx, adminActor, dto.ProvisionInput{ItemID: 99, Stock: "0", StockMin: "0"})
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestSetStock(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Provision(ctx, adminActor, dto.ProvisionInput{ItemID: 1, Stock: "5", StockMin: "10"})
	require.NoError(t, err)

	rec, err := svc.SetStock(ctx, adminActor, dto.SetStockInput{ItemID: 1, NewStock: "7"})
	require.NoError(t, err)
	assert.Equal(t, 7, rec.Stock)
	assert.Equal(t, 10, rec.StockMin, "stock_min untouched")

	t.Run("absolute set is idempotent", func(t *testing.T) {
		rec, err := svc.SetStock(ctx, adminActor, dto.SetStockInput{ItemID: 1, NewStock: "7"})
		require.NoError(t, err)
		assert.Equal(t, 7, rec.Stock)
		assert.Equal(t, 7, repo.records[1].Stock)
	})

	t.Run("negative rejected, row untouched", func(t *testing.T) {
		_, err := svc.SetStock(ctx, adminActor, dto.SetStockInput{ItemID: 1, NewStock: "-1"})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Equal(t, 7, repo.records[1].Stock)
	})

	t.Run("non-numeric rejected", func(t *testing.T) {
		_, err := svc.SetStock(ctx, adminActor, dto.SetStockInput{ItemID: 1, NewStock: "abc"})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("missing record", func(t *testing.T) {
		_, err := svc.SetStock(ctx, adminActor, dto.SetStockInput{ItemID: 99, NewStock: "1"})
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("consultor denied", func(t *testing.T) {
		_, err := svc.SetStock(ctx, consultorActor, dto.SetStockInput{ItemID: 1, NewStock: "1"})
		assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
	})
}

func TestSetStockMin(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Provision(ctx, adminActor, dto.ProvisionInput{ItemID: 1, Stock: "20", StockMin: "10"})
	require.NoError(t, err)

	rec, err := svc.SetStockMin(ctx, adminActor, dto.SetStockMinInput{ItemID: 1, StockMin: "25"})
	require.NoError(t, err)
	assert.Equal(t, 25, rec.StockMin)
	assert.Equal(t, 20, rec.Stock, "stock untouched")
}

func TestListComputesLowStock(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Provision(ctx, adminActor, dto.ProvisionInput{ItemID: 1, Stock: "5", StockMin: "10"})
	require.NoError(t, err)

	rows, err := svc.List(ctx, consultorActor)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "BLT-001", rows[0].SKU)
	assert.True(t, rows[0].LowStock)

	// Stock equal to the threshold is not low.
	_, err = svc.SetStock(ctx, adminActor, dto.SetStockInput{ItemID: 1, NewStock: "10"})
	require.NoError(t, err)
	rows, err = svc.List(ctx, consultorActor)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].LowStock)
}

func TestListCacheInvalidatedByWrites(t *testing.T) {
	svc, _, c := setup(t)
	ctx := context.Background()

	_, err := svc.Provision(ctx, adminActor, dto.ProvisionInput{ItemID: 1, Stock: "5", StockMin: "10"})
	require.NoError(t, err)

	rows, err := svc.List(ctx, adminActor)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].LowStock)

	_, err = svc.SetStock(ctx, adminActor, dto.SetStockInput{ItemID: 1, NewStock: "50"})
	require.NoError(t, err)

	rows, err = svc.List(ctx, adminActor)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].LowStock, "read after write sees the new stock")
	_, cached := c.store[inventoryListCacheKey]
	assert.True(t, cached)
}
