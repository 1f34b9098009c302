package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"induparts-system/internal/apperr"
	"induparts-system/internal/auth"
	"induparts-system/internal/catalog"
	"induparts-system/internal/catalog/dto"
	"induparts-system/internal/database/models"
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

type mockCatalogRepository struct {
	items     map[int64]*models.CatalogItem
	inventory map[int64]bool
	nextID    int64
}

var _ catalog.Repository = &mockCatalogRepository{}

func newMockCatalogRepository() *mockCatalogRepository {
	return &mockCatalogRepository{
		items:     make(map[int64]*models.CatalogItem),
		inventory: make(map[int64]bool),
		nextID:    1,
	}
}

func (m *mockCatalogRepository) GetByID(_ context.Context, id int64) (*models.CatalogItem, error) {
	if it, ok := m.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (m *mockCatalogRepository) GetBySKU(_ context.Context, sku string) (*models.CatalogItem, error) {
	for _, it := range m.items {
		if it.SKU == sku {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockCatalogRepository) Create(_ context.Context, item *models.CatalogItem) error {
	item.ItemID = m.nextID
	m.nextID++
	cp := *item
	m.items[item.ItemID] = &cp
	return nil
}

func (m *mockCatalogRepository) Update(_ context.Context, item *models.CatalogItem) error {
	cp := *item
	m.items[item.ItemID] = &cp
	return nil
}

func (m *mockCatalogRepository) Delete(_ context.Context, itemID int64) error {
	delete(m.items, itemID)
	return nil
}

func (m *mockCatalogRepository) HasInventory(_ context.Context, itemID int64) (bool, error) {
	return m.inventory[itemID], nil
}

func (m *mockCatalogRepository) List(_ context.Context) ([]models.CatalogItem, error) {
	out := make([]models.CatalogItem, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, *it)
	}
	return out, nil
}

var (
	adminActor     = auth.Actor{UserID: 1, Name: "ana", Role: auth.RoleAdmin}
	empleadoActor  = auth.Actor{UserID: 2, Name: "luis", Role: auth.RoleEmpleado}
	consultorActor = auth.Actor{UserID: 3, Name: "eva", Role: auth.RoleConsultor}
)

func setup(t *testing.T) (catalog.Service, *mockCatalogRepository, *fakeCache) {
	t.Helper()
	repo := newMockCatalogRepository()
	c := newFakeCache()
	return NewService(repo, c), repo, c
}

func validUpsert() dto.UpsertItemInput {
	return dto.UpsertItemInput{
		SKU:           "BLT-001",
		PartType:      "bolt",
		Description:   "hex bolt M8",
		UnitOfMeasure: "mm",
		UnitCount:     "100",
		UnitPrice:     "2.5",
	}
}

func TestUpsertInsert(t *testing.T) {
	svc, repo, _ := setup(t)

	item, err := svc.Upsert(context.Background(), adminActor, validUpsert())
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "BLT-001", item.SKU)
	assert.Equal(t, 100, item.UnitCount)
	assert.Equal(t, "2.50", item.UnitPrice)
	assert.Len(t, repo.items, 1)
}

func TestUpsertValidation(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	t.Run("missing sku", func(t *testing.T) {
		in := validUpsert()
		in.SKU = "  "
		_, err := svc.Upsert(ctx, adminActor, in)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("non-numeric unit count", func(t *testing.T) {
		in := validUpsert()
		in.UnitCount = "abc"
		_, err := svc.Upsert(ctx, adminActor, in)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("negative price", func(t *testing.T) {
		in := validUpsert()
		in.UnitPrice = "-1.00"
		_, err := svc.Upsert(ctx, adminActor, in)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestUpsertDuplicateSKU(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, adminActor, validUpsert())
	require.NoError(t, err)

	_, err = svc.Upsert(ctx, adminActor, validUpsert())
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpsertUpdateAndRename(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, adminActor, validUpsert())
	require.NoError(t, err)

	in := validUpsert()
	in.OriginalSKU = "BLT-001"
	in.SKU = "BLT-002"
	in.UnitPrice = "3"

	updated, err := svc.Upsert(ctx, adminActor, in)
	require.NoError(t, err)
	assert.Equal(t, created.ItemID, updated.ItemID, "rename keeps the row")
	assert.Equal(t, "BLT-002", updated.SKU)
	assert.Equal(t, "3.00", updated.UnitPrice)
	assert.Len(t, repo.items, 1)
}

func TestUpsertRenameCollision(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, adminActor, validUpsert())
	require.NoError(t, err)

	other := validUpsert()
	other.SKU = "NUT-001"
	_, err = svc.Upsert(ctx, adminActor, other)
	require.NoError(t, err)

	in := validUpsert()
	in.OriginalSKU = "NUT-001"
	in.SKU = "BLT-001"
	_, err = svc.Upsert(ctx, adminActor, in)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpsertUnknownOriginal(t *testing.T) {
	svc, _, _ := setup(t)

	in := validUpsert()
	in.OriginalSKU = "GONE-001"
	_, err := svc.Upsert(context.Background(), adminActor, in)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpsertRoleGate(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.Upsert(context.Background(), consultorActor, validUpsert())
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}

func TestDelete(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	item, err := svc.Upsert(ctx, adminActor, validUpsert())
	require.NoError(t, err)

	t.Run("blocked by inventory reference", func(t *testing.T) {
		repo.inventory[item.ItemID] = true
		err := svc.Delete(ctx, adminActor, "BLT-001")
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Len(t, repo.items, 1)
	})

	t.Run("by sku", func(t *testing.T) {
		repo.inventory[item.ItemID] = false
		require.NoError(t, svc.Delete(ctx, empleadoActor, "BLT-001"))
		assert.Empty(t, repo.items)
	})

	t.Run("unknown reference", func(t *testing.T) {
		err := svc.Delete(ctx, adminActor, "BLT-001")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestDeleteByNumericID(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	item, err := svc.Upsert(ctx, adminActor, validUpsert())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, adminActor, "1"))
	_, ok := repo.items[item.ItemID]
	assert.False(t, ok)
}

func TestDeleteNumericSKUFallsBack(t *testing.T) {
	svc, repo, _ := setup(t)
	ctx := context.Background()

	in := validUpsert()
	in.SKU = "90210"
	item, err := svc.Upsert(ctx, adminActor, in)
	require.NoError(t, err)
	require.NotEqual(t, int64(90210), item.ItemID)

	require.NoError(t, svc.Delete(ctx, adminActor, "90210"))
	assert.Empty(t, repo.items)
}

func TestListCachesAndInvalidates(t *testing.T) {
	svc, repo, c := setup(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, adminActor, validUpsert())
	require.NoError(t, err)

	items, err := svc.List(ctx, consultorActor)
	require.NoError(t, err)
	require.Len(t, items, 1)
	_, cached := c.store[catalogItemsCacheKey]
	assert.True(t, cached)

	// A write drops the cached list so the next read sees fresh rows.
	other := validUpsert()
	other.SKU = "NUT-001"
	_, err = svc.Upsert(ctx, adminActor, other)
	require.NoError(t, err)
	_, cached = c.store[catalogItemsCacheKey]
	assert.False(t, cached)

	items, err = svc.List(ctx, consultorActor)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Len(t, repo.items, 2)
}
