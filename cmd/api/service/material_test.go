package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/apperr"
)

// fakeMaterialStore keeps lines in a map
type fakeMaterialStore struct {
	items  map[int64]*models.WorkActMaterial
	nextID int64
}

func newFakeMaterialStore() *fakeMaterialStore {
	return &fakeMaterialStore{items: make(map[int64]*models.WorkActMaterial), nextID: 1}
}

func (f *fakeMaterialStore) ListByWorkAct(_ context.Context, workActID int64) ([]*models.WorkActMaterial, error) {
	var out []*models.WorkActMaterial
	for _, item := range f.items {
		if item.WorkActID == workActID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeMaterialStore) GetScoped(_ context.Context, workActID, id int64) (*models.WorkActMaterial, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeMaterialStore) Insert(_ context.Context, item *models.WorkActMaterial) error {
	item.ID = f.nextID
	f.nextID++
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeMaterialStore) Update(_ context.Context, item *models.WorkActMaterial) (bool, error) {
	if _, ok := f.items[item.ID]; !ok {
		return false, nil
	}
	stored := *item
	f.items[item.ID] = &stored
	return true, nil
}

func (f *fakeMaterialStore) DeleteScoped(_ context.Context, workActID, id int64) (bool, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func newMaterialFixture() *MaterialService {
	refs := newTestRefs([]int64{1}, []string{
		catalogKey(models.CatalogUnitOfMeasure, 7),
	})
	return NewMaterialService(newFakeMaterialStore(), refs, testLogger())
}

func TestMaterialAddTrimsName(t *testing.T) {
	svc := newMaterialFixture()

	qty := decimal.NewFromInt(12)
	item, err := svc.Add(context.Background(), 1, &models.AddMaterialInput{
		Name:     "  SIP-2 cable 3x16  ",
		UomID:    ptr(int64(7)),
		Quantity: &qty,
	})
	require.NoError(t, err)
	assert.Equal(t, "SIP-2 cable 3x16", item.Name)
	require.NotNil(t, item.Quantity)
	assert.True(t, item.Quantity.Equal(qty))
}

func TestMaterialAddBlankName(t *testing.T) {
	svc := newMaterialFixture()

	_, err := svc.Add(context.Background(), 1, &models.AddMaterialInput{Name: "   "})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
	assert.Equal(t, "name is required", err.Error())
}

func TestMaterialAddUnknownUom(t *testing.T) {
	svc := newMaterialFixture()

	_, err := svc.Add(context.Background(), 1, &models.AddMaterialInput{
		Name:  "cable",
		UomID: ptr(int64(404)),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Unit of measure not found: id=404", err.Error())
}

func TestMaterialUpdateKeepsNameOverwritesRest(t *testing.T) {
	svc := newMaterialFixture()
	ctx := context.Background()

	price := decimal.NewFromInt(250)
	created, err := svc.Add(ctx, 1, &models.AddMaterialInput{
		Name:      "cable",
		UomID:     ptr(int64(7)),
		UnitPrice: &price,
	})
	require.NoError(t, err)

	// Omitting name keeps it; omitting uom and price clears them
	updated, err := svc.Update(ctx, 1, created.ID, &models.UpdateMaterialInput{})
	require.NoError(t, err)
	assert.Equal(t, "cable", updated.Name)
	assert.Nil(t, updated.UomID)
	assert.Nil(t, updated.UnitPrice)
}

func TestMaterialUpdateUnknownUom(t *testing.T) {
	svc := newMaterialFixture()
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.AddMaterialInput{Name: "cable"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, created.ID, &models.UpdateMaterialInput{
		UomID: ptr(int64(404)),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Unit of measure not found: id=404", err.Error())
}

func TestMaterialGetScopedToParent(t *testing.T) {
	refs := newTestRefs([]int64{1, 2}, nil)
	svc := NewMaterialService(newFakeMaterialStore(), refs, testLogger())
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.AddMaterialInput{Name: "cable"})
	require.NoError(t, err)

	// The line belongs to act 1; act 2 must not see it
	_, err = svc.Get(ctx, 2, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Material not found: workActId=2, id=1", err.Error())
}
