package service

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/apperr"
)

// fakeLaborStore keeps lines in a map and lists them in seq order
type fakeLaborStore struct {
	items  map[int64]*models.WorkActLaborItem
	nextID int64
}

func newFakeLaborStore() *fakeLaborStore {
	return &fakeLaborStore{items: make(map[int64]*models.WorkActLaborItem), nextID: 1}
}

func (f *fakeLaborStore) ListByWorkAct(_ context.Context, workActID int64) ([]*models.WorkActLaborItem, error) {
	var out []*models.WorkActLaborItem
	for _, item := range f.items {
		if item.WorkActID == workActID {
			copied := *item
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := 0, 0
		if out[i].Seq != nil {
			si = *out[i].Seq
		}
		if out[j].Seq != nil {
			sj = *out[j].Seq
		}
		if si != sj {
			return si < sj
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeLaborStore) GetScoped(_ context.Context, workActID, id int64) (*models.WorkActLaborItem, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeLaborStore) Insert(_ context.Context, item *models.WorkActLaborItem) error {
	item.ID = f.nextID
	f.nextID++
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeLaborStore) Update(_ context.Context, item *models.WorkActLaborItem) (bool, error) {
	if _, ok := f.items[item.ID]; !ok {
		return false, nil
	}
	stored := *item
	f.items[item.ID] = &stored
	return true, nil
}

func (f *fakeLaborStore) DeleteScoped(_ context.Context, workActID, id int64) (bool, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func newLaborFixture() (*LaborItemService, *fakeLaborStore) {
	store := newFakeLaborStore()
	refs := newTestRefs([]int64{1, 2}, []string{
		catalogKey(models.CatalogUnitOfMeasure, 3),
	})
	return NewLaborItemService(store, refs, testLogger()), store
}

func TestLaborItemListOrderedBySeq(t *testing.T) {
	svc, _ := newLaborFixture()
	ctx := context.Background()

	for _, seq := range []int{3, 1, 2} {
		_, err := svc.Add(ctx, 1, &models.AddLaborItemInput{
			Seq:          ptr(seq),
			WorkTypeName: "lamp replacement",
		})
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 1, *items[0].Seq)
	assert.Equal(t, 2, *items[1].Seq)
	assert.Equal(t, 3, *items[2].Seq)
}

func TestLaborItemAddTrimsName(t *testing.T) {
	svc, _ := newLaborFixture()

	item, err := svc.Add(context.Background(), 1, &models.AddLaborItemInput{
		WorkTypeName: "  cable splicing  ",
		UomID:        ptr(int64(3)),
	})
	require.NoError(t, err)
	assert.Equal(t, "cable splicing", item.WorkTypeName)
}

func TestLaborItemAddBlankName(t *testing.T) {
	svc, _ := newLaborFixture()

	_, err := svc.Add(context.Background(), 1, &models.AddLaborItemInput{WorkTypeName: "   "})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
}

func TestLaborItemAddUnknownUom(t *testing.T) {
	svc, _ := newLaborFixture()

	_, err := svc.Add(context.Background(), 1, &models.AddLaborItemInput{
		WorkTypeName: "digging",
		UomID:        ptr(int64(404)),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Unit of measure not found: id=404", err.Error())
}

func TestLaborItemUpdateKeepsNameWhenOmitted(t *testing.T) {
	svc, _ := newLaborFixture()
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.AddLaborItemInput{
		WorkTypeName: "pole painting",
		UomID:        ptr(int64(3)),
	})
	require.NoError(t, err)

	// Name and seq survive when omitted; uomId is overwritten to null
	updated, err := svc.Update(ctx, 1, created.ID, &models.UpdateLaborItemInput{})
	require.NoError(t, err)
	assert.Equal(t, "pole painting", updated.WorkTypeName)
	assert.Nil(t, updated.UomID)
}

func TestLaborItemDeleteWrongParent(t *testing.T) {
	svc, _ := newLaborFixture()
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.AddLaborItemInput{WorkTypeName: "grounding check"})
	require.NoError(t, err)

	// The row exists but belongs to act 1, so act 2 cannot delete it
	err = svc.Delete(ctx, 2, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	items, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestLaborItemGetWrongParent(t *testing.T) {
	svc, _ := newLaborFixture()
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.AddLaborItemInput{WorkTypeName: "grounding check"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, 2, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
