package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/apperr"
)

// fakeWorkActStore keeps acts in a map and hands out sequential ids
type fakeWorkActStore struct {
	acts       map[int64]*models.WorkAct
	nextID     int64
	lastFilter models.WorkActFilter
}

func newFakeWorkActStore() *fakeWorkActStore {
	return &fakeWorkActStore{acts: make(map[int64]*models.WorkAct), nextID: 1}
}

func (f *fakeWorkActStore) Create(_ context.Context, act *models.WorkAct) error {
	act.ID = f.nextID
	f.nextID++
	stored := *act
	f.acts[act.ID] = &stored
	return nil
}

func (f *fakeWorkActStore) GetByID(_ context.Context, id int64) (*models.WorkAct, error) {
	act, ok := f.acts[id]
	if !ok {
		return nil, nil
	}
	copied := *act
	return &copied, nil
}

func (f *fakeWorkActStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.acts[id]
	return ok, nil
}

func (f *fakeWorkActStore) List(_ context.Context, filter models.WorkActFilter, page models.PageRequest) ([]*models.WorkAct, int64, error) {
	f.lastFilter = filter
	var matched []*models.WorkAct
	for _, act := range f.acts {
		if filter.ExecutorOrgID != nil && act.ExecutorOrgID != *filter.ExecutorOrgID {
			continue
		}
		copied := *act
		matched = append(matched, &copied)
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeWorkActStore) Update(_ context.Context, act *models.WorkAct) (bool, error) {
	if _, ok := f.acts[act.ID]; !ok {
		return false, nil
	}
	stored := *act
	f.acts[act.ID] = &stored
	return true, nil
}

func (f *fakeWorkActStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.acts[id]; !ok {
		return false, nil
	}
	delete(f.acts, id)
	return true, nil
}

func newWorkActService(store *fakeWorkActStore, catalogKeys []string) *WorkActService {
	refs := newTestRefs(nil, catalogKeys)
	return NewWorkActService(store, refs, testLogger())
}

func TestWorkActCreate(t *testing.T) {
	store := newFakeWorkActStore()
	svc := newWorkActService(store, []string{
		catalogKey(models.CatalogOrganization, 10),
		catalogKey(models.CatalogLightingObject, 20),
	})

	act, err := svc.Create(context.Background(), &models.WorkActInput{
		ExecutorOrgID:    10,
		LightingObjectID: ptr(int64(20)),
		ActNumber:        ptr("ACT-2026-001"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), act.ID)
	assert.Equal(t, int64(10), act.ExecutorOrgID)
	require.NotNil(t, act.ActNumber)
	assert.Equal(t, "ACT-2026-001", *act.ActNumber)
}

func TestWorkActCreateUnknownOrganization(t *testing.T) {
	svc := newWorkActService(newFakeWorkActStore(), nil)

	_, err := svc.Create(context.Background(), &models.WorkActInput{ExecutorOrgID: 999})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Organization not found: id=999", err.Error())
}

func TestWorkActCreateMissingOrganization(t *testing.T) {
	svc := newWorkActService(newFakeWorkActStore(), nil)

	_, err := svc.Create(context.Background(), &models.WorkActInput{})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
}

func TestWorkActCreateUnknownLightingObject(t *testing.T) {
	svc := newWorkActService(newFakeWorkActStore(), []string{
		catalogKey(models.CatalogOrganization, 10),
	})

	_, err := svc.Create(context.Background(), &models.WorkActInput{
		ExecutorOrgID:    10,
		LightingObjectID: ptr(int64(777)),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Lighting object not found: id=777", err.Error())
}

func TestWorkActGetNotFound(t *testing.T) {
	svc := newWorkActService(newFakeWorkActStore(), nil)

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Work act not found: id=42", err.Error())
}

func TestWorkActUpdateReplacesAllFields(t *testing.T) {
	store := newFakeWorkActStore()
	svc := newWorkActService(store, []string{
		catalogKey(models.CatalogOrganization, 10),
	})

	created, err := svc.Create(context.Background(), &models.WorkActInput{
		ExecutorOrgID: 10,
		ActNumber:     ptr("ACT-1"),
		ActPlace:      ptr("Depot 3"),
	})
	require.NoError(t, err)

	// Omitting actPlace in the update must clear the stored value
	updated, err := svc.Update(context.Background(), created.ID, &models.WorkActInput{
		ExecutorOrgID: 10,
		ActNumber:     ptr("ACT-1-rev"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ActNumber)
	assert.Equal(t, "ACT-1-rev", *updated.ActNumber)
	assert.Nil(t, updated.ActPlace)

	stored, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ActPlace)
}

func TestWorkActUpdateNotFound(t *testing.T) {
	svc := newWorkActService(newFakeWorkActStore(), []string{
		catalogKey(models.CatalogOrganization, 10),
	})

	_, err := svc.Update(context.Background(), 42, &models.WorkActInput{ExecutorOrgID: 10})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestWorkActDelete(t *testing.T) {
	store := newFakeWorkActStore()
	svc := newWorkActService(store, []string{
		catalogKey(models.CatalogOrganization, 10),
	})

	created, err := svc.Create(context.Background(), &models.WorkActInput{ExecutorOrgID: 10})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	err = svc.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestWorkActListRejectsUnknownSort(t *testing.T) {
	svc := newWorkActService(newFakeWorkActStore(), nil)

	_, err := svc.List(context.Background(), models.WorkActFilter{}, models.PageRequest{Sort: "warrantyTerms; DROP TABLE"})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
}

func TestWorkActListTrimsActNumberFilter(t *testing.T) {
	store := newFakeWorkActStore()
	svc := newWorkActService(store, nil)
	ctx := context.Background()

	_, err := svc.List(ctx, models.WorkActFilter{ActNumber: "  ACT-3 "}, models.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ACT-3", store.lastFilter.ActNumber)

	// Whitespace-only means no act-number filter
	_, err = svc.List(ctx, models.WorkActFilter{ActNumber: "   "}, models.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "", store.lastFilter.ActNumber)
}

func TestWorkActListDefaultsPageSize(t *testing.T) {
	store := newFakeWorkActStore()
	svc := newWorkActService(store, []string{
		catalogKey(models.CatalogOrganization, 10),
	})

	_, err := svc.Create(context.Background(), &models.WorkActInput{ExecutorOrgID: 10})
	require.NoError(t, err)

	page, err := svc.List(context.Background(), models.WorkActFilter{}, models.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, defaultPageSize, page.Size)
	assert.Equal(t, int64(1), page.TotalItems)
	assert.Len(t, page.Items, 1)
}
