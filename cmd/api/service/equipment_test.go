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

// fakeDismantledStore keeps rows in a map
type fakeDismantledStore struct {
	items  map[int64]*models.WorkActDismantledEquipment
	nextID int64
}

func newFakeDismantledStore() *fakeDismantledStore {
	return &fakeDismantledStore{items: make(map[int64]*models.WorkActDismantledEquipment), nextID: 1}
}

func (f *fakeDismantledStore) ListByWorkAct(_ context.Context, workActID int64) ([]*models.WorkActDismantledEquipment, error) {
	var out []*models.WorkActDismantledEquipment
	for _, item := range f.items {
		if item.WorkActID == workActID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeDismantledStore) GetScoped(_ context.Context, workActID, id int64) (*models.WorkActDismantledEquipment, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeDismantledStore) Insert(_ context.Context, item *models.WorkActDismantledEquipment) error {
	item.ID = f.nextID
	f.nextID++
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeDismantledStore) Update(_ context.Context, item *models.WorkActDismantledEquipment) (bool, error) {
	if _, ok := f.items[item.ID]; !ok {
		return false, nil
	}
	stored := *item
	f.items[item.ID] = &stored
	return true, nil
}

func (f *fakeDismantledStore) DeleteScoped(_ context.Context, workActID, id int64) (bool, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func newDismantledFixture() *DismantledEquipmentService {
	refs := newTestRefs([]int64{1}, []string{
		catalogKey(models.CatalogEquipmentCondition, 4),
	})
	return NewDismantledEquipmentService(newFakeDismantledStore(), refs, testLogger())
}

func TestDismantledEquipmentAdd(t *testing.T) {
	svc := newDismantledFixture()

	qty := decimal.NewFromInt(2)
	item, err := svc.Add(context.Background(), 1, &models.DismantledEquipmentInput{
		Name:                 "  mercury lamp DRL-250  ",
		Quantity:             &qty,
		EquipmentConditionID: ptr(int64(4)),
	})
	require.NoError(t, err)
	assert.Equal(t, "mercury lamp DRL-250", item.Name)
	require.NotNil(t, item.Quantity)
	assert.True(t, item.Quantity.Equal(qty))
}

func TestDismantledEquipmentAddUnknownCondition(t *testing.T) {
	svc := newDismantledFixture()

	_, err := svc.Add(context.Background(), 1, &models.DismantledEquipmentInput{
		Name:                 "ballast",
		EquipmentConditionID: ptr(int64(404)),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Equipment condition not found: id=404", err.Error())
}

func TestDismantledEquipmentUpdateIsFullReplace(t *testing.T) {
	svc := newDismantledFixture()
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.DismantledEquipmentInput{
		Name:         "ballast",
		SerialNumber: ptr("SN-100"),
		Seq:          ptr(5),
	})
	require.NoError(t, err)

	// Omitted fields are cleared, not kept
	updated, err := svc.Update(ctx, 1, created.ID, &models.DismantledEquipmentInput{
		Name: "ignitor",
	})
	require.NoError(t, err)
	assert.Equal(t, "ignitor", updated.Name)
	assert.Nil(t, updated.SerialNumber)
	assert.Nil(t, updated.Seq)
}

func TestDismantledEquipmentUpdateBlankName(t *testing.T) {
	svc := newDismantledFixture()
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.DismantledEquipmentInput{Name: "ballast"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, created.ID, &models.DismantledEquipmentInput{Name: " "})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
}

// fakeInstalledStore keeps rows in a map
type fakeInstalledStore struct {
	items  map[int64]*models.WorkActInstalledEquipment
	nextID int64
}

func newFakeInstalledStore() *fakeInstalledStore {
	return &fakeInstalledStore{items: make(map[int64]*models.WorkActInstalledEquipment), nextID: 1}
}

func (f *fakeInstalledStore) ListByWorkAct(_ context.Context, workActID int64) ([]*models.WorkActInstalledEquipment, error) {
	var out []*models.WorkActInstalledEquipment
	for _, item := range f.items {
		if item.WorkActID == workActID {
			copied := *item
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeInstalledStore) GetScoped(_ context.Context, workActID, id int64) (*models.WorkActInstalledEquipment, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakeInstalledStore) Insert(_ context.Context, item *models.WorkActInstalledEquipment) error {
	item.ID = f.nextID
	f.nextID++
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakeInstalledStore) Update(_ context.Context, item *models.WorkActInstalledEquipment) (bool, error) {
	if _, ok := f.items[item.ID]; !ok {
		return false, nil
	}
	stored := *item
	f.items[item.ID] = &stored
	return true, nil
}

func (f *fakeInstalledStore) DeleteScoped(_ context.Context, workActID, id int64) (bool, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func newInstalledFixture() *InstalledEquipmentService {
	refs := newTestRefs([]int64{1}, nil)
	return NewInstalledEquipmentService(newFakeInstalledStore(), refs, testLogger())
}

func TestInstalledEquipmentAddTrimsName(t *testing.T) {
	svc := newInstalledFixture()

	item, err := svc.Add(context.Background(), 1, &models.InstalledEquipmentInput{
		Name:           "  LED luminaire 60W  ",
		WarrantyMonths: ptr(36),
	})
	require.NoError(t, err)
	assert.Equal(t, "LED luminaire 60W", item.Name)
	require.NotNil(t, item.WarrantyMonths)
	assert.Equal(t, 36, *item.WarrantyMonths)
}

func TestInstalledEquipmentAddBlankName(t *testing.T) {
	svc := newInstalledFixture()

	_, err := svc.Add(context.Background(), 1, &models.InstalledEquipmentInput{Name: "  "})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
	assert.Equal(t, "name is required", err.Error())
}

func TestInstalledEquipmentUpdateIsFullReplace(t *testing.T) {
	svc := newInstalledFixture()
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.InstalledEquipmentInput{
		Name:                        "LED luminaire 60W",
		SerialNumber:                ptr("SN-200"),
		WarrantyMonths:              ptr(36),
		PassportOrCertificateNumber: ptr("PC-17"),
	})
	require.NoError(t, err)

	// Omitted fields are cleared, not kept
	updated, err := svc.Update(ctx, 1, created.ID, &models.InstalledEquipmentInput{
		Name: "LED luminaire 80W",
	})
	require.NoError(t, err)
	assert.Equal(t, "LED luminaire 80W", updated.Name)
	assert.Nil(t, updated.SerialNumber)
	assert.Nil(t, updated.WarrantyMonths)
	assert.Nil(t, updated.PassportOrCertificateNumber)
}

func TestInstalledEquipmentGetScopedToParent(t *testing.T) {
	refs := newTestRefs([]int64{1, 2}, nil)
	svc := NewInstalledEquipmentService(newFakeInstalledStore(), refs, testLogger())
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.InstalledEquipmentInput{Name: "bracket"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, 2, created.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Installed equipment not found: workActId=2, id=1", err.Error())
}
