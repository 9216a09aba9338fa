package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/apperr"
)

type basisKey struct {
	workActID       int64
	workBasisTypeID int64
}

// fakeBasisStore keeps bases keyed by their natural key and rejects
// duplicates the way the unique constraint would
type fakeBasisStore struct {
	bases  map[basisKey]*models.WorkActBasis
	nextID int64
}

func newFakeBasisStore() *fakeBasisStore {
	return &fakeBasisStore{bases: make(map[basisKey]*models.WorkActBasis), nextID: 1}
}

func (f *fakeBasisStore) ListByWorkAct(_ context.Context, workActID int64) ([]*models.WorkActBasis, error) {
	var out []*models.WorkActBasis
	for key, basis := range f.bases {
		if key.workActID == workActID {
			copied := *basis
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBasisStore) GetByNaturalKey(_ context.Context, workActID, workBasisTypeID int64) (*models.WorkActBasis, error) {
	basis, ok := f.bases[basisKey{workActID, workBasisTypeID}]
	if !ok {
		return nil, nil
	}
	copied := *basis
	return &copied, nil
}

func (f *fakeBasisStore) Insert(_ context.Context, basis *models.WorkActBasis) error {
	key := basisKey{basis.WorkActID, basis.WorkBasisTypeID}
	if _, exists := f.bases[key]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uk_work_act_basis_act_type"}
	}
	basis.ID = f.nextID
	f.nextID++
	stored := *basis
	f.bases[key] = &stored
	return nil
}

func (f *fakeBasisStore) Update(_ context.Context, basis *models.WorkActBasis) (bool, error) {
	key := basisKey{basis.WorkActID, basis.WorkBasisTypeID}
	if _, ok := f.bases[key]; !ok {
		return false, nil
	}
	stored := *basis
	f.bases[key] = &stored
	return true, nil
}

func (f *fakeBasisStore) DeleteByNaturalKey(_ context.Context, workActID, workBasisTypeID int64) (bool, error) {
	key := basisKey{workActID, workBasisTypeID}
	if _, ok := f.bases[key]; !ok {
		return false, nil
	}
	delete(f.bases, key)
	return true, nil
}

func newBasisFixture() *BasisService {
	refs := newTestRefs([]int64{1}, []string{
		catalogKey(models.CatalogWorkBasisType, 3),
	})
	return NewBasisService(newFakeBasisStore(), refs, testLogger())
}

func TestBasisAddDefaultsSelected(t *testing.T) {
	svc := newBasisFixture()

	basis, err := svc.Add(context.Background(), 1, &models.AddBasisInput{
		WorkBasisTypeID: 3,
		DocumentNumber:  ptr("ORD-15"),
	})
	require.NoError(t, err)
	assert.True(t, basis.IsSelected)
	require.NotNil(t, basis.DocumentNumber)
	assert.Equal(t, "ORD-15", *basis.DocumentNumber)
}

func TestBasisAddDuplicatePair(t *testing.T) {
	svc := newBasisFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, &models.AddBasisInput{WorkBasisTypeID: 3})
	require.NoError(t, err)

	_, err = svc.Add(ctx, 1, &models.AddBasisInput{WorkBasisTypeID: 3})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Equal(t, "Work act basis already exists: workActId=1, workBasisTypeId=3", err.Error())
}

func TestBasisAddUnknownType(t *testing.T) {
	svc := newBasisFixture()

	_, err := svc.Add(context.Background(), 1, &models.AddBasisInput{WorkBasisTypeID: 404})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Work basis type not found: id=404", err.Error())
}

func TestBasisUpdateKeepsSelectionOverwritesDocument(t *testing.T) {
	svc := newBasisFixture()
	ctx := context.Background()

	docDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Add(ctx, 1, &models.AddBasisInput{
		WorkBasisTypeID: 3,
		IsSelected:      ptr(false),
		DocumentNumber:  ptr("ORD-15"),
		DocumentDate:    &docDate,
	})
	require.NoError(t, err)

	// Omitting isSelected keeps it; omitting the document fields clears them
	updated, err := svc.Update(ctx, 1, 3, &models.UpdateBasisInput{})
	require.NoError(t, err)
	assert.False(t, updated.IsSelected)
	assert.Nil(t, updated.DocumentNumber)
	assert.Nil(t, updated.DocumentDate)
}

func TestBasisDeleteByNaturalKey(t *testing.T) {
	svc := newBasisFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, &models.AddBasisInput{WorkBasisTypeID: 3})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, 3))

	err = svc.Delete(ctx, 1, 3)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Work act basis not found: workActId=1, workBasisTypeId=3", err.Error())
}
