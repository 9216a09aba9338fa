package service

import (
	"context"
	"sort"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/apperr"
)

// fakePerformedWorkStore keeps lines in a map and rejects duplicate seq
// within an act the way the unique constraint would
type fakePerformedWorkStore struct {
	items  map[int64]*models.WorkActPerformedWork
	nextID int64
}

func newFakePerformedWorkStore() *fakePerformedWorkStore {
	return &fakePerformedWorkStore{items: make(map[int64]*models.WorkActPerformedWork), nextID: 1}
}

func (f *fakePerformedWorkStore) seqTaken(workActID int64, seq int, excludeID int64) bool {
	for _, item := range f.items {
		if item.WorkActID == workActID && item.Seq == seq && item.ID != excludeID {
			return true
		}
	}
	return false
}

func (f *fakePerformedWorkStore) ListByWorkAct(_ context.Context, workActID int64) ([]*models.WorkActPerformedWork, error) {
	var out []*models.WorkActPerformedWork
	for _, item := range f.items {
		if item.WorkActID == workActID {
			copied := *item
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

func (f *fakePerformedWorkStore) GetScoped(_ context.Context, workActID, id int64) (*models.WorkActPerformedWork, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (f *fakePerformedWorkStore) Insert(_ context.Context, item *models.WorkActPerformedWork) error {
	if f.seqTaken(item.WorkActID, item.Seq, 0) {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uk_work_act_performed_work_act_seq"}
	}
	item.ID = f.nextID
	f.nextID++
	stored := *item
	f.items[item.ID] = &stored
	return nil
}

func (f *fakePerformedWorkStore) Update(_ context.Context, item *models.WorkActPerformedWork) (bool, error) {
	if _, ok := f.items[item.ID]; !ok {
		return false, nil
	}
	if f.seqTaken(item.WorkActID, item.Seq, item.ID) {
		return false, &pgconn.PgError{Code: "23505", ConstraintName: "uk_work_act_performed_work_act_seq"}
	}
	stored := *item
	f.items[item.ID] = &stored
	return true, nil
}

func (f *fakePerformedWorkStore) DeleteScoped(_ context.Context, workActID, id int64) (bool, error) {
	item, ok := f.items[id]
	if !ok || item.WorkActID != workActID {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func newPerformedWorkFixture() *PerformedWorkService {
	refs := newTestRefs([]int64{1}, nil)
	return NewPerformedWorkService(newFakePerformedWorkStore(), refs, testLogger())
}

func TestPerformedWorkAddRequiresPositiveSeq(t *testing.T) {
	svc := newPerformedWorkFixture()

	_, err := svc.Add(context.Background(), 1, &models.AddPerformedWorkInput{
		Seq:         0,
		Description: "replaced luminaire",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
}

func TestPerformedWorkAddRequiresDescription(t *testing.T) {
	svc := newPerformedWorkFixture()

	_, err := svc.Add(context.Background(), 1, &models.AddPerformedWorkInput{Seq: 1, Description: "  "})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalid(err))
}

func TestPerformedWorkDuplicateSeqConflicts(t *testing.T) {
	svc := newPerformedWorkFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, &models.AddPerformedWorkInput{Seq: 1, Description: "replaced luminaire"})
	require.NoError(t, err)

	_, err = svc.Add(ctx, 1, &models.AddPerformedWorkInput{Seq: 1, Description: "cleaned diffuser"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Equal(t, "Performed work already exists: workActId=1, seq=1", err.Error())
}

func TestPerformedWorkListOrderedBySeq(t *testing.T) {
	svc := newPerformedWorkFixture()
	ctx := context.Background()

	for _, seq := range []int{2, 3, 1} {
		_, err := svc.Add(ctx, 1, &models.AddPerformedWorkInput{Seq: seq, Description: "step"})
		require.NoError(t, err)
	}

	items, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 1, items[0].Seq)
	assert.Equal(t, 2, items[1].Seq)
	assert.Equal(t, 3, items[2].Seq)
}

func TestPerformedWorkUpdateSeqCollision(t *testing.T) {
	svc := newPerformedWorkFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, &models.AddPerformedWorkInput{Seq: 1, Description: "first"})
	require.NoError(t, err)
	second, err := svc.Add(ctx, 1, &models.AddPerformedWorkInput{Seq: 2, Description: "second"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, second.ID, &models.UpdatePerformedWorkInput{Seq: ptr(1)})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestPerformedWorkUpdateTrimsDescription(t *testing.T) {
	svc := newPerformedWorkFixture()
	ctx := context.Background()

	created, err := svc.Add(ctx, 1, &models.AddPerformedWorkInput{Seq: 1, Description: "first"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 1, created.ID, &models.UpdatePerformedWorkInput{
		Description: ptr("  adjusted bracket  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "adjusted bracket", updated.Description)
	assert.Equal(t, 1, updated.Seq)
}
