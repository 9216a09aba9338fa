package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/apperr"
)

// fakeApprovalStore keeps at most one approval per work act
type fakeApprovalStore struct {
	approvals map[int64]*models.WorkActApproval
	upserts   int
}

func newFakeApprovalStore() *fakeApprovalStore {
	return &fakeApprovalStore{approvals: make(map[int64]*models.WorkActApproval)}
}

func (f *fakeApprovalStore) Upsert(_ context.Context, a *models.WorkActApproval) error {
	f.upserts++
	stored := *a
	f.approvals[a.WorkActID] = &stored
	return nil
}

func (f *fakeApprovalStore) Get(_ context.Context, workActID int64) (*models.WorkActApproval, error) {
	approval, ok := f.approvals[workActID]
	if !ok {
		return nil, nil
	}
	copied := *approval
	return &copied, nil
}

func (f *fakeApprovalStore) Delete(_ context.Context, workActID int64) (bool, error) {
	if _, ok := f.approvals[workActID]; !ok {
		return false, nil
	}
	delete(f.approvals, workActID)
	return true, nil
}

func newApprovalFixture() (*ApprovalService, *fakeApprovalStore) {
	store := newFakeApprovalStore()
	refs := newTestRefs([]int64{1}, nil)
	return NewApprovalService(store, refs, testLogger()), store
}

func TestApprovalSetReplacesExisting(t *testing.T) {
	svc, store := newApprovalFixture()
	ctx := context.Background()

	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	_, err := svc.Set(ctx, 1, &models.ApprovalInput{
		ApproverFullName: ptr("Ivanov I. I."),
		ApproverPosition: ptr("chief engineer"),
		ApprovalDate:     &date,
	})
	require.NoError(t, err)

	// Second set replaces the row instead of adding one
	_, err = svc.Set(ctx, 1, &models.ApprovalInput{
		ApproverFullName: ptr("Petrova A. S."),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, store.upserts)
	assert.Len(t, store.approvals, 1)

	approval, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, approval.ApproverFullName)
	assert.Equal(t, "Petrova A. S.", *approval.ApproverFullName)
	assert.Nil(t, approval.ApprovalDate)
}

func TestApprovalSetUnknownWorkAct(t *testing.T) {
	svc, _ := newApprovalFixture()

	_, err := svc.Set(context.Background(), 99, &models.ApprovalInput{})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Work act not found: id=99", err.Error())
}

func TestApprovalGetAbsent(t *testing.T) {
	svc, _ := newApprovalFixture()

	_, err := svc.Get(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Approval not found: workActId=1", err.Error())
}

func TestApprovalDelete(t *testing.T) {
	svc, _ := newApprovalFixture()
	ctx := context.Background()

	_, err := svc.Set(ctx, 1, &models.ApprovalInput{StampPresent: ptr(true)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1))

	err = svc.Delete(ctx, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
