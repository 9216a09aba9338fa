package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/notify"
	"github.com/eternallight/backend/common/apperr"
)

type faultKey struct {
	workActID   int64
	faultTypeID int64
}

// fakeFaultStore keeps fault ticks keyed by their natural key and rejects
// duplicates the way the unique constraint would
type fakeFaultStore struct {
	faults map[faultKey]*models.WorkActFault
	nextID int64
}

func newFakeFaultStore() *fakeFaultStore {
	return &fakeFaultStore{faults: make(map[faultKey]*models.WorkActFault), nextID: 1}
}

func (f *fakeFaultStore) ListByWorkAct(_ context.Context, workActID int64) ([]*models.WorkActFault, error) {
	var out []*models.WorkActFault
	for key, fault := range f.faults {
		if key.workActID == workActID {
			copied := *fault
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeFaultStore) GetByNaturalKey(_ context.Context, workActID, faultTypeID int64) (*models.WorkActFault, error) {
	fault, ok := f.faults[faultKey{workActID, faultTypeID}]
	if !ok {
		return nil, nil
	}
	copied := *fault
	return &copied, nil
}

func (f *fakeFaultStore) Insert(_ context.Context, fault *models.WorkActFault) error {
	key := faultKey{fault.WorkActID, fault.FaultTypeID}
	if _, exists := f.faults[key]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "uk_work_act_fault_act_type"}
	}
	fault.ID = f.nextID
	f.nextID++
	stored := *fault
	f.faults[key] = &stored
	return nil
}

func (f *fakeFaultStore) Update(_ context.Context, fault *models.WorkActFault) (bool, error) {
	key := faultKey{fault.WorkActID, fault.FaultTypeID}
	if _, ok := f.faults[key]; !ok {
		return false, nil
	}
	stored := *fault
	f.faults[key] = &stored
	return true, nil
}

func (f *fakeFaultStore) DeleteByNaturalKey(_ context.Context, workActID, faultTypeID int64) (bool, error) {
	key := faultKey{workActID, faultTypeID}
	if _, ok := f.faults[key]; !ok {
		return false, nil
	}
	delete(f.faults, key)
	return true, nil
}

// capturePublisher records published payloads on a channel
type capturePublisher struct {
	events chan []byte
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{events: make(chan []byte, 8)}
}

func (p *capturePublisher) Publish(_ context.Context, message []byte) error {
	p.events <- message
	return nil
}

func newFaultFixture(t *testing.T) (*FaultService, *fakeFaultStore, *capturePublisher) {
	t.Helper()

	acts := newFakeWorkActStore()
	require.NoError(t, acts.Create(context.Background(), &models.WorkAct{
		ExecutorOrgID: 10,
		ActNumber:     ptr("ACT-7"),
	}))

	store := newFakeFaultStore()
	pub := newCapturePublisher()
	notifier := notify.NewNotifier(pub, testLogger())
	refs := NewRefs(acts, &fakeCatalogs{rows: map[string]bool{
		catalogKey(models.CatalogFaultType, 5): true,
	}})

	svc := NewFaultService(store, acts, refs, notifier, testLogger())
	return svc, store, pub
}

func waitForEvent(t *testing.T, pub *capturePublisher) notify.FaultAddedEvent {
	t.Helper()

	select {
	case payload := <-pub.events:
		var event notify.FaultAddedEvent
		require.NoError(t, json.Unmarshal(payload, &event))
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("no fault-added event published")
		return notify.FaultAddedEvent{}
	}
}

func TestFaultAddPublishesEvent(t *testing.T) {
	svc, _, pub := newFaultFixture(t)

	fault, err := svc.Add(context.Background(), 1, &models.AddFaultInput{FaultTypeID: 5}, "alice")
	require.NoError(t, err)
	assert.True(t, fault.IsSelected)

	event := waitForEvent(t, pub)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, int64(1), event.WorkActID)
	assert.Equal(t, int64(5), event.FaultTypeID)
	assert.Equal(t, "alice", event.Actor)
	require.NotNil(t, event.ActNumber)
	assert.Equal(t, "ACT-7", *event.ActNumber)
}

func TestFaultAddUnselectedBlankTextSkipsEvent(t *testing.T) {
	svc, _, pub := newFaultFixture(t)

	_, err := svc.Add(context.Background(), 1, &models.AddFaultInput{
		FaultTypeID: 5,
		IsSelected:  ptr(false),
		OtherText:   ptr("   "),
	}, "alice")
	require.NoError(t, err)

	assert.Empty(t, pub.events)
}

func TestFaultAddUnselectedWithTextPublishes(t *testing.T) {
	svc, _, pub := newFaultFixture(t)

	_, err := svc.Add(context.Background(), 1, &models.AddFaultInput{
		FaultTypeID: 5,
		IsSelected:  ptr(false),
		OtherText:   ptr("flickering at dusk"),
	}, "")
	require.NoError(t, err)

	event := waitForEvent(t, pub)
	assert.False(t, event.IsSelected)
	require.NotNil(t, event.OtherText)
	assert.Equal(t, "flickering at dusk", *event.OtherText)
}

func TestFaultAddDuplicateConflicts(t *testing.T) {
	svc, _, _ := newFaultFixture(t)

	_, err := svc.Add(context.Background(), 1, &models.AddFaultInput{FaultTypeID: 5}, "")
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), 1, &models.AddFaultInput{FaultTypeID: 5}, "")
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	assert.Equal(t, "Work act fault already exists: workActId=1, faultTypeId=5", err.Error())
}

func TestFaultAddUnknownWorkAct(t *testing.T) {
	svc, _, _ := newFaultFixture(t)

	_, err := svc.Add(context.Background(), 99, &models.AddFaultInput{FaultTypeID: 5}, "")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Work act not found: id=99", err.Error())
}

func TestFaultAddUnknownFaultType(t *testing.T) {
	svc, _, _ := newFaultFixture(t)

	_, err := svc.Add(context.Background(), 1, &models.AddFaultInput{FaultTypeID: 404}, "")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Fault type not found: id=404", err.Error())
}

func TestFaultUpdateKeepsSelectionWhenOmitted(t *testing.T) {
	svc, _, _ := newFaultFixture(t)

	_, err := svc.Add(context.Background(), 1, &models.AddFaultInput{
		FaultTypeID: 5,
		OtherText:   ptr("initial"),
	}, "")
	require.NoError(t, err)

	// Omitting isSelected keeps it; omitting otherText clears it
	updated, err := svc.Update(context.Background(), 1, 5, &models.UpdateFaultInput{})
	require.NoError(t, err)
	assert.True(t, updated.IsSelected)
	assert.Nil(t, updated.OtherText)
}

func TestFaultDeleteByNaturalKey(t *testing.T) {
	svc, _, _ := newFaultFixture(t)

	_, err := svc.Add(context.Background(), 1, &models.AddFaultInput{FaultTypeID: 5}, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, 5))

	err = svc.Delete(context.Background(), 1, 5)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Work act fault not found: workActId=1, faultTypeId=5", err.Error())
}
