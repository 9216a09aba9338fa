package service

import (
	"context"
	"strings"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/notify"
	"github.com/eternallight/backend/cmd/api/repository"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// FaultStore is the persistence surface of fault ticks
type FaultStore interface {
	ListByWorkAct(ctx context.Context, workActID int64) ([]*models.WorkActFault, error)
	GetByNaturalKey(ctx context.Context, workActID, faultTypeID int64) (*models.WorkActFault, error)
	Insert(ctx context.Context, f *models.WorkActFault) error
	Update(ctx context.Context, f *models.WorkActFault) (bool, error)
	DeleteByNaturalKey(ctx context.Context, workActID, faultTypeID int64) (bool, error)
}

// WorkActReader loads the aggregate root; the fault service needs the act
// itself to enrich notification events
type WorkActReader interface {
	GetByID(ctx context.Context, id int64) (*models.WorkAct, error)
}

// FaultService implements the fault ticks of a work act. Rows are
// addressed by (workActId, faultTypeId) rather than surrogate id.
type FaultService struct {
	store    FaultStore
	acts     WorkActReader
	refs     *Refs
	notifier *notify.Notifier
	log      *logger.Logger
}

// NewFaultService creates a new fault service
func NewFaultService(store FaultStore, acts WorkActReader, refs *Refs, notifier *notify.Notifier, log *logger.Logger) *FaultService {
	return &FaultService{store: store, acts: acts, refs: refs, notifier: notifier, log: log}
}

// List returns the fault ticks of the act
func (s *FaultService) List(ctx context.Context, workActID int64) ([]*models.WorkActFault, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	faults, err := s.store.ListByWorkAct(ctx, workActID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return faults, nil
}

// Get returns the fault tick for the fault type
func (s *FaultService) Get(ctx context.Context, workActID, faultTypeID int64) (*models.WorkActFault, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	fault, err := s.store.GetByNaturalKey(ctx, workActID, faultTypeID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if fault == nil {
		return nil, apperr.NotFound("Work act fault not found: workActId=%d, faultTypeId=%d", workActID, faultTypeID)
	}

	return fault, nil
}

// Add records a fault tick and notifies interested parties when the tick
// is selected or carries free text. The actor is whoever the request was
// made on behalf of.
func (s *FaultService) Add(ctx context.Context, workActID int64, in *models.AddFaultInput, actor string) (*models.WorkActFault, error) {
	act, err := s.acts.GetByID(ctx, workActID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if act == nil {
		return nil, apperr.NotFound("Work act not found: id=%d", workActID)
	}

	if in.FaultTypeID <= 0 {
		return nil, apperr.Invalid("faultTypeId is required")
	}
	if err := s.refs.RequireCatalog(ctx, models.CatalogFaultType, in.FaultTypeID); err != nil {
		return nil, err
	}

	isSelected := true
	if in.IsSelected != nil {
		isSelected = *in.IsSelected
	}

	fault := &models.WorkActFault{
		WorkActID:   workActID,
		FaultTypeID: in.FaultTypeID,
		IsSelected:  isSelected,
		OtherText:   in.OtherText,
	}

	if err := s.store.Insert(ctx, fault); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Work act fault already exists: workActId=%d, faultTypeId=%d", workActID, in.FaultTypeID)
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("Referenced entity not found")
		}
		return nil, apperr.Internal(err)
	}

	if fault.IsSelected || hasText(fault.OtherText) {
		s.notifier.FaultAdded(notify.FaultAddedEvent{
			WorkActID:   workActID,
			ActNumber:   act.ActNumber,
			FaultTypeID: fault.FaultTypeID,
			IsSelected:  fault.IsSelected,
			OtherText:   fault.OtherText,
			Actor:       actor,
		})
	}

	return fault, nil
}

// Update rewrites the fault tick for the fault type. IsSelected applies
// only when supplied; OtherText always overwrites.
func (s *FaultService) Update(ctx context.Context, workActID, faultTypeID int64, in *models.UpdateFaultInput) (*models.WorkActFault, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	fault, err := s.store.GetByNaturalKey(ctx, workActID, faultTypeID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if fault == nil {
		return nil, apperr.NotFound("Work act fault not found: workActId=%d, faultTypeId=%d", workActID, faultTypeID)
	}

	if in.IsSelected != nil {
		fault.IsSelected = *in.IsSelected
	}
	fault.OtherText = in.OtherText

	found, err := s.store.Update(ctx, fault)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Work act fault not found: workActId=%d, faultTypeId=%d", workActID, faultTypeID)
	}

	return fault, nil
}

// Delete removes the fault tick for the fault type
func (s *FaultService) Delete(ctx context.Context, workActID, faultTypeID int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.DeleteByNaturalKey(ctx, workActID, faultTypeID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Work act fault not found: workActId=%d, faultTypeId=%d", workActID, faultTypeID)
	}

	return nil
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
