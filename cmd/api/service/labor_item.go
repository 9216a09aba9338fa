package service

import (
	"context"
	"strings"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/repository"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// LaborItemStore is the persistence surface of labor lines
type LaborItemStore interface {
	ListByWorkAct(ctx context.Context, workActID int64) ([]*models.WorkActLaborItem, error)
	GetScoped(ctx context.Context, workActID, id int64) (*models.WorkActLaborItem, error)
	Insert(ctx context.Context, l *models.WorkActLaborItem) error
	Update(ctx context.Context, l *models.WorkActLaborItem) (bool, error)
	DeleteScoped(ctx context.Context, workActID, id int64) (bool, error)
}

// LaborItemService implements the labor lines of an act
type LaborItemService struct {
	store LaborItemStore
	refs  *Refs
	log   *logger.Logger
}

// NewLaborItemService creates a new labor-item service
func NewLaborItemService(store LaborItemStore, refs *Refs, log *logger.Logger) *LaborItemService {
	return &LaborItemService{store: store, refs: refs, log: log}
}

// List returns the labor lines of the act in seq order
func (s *LaborItemService) List(ctx context.Context, workActID int64) ([]*models.WorkActLaborItem, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	items, err := s.store.ListByWorkAct(ctx, workActID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return items, nil
}

// Get returns the line only when it belongs to the act
func (s *LaborItemService) Get(ctx context.Context, workActID, id int64) (*models.WorkActLaborItem, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Labor item not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Add records a labor line
func (s *LaborItemService) Add(ctx context.Context, workActID int64, in *models.AddLaborItemInput) (*models.WorkActLaborItem, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.WorkTypeName)
	if name == "" {
		return nil, apperr.Invalid("workTypeName is required")
	}
	if err := s.refs.RequireCatalogOpt(ctx, models.CatalogUnitOfMeasure, in.UomID); err != nil {
		return nil, err
	}

	item := &models.WorkActLaborItem{
		WorkActID:    workActID,
		Seq:          in.Seq,
		WorkTypeName: name,
		UomID:        in.UomID,
		WorkVolume:   in.WorkVolume,
		NormHours:    in.NormHours,
		ActualHours:  in.ActualHours,
		RateAmount:   in.RateAmount,
		CostAmount:   in.CostAmount,
	}

	if err := s.store.Insert(ctx, item); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("Referenced entity not found")
		}
		return nil, apperr.Internal(err)
	}

	return item, nil
}

// Update rewrites the line. Seq and workTypeName apply only when
// supplied; the remaining fields always overwrite.
func (s *LaborItemService) Update(ctx context.Context, workActID, id int64, in *models.UpdateLaborItemInput) (*models.WorkActLaborItem, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Labor item not found: workActId=%d, id=%d", workActID, id)
	}

	if in.Seq != nil {
		item.Seq = in.Seq
	}
	if in.WorkTypeName != nil {
		name := strings.TrimSpace(*in.WorkTypeName)
		if name == "" {
			return nil, apperr.Invalid("workTypeName must not be blank")
		}
		item.WorkTypeName = name
	}
	if err := s.refs.RequireCatalogOpt(ctx, models.CatalogUnitOfMeasure, in.UomID); err != nil {
		return nil, err
	}
	item.UomID = in.UomID
	item.WorkVolume = in.WorkVolume
	item.NormHours = in.NormHours
	item.ActualHours = in.ActualHours
	item.RateAmount = in.RateAmount
	item.CostAmount = in.CostAmount

	found, err := s.store.Update(ctx, item)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Labor item not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Delete removes the line only when it belongs to the act
func (s *LaborItemService) Delete(ctx context.Context, workActID, id int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.DeleteScoped(ctx, workActID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Labor item not found: workActId=%d, id=%d", workActID, id)
	}

	return nil
}
