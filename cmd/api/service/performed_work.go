package service

import (
	"context"
	"strings"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/repository"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// PerformedWorkStore is the persistence surface of the performed-work list
type PerformedWorkStore interface {
	ListByWorkAct(ctx context.Context, workActID int64) ([]*models.WorkActPerformedWork, error)
	GetScoped(ctx context.Context, workActID, id int64) (*models.WorkActPerformedWork, error)
	Insert(ctx context.Context, w *models.WorkActPerformedWork) error
	Update(ctx context.Context, w *models.WorkActPerformedWork) (bool, error)
	DeleteScoped(ctx context.Context, workActID, id int64) (bool, error)
}

// PerformedWorkService implements the numbered performed-work list of an
// act. Seq is caller-supplied, positive and unique within the act.
type PerformedWorkService struct {
	store PerformedWorkStore
	refs  *Refs
	log   *logger.Logger
}

// NewPerformedWorkService creates a new performed-work service
func NewPerformedWorkService(store PerformedWorkStore, refs *Refs, log *logger.Logger) *PerformedWorkService {
	return &PerformedWorkService{store: store, refs: refs, log: log}
}

// List returns the performed-work lines of the act in seq order
func (s *PerformedWorkService) List(ctx context.Context, workActID int64) ([]*models.WorkActPerformedWork, error) {
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
func (s *PerformedWorkService) Get(ctx context.Context, workActID, id int64) (*models.WorkActPerformedWork, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Performed work not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Add records a performed-work line; a duplicate seq within the act is a
// conflict
func (s *PerformedWorkService) Add(ctx context.Context, workActID int64, in *models.AddPerformedWorkInput) (*models.WorkActPerformedWork, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	if in.Seq <= 0 {
		return nil, apperr.Invalid("seq must be positive")
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, apperr.Invalid("description is required")
	}

	item := &models.WorkActPerformedWork{
		WorkActID:   workActID,
		Seq:         in.Seq,
		Description: description,
	}

	if err := s.store.Insert(ctx, item); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Performed work already exists: workActId=%d, seq=%d", workActID, in.Seq)
		}
		return nil, apperr.Internal(err)
	}

	return item, nil
}

// Update rewrites the line; both fields apply only when supplied
func (s *PerformedWorkService) Update(ctx context.Context, workActID, id int64, in *models.UpdatePerformedWorkInput) (*models.WorkActPerformedWork, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Performed work not found: workActId=%d, id=%d", workActID, id)
	}

	if in.Seq != nil {
		if *in.Seq <= 0 {
			return nil, apperr.Invalid("seq must be positive")
		}
		item.Seq = *in.Seq
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, apperr.Invalid("description must not be blank")
		}
		item.Description = description
	}

	found, err := s.store.Update(ctx, item)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Performed work already exists: workActId=%d, seq=%d", workActID, item.Seq)
		}
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Performed work not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Delete removes the line only when it belongs to the act
func (s *PerformedWorkService) Delete(ctx context.Context, workActID, id int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.DeleteScoped(ctx, workActID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Performed work not found: workActId=%d, id=%d", workActID, id)
	}

	return nil
}
