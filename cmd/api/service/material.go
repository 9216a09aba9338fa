package service

import (
	"context"
	"strings"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/repository"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// MaterialStore is the persistence surface of material lines
type MaterialStore interface {
	ListByWorkAct(ctx context.Context, workActID int64) ([]*models.WorkActMaterial, error)
	GetScoped(ctx context.Context, workActID, id int64) (*models.WorkActMaterial, error)
	Insert(ctx context.Context, m *models.WorkActMaterial) error
	Update(ctx context.Context, m *models.WorkActMaterial) (bool, error)
	DeleteScoped(ctx context.Context, workActID, id int64) (bool, error)
}

// MaterialService implements the material lines of an act
type MaterialService struct {
	store MaterialStore
	refs  *Refs
	log   *logger.Logger
}

// NewMaterialService creates a new material service
func NewMaterialService(store MaterialStore, refs *Refs, log *logger.Logger) *MaterialService {
	return &MaterialService{store: store, refs: refs, log: log}
}

// List returns the material lines of the act in seq order
func (s *MaterialService) List(ctx context.Context, workActID int64) ([]*models.WorkActMaterial, error) {
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
func (s *MaterialService) Get(ctx context.Context, workActID, id int64) (*models.WorkActMaterial, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Material not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Add records a material line
func (s *MaterialService) Add(ctx context.Context, workActID int64, in *models.AddMaterialInput) (*models.WorkActMaterial, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}
	if err := s.refs.RequireCatalogOpt(ctx, models.CatalogUnitOfMeasure, in.UomID); err != nil {
		return nil, err
	}

	item := &models.WorkActMaterial{
		WorkActID:      workActID,
		Seq:            in.Seq,
		Name:           name,
		ModelOrArticle: in.ModelOrArticle,
		UomID:          in.UomID,
		Quantity:       in.Quantity,
		UnitPrice:      in.UnitPrice,
		LineTotal:      in.LineTotal,
	}

	if err := s.store.Insert(ctx, item); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("Referenced entity not found")
		}
		return nil, apperr.Internal(err)
	}

	return item, nil
}

// Update rewrites the line. Seq and name apply only when supplied; the
// remaining fields always overwrite.
func (s *MaterialService) Update(ctx context.Context, workActID, id int64, in *models.UpdateMaterialInput) (*models.WorkActMaterial, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Material not found: workActId=%d, id=%d", workActID, id)
	}

	if in.Seq != nil {
		item.Seq = in.Seq
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Invalid("name must not be blank")
		}
		item.Name = name
	}
	if err := s.refs.RequireCatalogOpt(ctx, models.CatalogUnitOfMeasure, in.UomID); err != nil {
		return nil, err
	}
	item.UomID = in.UomID
	item.ModelOrArticle = in.ModelOrArticle
	item.Quantity = in.Quantity
	item.UnitPrice = in.UnitPrice
	item.LineTotal = in.LineTotal

	found, err := s.store.Update(ctx, item)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Material not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Delete removes the line only when it belongs to the act
func (s *MaterialService) Delete(ctx context.Context, workActID, id int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.DeleteScoped(ctx, workActID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Material not found: workActId=%d, id=%d", workActID, id)
	}

	return nil
}
