package service

import (
	"context"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/repository"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// BasisStore is the persistence surface of work bases
type BasisStore interface {
	ListByWorkAct(ctx context.Context, workActID int64) ([]*models.WorkActBasis, error)
	GetByNaturalKey(ctx context.Context, workActID, workBasisTypeID int64) (*models.WorkActBasis, error)
	Insert(ctx context.Context, b *models.WorkActBasis) error
	Update(ctx context.Context, b *models.WorkActBasis) (bool, error)
	DeleteByNaturalKey(ctx context.Context, workActID, workBasisTypeID int64) (bool, error)
}

// BasisService implements the work bases of an act. Rows are addressed by
// (workActId, workBasisTypeId) rather than surrogate id.
type BasisService struct {
	store BasisStore
	refs  *Refs
	log   *logger.Logger
}

// NewBasisService creates a new basis service
func NewBasisService(store BasisStore, refs *Refs, log *logger.Logger) *BasisService {
	return &BasisService{store: store, refs: refs, log: log}
}

// List returns the bases of the act
func (s *BasisService) List(ctx context.Context, workActID int64) ([]*models.WorkActBasis, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	bases, err := s.store.ListByWorkAct(ctx, workActID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return bases, nil
}

// Get returns the basis row for the basis type
func (s *BasisService) Get(ctx context.Context, workActID, workBasisTypeID int64) (*models.WorkActBasis, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	basis, err := s.store.GetByNaturalKey(ctx, workActID, workBasisTypeID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if basis == nil {
		return nil, apperr.NotFound("Work act basis not found: workActId=%d, workBasisTypeId=%d", workActID, workBasisTypeID)
	}

	return basis, nil
}

// Add records a basis row
func (s *BasisService) Add(ctx context.Context, workActID int64, in *models.AddBasisInput) (*models.WorkActBasis, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	if in.WorkBasisTypeID <= 0 {
		return nil, apperr.Invalid("workBasisTypeId is required")
	}
	if err := s.refs.RequireCatalog(ctx, models.CatalogWorkBasisType, in.WorkBasisTypeID); err != nil {
		return nil, err
	}

	isSelected := true
	if in.IsSelected != nil {
		isSelected = *in.IsSelected
	}

	basis := &models.WorkActBasis{
		WorkActID:       workActID,
		WorkBasisTypeID: in.WorkBasisTypeID,
		IsSelected:      isSelected,
		DocumentNumber:  in.DocumentNumber,
		DocumentDate:    in.DocumentDate,
	}

	if err := s.store.Insert(ctx, basis); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Conflict("Work act basis already exists: workActId=%d, workBasisTypeId=%d", workActID, in.WorkBasisTypeID)
		}
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("Referenced entity not found")
		}
		return nil, apperr.Internal(err)
	}

	return basis, nil
}

// Update rewrites the basis row for the basis type. IsSelected applies
// only when supplied; the document fields always overwrite.
func (s *BasisService) Update(ctx context.Context, workActID, workBasisTypeID int64, in *models.UpdateBasisInput) (*models.WorkActBasis, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	basis, err := s.store.GetByNaturalKey(ctx, workActID, workBasisTypeID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if basis == nil {
		return nil, apperr.NotFound("Work act basis not found: workActId=%d, workBasisTypeId=%d", workActID, workBasisTypeID)
	}

	if in.IsSelected != nil {
		basis.IsSelected = *in.IsSelected
	}
	basis.DocumentNumber = in.DocumentNumber
	basis.DocumentDate = in.DocumentDate

	found, err := s.store.Update(ctx, basis)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Work act basis not found: workActId=%d, workBasisTypeId=%d", workActID, workBasisTypeID)
	}

	return basis, nil
}

// Delete removes the basis row for the basis type
func (s *BasisService) Delete(ctx context.Context, workActID, workBasisTypeID int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.DeleteByNaturalKey(ctx, workActID, workBasisTypeID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Work act basis not found: workActId=%d, workBasisTypeId=%d", workActID, workBasisTypeID)
	}

	return nil
}
