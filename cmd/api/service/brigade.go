package service

import (
	"context"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/repository"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// BrigadeStore is the persistence surface of brigade membership
type BrigadeStore interface {
	ListByWorkAct(ctx context.Context, workActID int64) ([]*models.WorkActBrigadeMember, error)
	GetScoped(ctx context.Context, workActID, id int64) (*models.WorkActBrigadeMember, error)
	Insert(ctx context.Context, m *models.WorkActBrigadeMember) error
	Update(ctx context.Context, m *models.WorkActBrigadeMember) (bool, error)
	DeleteScoped(ctx context.Context, workActID, id int64) (bool, error)
}

// BrigadeService implements the brigade roster of an act
type BrigadeService struct {
	store BrigadeStore
	refs  *Refs
	log   *logger.Logger
}

// NewBrigadeService creates a new brigade service
func NewBrigadeService(store BrigadeStore, refs *Refs, log *logger.Logger) *BrigadeService {
	return &BrigadeService{store: store, refs: refs, log: log}
}

// List returns the roster of the act in seq order
func (s *BrigadeService) List(ctx context.Context, workActID int64) ([]*models.WorkActBrigadeMember, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	members, err := s.store.ListByWorkAct(ctx, workActID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return members, nil
}

// Get returns the member only when it belongs to the act
func (s *BrigadeService) Get(ctx context.Context, workActID, id int64) (*models.WorkActBrigadeMember, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	member, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if member == nil {
		return nil, apperr.NotFound("Brigade member not found: workActId=%d, id=%d", workActID, id)
	}

	return member, nil
}

// Add appends an employee to the roster
func (s *BrigadeService) Add(ctx context.Context, workActID int64, in *models.AddBrigadeMemberInput) (*models.WorkActBrigadeMember, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	if in.EmployeeID <= 0 {
		return nil, apperr.Invalid("employeeId is required")
	}
	if in.BrigadeRoleID <= 0 {
		return nil, apperr.Invalid("brigadeRoleId is required")
	}
	if err := s.refs.RequireCatalog(ctx, models.CatalogEmployee, in.EmployeeID); err != nil {
		return nil, err
	}
	if err := s.refs.RequireCatalog(ctx, models.CatalogBrigadeRole, in.BrigadeRoleID); err != nil {
		return nil, err
	}

	member := &models.WorkActBrigadeMember{
		WorkActID:     workActID,
		EmployeeID:    in.EmployeeID,
		BrigadeRoleID: in.BrigadeRoleID,
		Seq:           in.Seq,
	}

	if err := s.store.Insert(ctx, member); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("Referenced entity not found")
		}
		return nil, apperr.Internal(err)
	}

	return member, nil
}

// Update changes the member's role or position; each field applies only
// when supplied
func (s *BrigadeService) Update(ctx context.Context, workActID, id int64, in *models.UpdateBrigadeMemberInput) (*models.WorkActBrigadeMember, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	member, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if member == nil {
		return nil, apperr.NotFound("Brigade member not found: workActId=%d, id=%d", workActID, id)
	}

	if in.BrigadeRoleID != nil {
		if err := s.refs.RequireCatalog(ctx, models.CatalogBrigadeRole, *in.BrigadeRoleID); err != nil {
			return nil, err
		}
		member.BrigadeRoleID = *in.BrigadeRoleID
	}
	if in.Seq != nil {
		member.Seq = in.Seq
	}

	found, err := s.store.Update(ctx, member)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Brigade member not found: workActId=%d, id=%d", workActID, id)
	}

	return member, nil
}

// Delete removes the member only when it belongs to the act
func (s *BrigadeService) Delete(ctx context.Context, workActID, id int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.DeleteScoped(ctx, workActID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Brigade member not found: workActId=%d, id=%d", workActID, id)
	}

	return nil
}
