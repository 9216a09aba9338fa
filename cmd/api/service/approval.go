package service

import (
	"context"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// ApprovalStore is the persistence surface of the sign-off row
type ApprovalStore interface {
	Upsert(ctx context.Context, a *models.WorkActApproval) error
	Get(ctx context.Context, workActID int64) (*models.WorkActApproval, error)
	Delete(ctx context.Context, workActID int64) (bool, error)
}

// ApprovalService implements the one-per-act sign-off operations
type ApprovalService struct {
	store ApprovalStore
	refs  *Refs
	log   *logger.Logger
}

// NewApprovalService creates a new approval service
func NewApprovalService(store ApprovalStore, refs *Refs, log *logger.Logger) *ApprovalService {
	return &ApprovalService{store: store, refs: refs, log: log}
}

// Set writes the approval for the act, replacing any existing one
func (s *ApprovalService) Set(ctx context.Context, workActID int64, in *models.ApprovalInput) (*models.WorkActApproval, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	approval := &models.WorkActApproval{
		WorkActID:        workActID,
		ApproverPosition: in.ApproverPosition,
		ApproverFullName: in.ApproverFullName,
		ApprovalDate:     in.ApprovalDate,
		StampPresent:     in.StampPresent,
	}

	if err := s.store.Upsert(ctx, approval); err != nil {
		return nil, apperr.Internal(err)
	}

	return approval, nil
}

// Get retrieves the approval of the act
func (s *ApprovalService) Get(ctx context.Context, workActID int64) (*models.WorkActApproval, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	approval, err := s.store.Get(ctx, workActID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if approval == nil {
		return nil, apperr.NotFound("Approval not found: workActId=%d", workActID)
	}

	return approval, nil
}

// Delete removes the approval of the act
func (s *ApprovalService) Delete(ctx context.Context, workActID int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.Delete(ctx, workActID)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Approval not found: workActId=%d", workActID)
	}

	return nil
}
