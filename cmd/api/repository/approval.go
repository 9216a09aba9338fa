package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// ApprovalRepository handles the single sign-off row of a work act
type ApprovalRepository struct {
	db *db.DB
}

// NewApprovalRepository creates a new approval repository
func NewApprovalRepository(db *db.DB) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

// Upsert writes the approval, replacing any existing row for the work act
func (r *ApprovalRepository) Upsert(ctx context.Context, a *models.WorkActApproval) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO work_act_approval
			(work_act_id, approver_position, approver_full_name, approval_date, stamp_present)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (work_act_id) DO UPDATE SET
			approver_position  = EXCLUDED.approver_position,
			approver_full_name = EXCLUDED.approver_full_name,
			approval_date      = EXCLUDED.approval_date,
			stamp_present      = EXCLUDED.stamp_present
	`, a.WorkActID, a.ApproverPosition, a.ApproverFullName, a.ApprovalDate, a.StampPresent)
	if err != nil {
		return fmt.Errorf("failed to upsert approval: %w", err)
	}

	return nil
}

// Get retrieves the approval for a work act, or nil when absent
func (r *ApprovalRepository) Get(ctx context.Context, workActID int64) (*models.WorkActApproval, error) {
	rows, err := r.db.Query(ctx,
		`SELECT * FROM work_act_approval WHERE work_act_id = $1`, workActID)
	if err != nil {
		return nil, fmt.Errorf("failed to get approval: %w", err)
	}

	approval, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.WorkActApproval])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan approval: %w", err)
	}

	return approval, nil
}

// Delete removes the approval; false when no row existed
func (r *ApprovalRepository) Delete(ctx context.Context, workActID int64) (bool, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM work_act_approval WHERE work_act_id = $1`, workActID)
	if err != nil {
		return false, fmt.Errorf("failed to delete approval: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
