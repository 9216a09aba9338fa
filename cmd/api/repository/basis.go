package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// BasisRepository handles work bases; rows are addressed by the
// (work_act_id, work_basis_type_id) pair
type BasisRepository struct {
	ChildSet[models.WorkActBasis]
}

// NewBasisRepository creates a new basis repository
func NewBasisRepository(database *db.DB) *BasisRepository {
	return &BasisRepository{
		ChildSet: newChildSet[models.WorkActBasis](
			database, "work_act_basis", "work_act_basis_id", "work_act_basis_id"),
	}
}

// Insert adds a basis row; the unique constraint on the pair rejects
// duplicates
func (r *BasisRepository) Insert(ctx context.Context, b *models.WorkActBasis) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO work_act_basis
			(work_act_id, work_basis_type_id, is_selected, document_number, document_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING work_act_basis_id
	`, b.WorkActID, b.WorkBasisTypeID, b.IsSelected, b.DocumentNumber, b.DocumentDate).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to insert work act basis: %w", err)
	}

	return nil
}

// GetByNaturalKey returns the basis row for the pair, or nil when absent
func (r *BasisRepository) GetByNaturalKey(ctx context.Context, workActID, workBasisTypeID int64) (*models.WorkActBasis, error) {
	rows, err := r.db.Query(ctx,
		`SELECT * FROM work_act_basis WHERE work_act_id = $1 AND work_basis_type_id = $2`,
		workActID, workBasisTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get work act basis: %w", err)
	}

	basis, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.WorkActBasis])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan work act basis: %w", err)
	}

	return basis, nil
}

// Update rewrites the basis row addressed by the pair; false when absent
func (r *BasisRepository) Update(ctx context.Context, b *models.WorkActBasis) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE work_act_basis SET is_selected = $3, document_number = $4, document_date = $5
		WHERE work_act_id = $1 AND work_basis_type_id = $2
	`, b.WorkActID, b.WorkBasisTypeID, b.IsSelected, b.DocumentNumber, b.DocumentDate)
	if err != nil {
		return false, fmt.Errorf("failed to update work act basis: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// DeleteByNaturalKey removes the basis row for the pair; false when absent
func (r *BasisRepository) DeleteByNaturalKey(ctx context.Context, workActID, workBasisTypeID int64) (bool, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM work_act_basis WHERE work_act_id = $1 AND work_basis_type_id = $2`,
		workActID, workBasisTypeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete work act basis: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
