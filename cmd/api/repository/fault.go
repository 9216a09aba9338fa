package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// FaultRepository handles fault ticks; rows are addressed by the
// (work_act_id, fault_type_id) pair
type FaultRepository struct {
	ChildSet[models.WorkActFault]
}

// NewFaultRepository creates a new fault repository
func NewFaultRepository(database *db.DB) *FaultRepository {
	return &FaultRepository{
		ChildSet: newChildSet[models.WorkActFault](
			database, "work_act_fault", "work_act_fault_id", "work_act_fault_id"),
	}
}

// Insert adds a fault tick; the unique constraint on the pair rejects
// duplicates
func (r *FaultRepository) Insert(ctx context.Context, f *models.WorkActFault) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO work_act_fault (work_act_id, fault_type_id, is_selected, other_text)
		VALUES ($1, $2, $3, $4)
		RETURNING work_act_fault_id
	`, f.WorkActID, f.FaultTypeID, f.IsSelected, f.OtherText).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("failed to insert work act fault: %w", err)
	}

	return nil
}

// GetByNaturalKey returns the fault tick for the pair, or nil when absent
func (r *FaultRepository) GetByNaturalKey(ctx context.Context, workActID, faultTypeID int64) (*models.WorkActFault, error) {
	rows, err := r.db.Query(ctx,
		`SELECT * FROM work_act_fault WHERE work_act_id = $1 AND fault_type_id = $2`,
		workActID, faultTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get work act fault: %w", err)
	}

	fault, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.WorkActFault])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan work act fault: %w", err)
	}

	return fault, nil
}

// Update rewrites the fault tick addressed by the pair; false when absent
func (r *FaultRepository) Update(ctx context.Context, f *models.WorkActFault) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE work_act_fault SET is_selected = $3, other_text = $4
		WHERE work_act_id = $1 AND fault_type_id = $2
	`, f.WorkActID, f.FaultTypeID, f.IsSelected, f.OtherText)
	if err != nil {
		return false, fmt.Errorf("failed to update work act fault: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// DeleteByNaturalKey removes the fault tick for the pair; false when absent
func (r *FaultRepository) DeleteByNaturalKey(ctx context.Context, workActID, faultTypeID int64) (bool, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM work_act_fault WHERE work_act_id = $1 AND fault_type_id = $2`,
		workActID, faultTypeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete work act fault: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
