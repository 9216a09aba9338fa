package repository

import (
	"context"
	"fmt"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// PerformedWorkRepository handles the numbered performed-work list; a
// unique constraint keeps seq distinct within each act
type PerformedWorkRepository struct {
	ChildSet[models.WorkActPerformedWork]
}

// NewPerformedWorkRepository creates a new performed-work repository
func NewPerformedWorkRepository(database *db.DB) *PerformedWorkRepository {
	return &PerformedWorkRepository{
		ChildSet: newChildSet[models.WorkActPerformedWork](
			database, "work_act_performed_work", "performed_work_id",
			"seq"),
	}
}

// Insert adds a performed-work line
func (r *PerformedWorkRepository) Insert(ctx context.Context, w *models.WorkActPerformedWork) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO work_act_performed_work (work_act_id, seq, description)
		VALUES ($1, $2, $3)
		RETURNING performed_work_id
	`, w.WorkActID, w.Seq, w.Description).Scan(&w.ID)
	if err != nil {
		return fmt.Errorf("failed to insert performed work: %w", err)
	}

	return nil
}

// Update rewrites the line; false when absent
func (r *PerformedWorkRepository) Update(ctx context.Context, w *models.WorkActPerformedWork) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE work_act_performed_work SET seq = $2, description = $3
		WHERE performed_work_id = $1
	`, w.ID, w.Seq, w.Description)
	if err != nil {
		return false, fmt.Errorf("failed to update performed work: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
