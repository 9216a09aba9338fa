package repository

import (
	"context"
	"fmt"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// LaborItemRepository handles labor lines
type LaborItemRepository struct {
	ChildSet[models.WorkActLaborItem]
}

// NewLaborItemRepository creates a new labor-item repository
func NewLaborItemRepository(database *db.DB) *LaborItemRepository {
	return &LaborItemRepository{
		ChildSet: newChildSet[models.WorkActLaborItem](
			database, "work_act_labor_item", "labor_item_id",
			"seq, labor_item_id"),
	}
}

// Insert adds a labor line
func (r *LaborItemRepository) Insert(ctx context.Context, l *models.WorkActLaborItem) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO work_act_labor_item
			(work_act_id, seq, work_type_name, uom_id, work_volume,
			 norm_hours, actual_hours, rate_amount, cost_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING labor_item_id
	`, l.WorkActID, l.Seq, l.WorkTypeName, l.UomID, l.WorkVolume,
		l.NormHours, l.ActualHours, l.RateAmount, l.CostAmount).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("failed to insert labor item: %w", err)
	}

	return nil
}

// Update rewrites the line; false when absent
func (r *LaborItemRepository) Update(ctx context.Context, l *models.WorkActLaborItem) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE work_act_labor_item SET
			seq = $2, work_type_name = $3, uom_id = $4, work_volume = $5,
			norm_hours = $6, actual_hours = $7, rate_amount = $8, cost_amount = $9
		WHERE labor_item_id = $1
	`, l.ID, l.Seq, l.WorkTypeName, l.UomID, l.WorkVolume,
		l.NormHours, l.ActualHours, l.RateAmount, l.CostAmount)
	if err != nil {
		return false, fmt.Errorf("failed to update labor item: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
