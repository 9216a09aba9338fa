package repository

import (
	"context"
	"fmt"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// MaterialRepository handles material lines
type MaterialRepository struct {
	ChildSet[models.WorkActMaterial]
}

// NewMaterialRepository creates a new material repository
func NewMaterialRepository(database *db.DB) *MaterialRepository {
	return &MaterialRepository{
		ChildSet: newChildSet[models.WorkActMaterial](
			database, "work_act_material", "material_line_id",
			"seq, material_line_id"),
	}
}

// Insert adds a material line
func (r *MaterialRepository) Insert(ctx context.Context, m *models.WorkActMaterial) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO work_act_material
			(work_act_id, seq, name, model_or_article, uom_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING material_line_id
	`, m.WorkActID, m.Seq, m.Name, m.ModelOrArticle, m.UomID,
		m.Quantity, m.UnitPrice, m.LineTotal).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to insert material line: %w", err)
	}

	return nil
}

// Update rewrites the line; false when absent
func (r *MaterialRepository) Update(ctx context.Context, m *models.WorkActMaterial) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE work_act_material SET
			seq = $2, name = $3, model_or_article = $4, uom_id = $5,
			quantity = $6, unit_price = $7, line_total = $8
		WHERE material_line_id = $1
	`, m.ID, m.Seq, m.Name, m.ModelOrArticle, m.UomID,
		m.Quantity, m.UnitPrice, m.LineTotal)
	if err != nil {
		return false, fmt.Errorf("failed to update material line: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
