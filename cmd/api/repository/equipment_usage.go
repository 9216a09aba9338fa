package repository

import (
	"context"
	"fmt"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// EquipmentUsageRepository handles machinery-usage lines
type EquipmentUsageRepository struct {
	ChildSet[models.WorkActEquipmentUsage]
}

// NewEquipmentUsageRepository creates a new equipment-usage repository
func NewEquipmentUsageRepository(database *db.DB) *EquipmentUsageRepository {
	return &EquipmentUsageRepository{
		ChildSet: newChildSet[models.WorkActEquipmentUsage](
			database, "work_act_equipment_usage", "equipment_usage_id",
			"seq, equipment_usage_id"),
	}
}

// Insert adds a machinery-usage line
func (r *EquipmentUsageRepository) Insert(ctx context.Context, u *models.WorkActEquipmentUsage) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO work_act_equipment_usage
			(work_act_id, seq, equipment_name, registration_or_inventory_number,
			 used_hours, machine_hour_cost, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING equipment_usage_id
	`, u.WorkActID, u.Seq, u.EquipmentName, u.RegistrationOrInventoryNumber,
		u.UsedHours, u.MachineHourCost, u.LineTotal).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("failed to insert equipment usage: %w", err)
	}

	return nil
}

// Update rewrites the line; false when absent
func (r *EquipmentUsageRepository) Update(ctx context.Context, u *models.WorkActEquipmentUsage) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE work_act_equipment_usage SET
			seq = $2, equipment_name = $3, registration_or_inventory_number = $4,
			used_hours = $5, machine_hour_cost = $6, line_total = $7
		WHERE equipment_usage_id = $1
	`, u.ID, u.Seq, u.EquipmentName, u.RegistrationOrInventoryNumber,
		u.UsedHours, u.MachineHourCost, u.LineTotal)
	if err != nil {
		return false, fmt.Errorf("failed to update equipment usage: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
