package repository

import (
	"context"
	"fmt"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// DismantledEquipmentRepository handles equipment removed during the work
type DismantledEquipmentRepository struct {
	ChildSet[models.WorkActDismantledEquipment]
}

// NewDismantledEquipmentRepository creates a new dismantled-equipment repository
func NewDismantledEquipmentRepository(database *db.DB) *DismantledEquipmentRepository {
	return &DismantledEquipmentRepository{
		ChildSet: newChildSet[models.WorkActDismantledEquipment](
			database, "work_act_dismantled_equipment", "dismantled_equipment_id",
			"seq, dismantled_equipment_id"),
	}
}

// Insert adds a dismantled-equipment row
func (r *DismantledEquipmentRepository) Insert(ctx context.Context, e *models.WorkActDismantledEquipment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO work_act_dismantled_equipment
			(work_act_id, seq, name, model, serial_number, manufacture_year,
			 quantity, equipment_condition_id, storage_or_transfer_place)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING dismantled_equipment_id
	`, e.WorkActID, e.Seq, e.Name, e.Model, e.SerialNumber, e.ManufactureYear,
		e.Quantity, e.EquipmentConditionID, e.StorageOrTransferPlace).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to insert dismantled equipment: %w", err)
	}

	return nil
}

// Update replaces every mutable field of the row; false when absent
func (r *DismantledEquipmentRepository) Update(ctx context.Context, e *models.WorkActDismantledEquipment) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE work_act_dismantled_equipment SET
			seq = $2, name = $3, model = $4, serial_number = $5,
			manufacture_year = $6, quantity = $7, equipment_condition_id = $8,
			storage_or_transfer_place = $9
		WHERE dismantled_equipment_id = $1
	`, e.ID, e.Seq, e.Name, e.Model, e.SerialNumber, e.ManufactureYear,
		e.Quantity, e.EquipmentConditionID, e.StorageOrTransferPlace)
	if err != nil {
		return false, fmt.Errorf("failed to update dismantled equipment: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// InstalledEquipmentRepository handles equipment installed during the work
type InstalledEquipmentRepository struct {
	ChildSet[models.WorkActInstalledEquipment]
}

// NewInstalledEquipmentRepository creates a new installed-equipment repository
func NewInstalledEquipmentRepository(database *db.DB) *InstalledEquipmentRepository {
	return &InstalledEquipmentRepository{
		ChildSet: newChildSet[models.WorkActInstalledEquipment](
			database, "work_act_installed_equipment", "installed_equipment_id",
			"seq, installed_equipment_id"),
	}
}

// Insert adds an installed-equipment row
func (r *InstalledEquipmentRepository) Insert(ctx context.Context, e *models.WorkActInstalledEquipment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO work_act_installed_equipment
			(work_act_id, seq, name, model, serial_number, manufacture_year, quantity,
			 installed_on, warranty_months, warranty_until, passport_or_certificate_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING installed_equipment_id
	`, e.WorkActID, e.Seq, e.Name, e.Model, e.SerialNumber, e.ManufactureYear, e.Quantity,
		e.InstalledOn, e.WarrantyMonths, e.WarrantyUntil, e.PassportOrCertificateNumber).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to insert installed equipment: %w", err)
	}

	return nil
}

// Update replaces every mutable field of the row; false when absent
func (r *InstalledEquipmentRepository) Update(ctx context.Context, e *models.WorkActInstalledEquipment) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE work_act_installed_equipment SET
			seq = $2, name = $3, model = $4, serial_number = $5,
			manufacture_year = $6, quantity = $7, installed_on = $8,
			warranty_months = $9, warranty_until = $10,
			passport_or_certificate_number = $11
		WHERE installed_equipment_id = $1
	`, e.ID, e.Seq, e.Name, e.Model, e.SerialNumber, e.ManufactureYear, e.Quantity,
		e.InstalledOn, e.WarrantyMonths, e.WarrantyUntil, e.PassportOrCertificateNumber)
	if err != nil {
		return false, fmt.Errorf("failed to update installed equipment: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
