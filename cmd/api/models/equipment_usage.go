package models

import "github.com/shopspring/decimal"

// WorkActEquipmentUsage is a machinery-usage line (crane hours, lift hours)
// consumed by the work, listed in seq order.
// Maps to: work_act_equipment_usage table
type WorkActEquipmentUsage struct {
	ID                            int64            `db:"equipment_usage_id" json:"id"`
	WorkActID                     int64            `db:"work_act_id" json:"workActId"`
	Seq                           *int             `db:"seq" json:"seq,omitempty"`
	EquipmentName                 string           `db:"equipment_name" json:"equipmentName"`
	RegistrationOrInventoryNumber *string          `db:"registration_or_inventory_number" json:"registrationOrInventoryNumber,omitempty"`
	UsedHours                     *decimal.Decimal `db:"used_hours" json:"usedHours,omitempty"`
	MachineHourCost               *decimal.Decimal `db:"machine_hour_cost" json:"machineHourCost,omitempty"`
	LineTotal                     *decimal.Decimal `db:"line_total" json:"lineTotal,omitempty"`
}

// AddEquipmentUsageInput carries the add payload
type AddEquipmentUsageInput struct {
	Seq                           *int             `json:"seq"`
	EquipmentName                 string           `json:"equipmentName"`
	RegistrationOrInventoryNumber *string          `json:"registrationOrInventoryNumber"`
	UsedHours                     *decimal.Decimal `json:"usedHours"`
	MachineHourCost               *decimal.Decimal `json:"machineHourCost"`
	LineTotal                     *decimal.Decimal `json:"lineTotal"`
}

// UpdateEquipmentUsageInput carries the update payload; seq and name apply
// only when supplied, the rest overwrites unconditionally
type UpdateEquipmentUsageInput struct {
	Seq                           *int             `json:"seq"`
	EquipmentName                 *string          `json:"equipmentName"`
	RegistrationOrInventoryNumber *string          `json:"registrationOrInventoryNumber"`
	UsedHours                     *decimal.Decimal `json:"usedHours"`
	MachineHourCost               *decimal.Decimal `json:"machineHourCost"`
	LineTotal                     *decimal.Decimal `json:"lineTotal"`
}
