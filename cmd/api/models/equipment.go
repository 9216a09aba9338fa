package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkActDismantledEquipment is a unit of equipment removed during the work.
// Rows are addressed within their parent act; a row under another act is
// not visible through this one.
// Maps to: work_act_dismantled_equipment table
type WorkActDismantledEquipment struct {
	ID                     int64            `db:"dismantled_equipment_id" json:"id"`
	WorkActID              int64            `db:"work_act_id" json:"workActId"`
	Seq                    *int             `db:"seq" json:"seq,omitempty"`
	Name                   string           `db:"name" json:"name"`
	Model                  *string          `db:"model" json:"model,omitempty"`
	SerialNumber           *string          `db:"serial_number" json:"serialNumber,omitempty"`
	ManufactureYear        *int             `db:"manufacture_year" json:"manufactureYear,omitempty"`
	Quantity               *decimal.Decimal `db:"quantity" json:"quantity,omitempty"`
	EquipmentConditionID   *int64           `db:"equipment_condition_id" json:"equipmentConditionId,omitempty"`
	StorageOrTransferPlace *string          `db:"storage_or_transfer_place" json:"storageOrTransferPlace,omitempty"`
}

// DismantledEquipmentInput is the full-replace payload for create and update
type DismantledEquipmentInput struct {
	Seq                    *int             `json:"seq"`
	Name                   string           `json:"name"`
	Model                  *string          `json:"model"`
	SerialNumber           *string          `json:"serialNumber"`
	ManufactureYear        *int             `json:"manufactureYear"`
	Quantity               *decimal.Decimal `json:"quantity"`
	EquipmentConditionID   *int64           `json:"equipmentConditionId"`
	StorageOrTransferPlace *string          `json:"storageOrTransferPlace"`
}

// WorkActInstalledEquipment is a unit of equipment installed during the work.
// Maps to: work_act_installed_equipment table
type WorkActInstalledEquipment struct {
	ID                          int64            `db:"installed_equipment_id" json:"id"`
	WorkActID                   int64            `db:"work_act_id" json:"workActId"`
	Seq                         *int             `db:"seq" json:"seq,omitempty"`
	Name                        string           `db:"name" json:"name"`
	Model                       *string          `db:"model" json:"model,omitempty"`
	SerialNumber                *string          `db:"serial_number" json:"serialNumber,omitempty"`
	ManufactureYear             *int             `db:"manufacture_year" json:"manufactureYear,omitempty"`
	Quantity                    *decimal.Decimal `db:"quantity" json:"quantity,omitempty"`
	InstalledOn                 *time.Time       `db:"installed_on" json:"installedOn,omitempty"`
	WarrantyMonths              *int             `db:"warranty_months" json:"warrantyMonths,omitempty"`
	WarrantyUntil               *time.Time       `db:"warranty_until" json:"warrantyUntil,omitempty"`
	PassportOrCertificateNumber *string          `db:"passport_or_certificate_number" json:"passportOrCertificateNumber,omitempty"`
}

// InstalledEquipmentInput is the full-replace payload for create and update
type InstalledEquipmentInput struct {
	Seq                         *int             `json:"seq"`
	Name                        string           `json:"name"`
	Model                       *string          `json:"model"`
	SerialNumber                *string          `json:"serialNumber"`
	ManufactureYear             *int             `json:"manufactureYear"`
	Quantity                    *decimal.Decimal `json:"quantity"`
	InstalledOn                 *time.Time       `json:"installedOn"`
	WarrantyMonths              *int             `json:"warrantyMonths"`
	WarrantyUntil               *time.Time       `json:"warrantyUntil"`
	PassportOrCertificateNumber *string          `json:"passportOrCertificateNumber"`
}
