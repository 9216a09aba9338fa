package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkAct is the aggregate root: a service-completion record for a
// lighting object.
// Maps to: work_act table
type WorkAct struct {
	ID int64 `db:"work_act_id" json:"id"`

	ActNumber     *string    `db:"act_number" json:"actNumber,omitempty"`
	ActCompiledOn *time.Time `db:"act_compiled_on" json:"actCompiledOn,omitempty"`
	ActPlace      *string    `db:"act_place" json:"actPlace,omitempty"`

	// Executor organization is the only mandatory reference
	ExecutorOrgID    int64   `db:"executor_org_id" json:"executorOrgId"`
	StructuralUnit   *string `db:"structural_unit" json:"structuralUnit,omitempty"`
	LightingObjectID *int64  `db:"lighting_object_id" json:"lightingObjectId,omitempty"`

	WorkStartedAt  *time.Time `db:"work_started_at" json:"workStartedAt,omitempty"`
	WorkFinishedAt *time.Time `db:"work_finished_at" json:"workFinishedAt,omitempty"`

	TotalDurationMinutes *int    `db:"total_duration_minutes" json:"totalDurationMinutes,omitempty"`
	ActualWorkMinutes    *int    `db:"actual_work_minutes" json:"actualWorkMinutes,omitempty"`
	DowntimeMinutes      *int    `db:"downtime_minutes" json:"downtimeMinutes,omitempty"`
	DowntimeReason       *string `db:"downtime_reason" json:"downtimeReason,omitempty"`

	FaultDetails   *string `db:"fault_details" json:"faultDetails,omitempty"`
	FaultCause     *string `db:"fault_cause" json:"faultCause,omitempty"`
	QualityRemarks *string `db:"quality_remarks" json:"qualityRemarks,omitempty"`

	// Totals are caller-computed and stored as plain fields; this service
	// never recomputes them from the line items
	OtherExpensesAmount  *decimal.Decimal `db:"other_expenses_amount" json:"otherExpensesAmount,omitempty"`
	MaterialsTotalAmount *decimal.Decimal `db:"materials_total_amount" json:"materialsTotalAmount,omitempty"`
	WorksTotalAmount     *decimal.Decimal `db:"works_total_amount" json:"worksTotalAmount,omitempty"`
	TransportTotalAmount *decimal.Decimal `db:"transport_total_amount" json:"transportTotalAmount,omitempty"`
	GrandTotalAmount     *decimal.Decimal `db:"grand_total_amount" json:"grandTotalAmount,omitempty"`
	GrandTotalInWords    *string          `db:"grand_total_in_words" json:"grandTotalInWords,omitempty"`

	WarrantyWorkMonths      *int       `db:"warranty_work_months" json:"warrantyWorkMonths,omitempty"`
	WarrantyWorkStart       *time.Time `db:"warranty_work_start" json:"warrantyWorkStart,omitempty"`
	WarrantyWorkEnd         *time.Time `db:"warranty_work_end" json:"warrantyWorkEnd,omitempty"`
	WarrantyEquipmentMonths *int       `db:"warranty_equipment_months" json:"warrantyEquipmentMonths,omitempty"`
	WarrantyTerms           *string    `db:"warranty_terms" json:"warrantyTerms,omitempty"`

	CopiesCount            *int  `db:"copies_count" json:"copiesCount,omitempty"`
	AcceptedWithoutRemarks *bool `db:"accepted_without_remarks" json:"acceptedWithoutRemarks,omitempty"`
}

// WorkActInput carries the mutable fields for create and full-replace update
type WorkActInput struct {
	ActNumber     *string    `json:"actNumber"`
	ActCompiledOn *time.Time `json:"actCompiledOn"`
	ActPlace      *string    `json:"actPlace"`

	ExecutorOrgID    int64   `json:"executorOrgId"`
	StructuralUnit   *string `json:"structuralUnit"`
	LightingObjectID *int64  `json:"lightingObjectId"`

	WorkStartedAt  *time.Time `json:"workStartedAt"`
	WorkFinishedAt *time.Time `json:"workFinishedAt"`

	TotalDurationMinutes *int    `json:"totalDurationMinutes"`
	ActualWorkMinutes    *int    `json:"actualWorkMinutes"`
	DowntimeMinutes      *int    `json:"downtimeMinutes"`
	DowntimeReason       *string `json:"downtimeReason"`

	FaultDetails   *string `json:"faultDetails"`
	FaultCause     *string `json:"faultCause"`
	QualityRemarks *string `json:"qualityRemarks"`

	OtherExpensesAmount  *decimal.Decimal `json:"otherExpensesAmount"`
	MaterialsTotalAmount *decimal.Decimal `json:"materialsTotalAmount"`
	WorksTotalAmount     *decimal.Decimal `json:"worksTotalAmount"`
	TransportTotalAmount *decimal.Decimal `json:"transportTotalAmount"`
	GrandTotalAmount     *decimal.Decimal `json:"grandTotalAmount"`
	GrandTotalInWords    *string          `json:"grandTotalInWords"`

	WarrantyWorkMonths      *int       `json:"warrantyWorkMonths"`
	WarrantyWorkStart       *time.Time `json:"warrantyWorkStart"`
	WarrantyWorkEnd         *time.Time `json:"warrantyWorkEnd"`
	WarrantyEquipmentMonths *int       `json:"warrantyEquipmentMonths"`
	WarrantyTerms           *string    `json:"warrantyTerms"`

	CopiesCount            *int  `json:"copiesCount"`
	AcceptedWithoutRemarks *bool `json:"acceptedWithoutRemarks"`
}

// WorkActFilter narrows the list operation.
// Precedence: ActNumber substring first, then org+object, then either one.
type WorkActFilter struct {
	ExecutorOrgID    *int64
	LightingObjectID *int64
	ActNumber        string
}
