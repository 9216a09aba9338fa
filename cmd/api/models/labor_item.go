package models

import "github.com/shopspring/decimal"

// WorkActLaborItem is one labor line (a work type with volume, hours and
// cost), listed in seq order.
// Maps to: work_act_labor_item table
type WorkActLaborItem struct {
	ID           int64            `db:"labor_item_id" json:"id"`
	WorkActID    int64            `db:"work_act_id" json:"workActId"`
	Seq          *int             `db:"seq" json:"seq,omitempty"`
	WorkTypeName string           `db:"work_type_name" json:"workTypeName"`
	UomID        *int64           `db:"uom_id" json:"uomId,omitempty"`
	WorkVolume   *decimal.Decimal `db:"work_volume" json:"workVolume,omitempty"`
	NormHours    *decimal.Decimal `db:"norm_hours" json:"normHours,omitempty"`
	ActualHours  *decimal.Decimal `db:"actual_hours" json:"actualHours,omitempty"`
	RateAmount   *decimal.Decimal `db:"rate_amount" json:"rateAmount,omitempty"`
	CostAmount   *decimal.Decimal `db:"cost_amount" json:"costAmount,omitempty"`
}

// AddLaborItemInput carries the add payload
type AddLaborItemInput struct {
	Seq          *int             `json:"seq"`
	WorkTypeName string           `json:"workTypeName"`
	UomID        *int64           `json:"uomId"`
	WorkVolume   *decimal.Decimal `json:"workVolume"`
	NormHours    *decimal.Decimal `json:"normHours"`
	ActualHours  *decimal.Decimal `json:"actualHours"`
	RateAmount   *decimal.Decimal `json:"rateAmount"`
	CostAmount   *decimal.Decimal `json:"costAmount"`
}

// UpdateLaborItemInput carries the update payload; seq and name apply only
// when supplied, the rest overwrites unconditionally
type UpdateLaborItemInput struct {
	Seq          *int             `json:"seq"`
	WorkTypeName *string          `json:"workTypeName"`
	UomID        *int64           `json:"uomId"`
	WorkVolume   *decimal.Decimal `json:"workVolume"`
	NormHours    *decimal.Decimal `json:"normHours"`
	ActualHours  *decimal.Decimal `json:"actualHours"`
	RateAmount   *decimal.Decimal `json:"rateAmount"`
	CostAmount   *decimal.Decimal `json:"costAmount"`
}
