package models

import "github.com/shopspring/decimal"

// WorkActMaterial is one material line consumed by the work, listed in
// seq order.
// Maps to: work_act_material table
type WorkActMaterial struct {
	ID             int64            `db:"material_line_id" json:"id"`
	WorkActID      int64            `db:"work_act_id" json:"workActId"`
	Seq            *int             `db:"seq" json:"seq,omitempty"`
	Name           string           `db:"name" json:"name"`
	ModelOrArticle *string          `db:"model_or_article" json:"modelOrArticle,omitempty"`
	UomID          *int64           `db:"uom_id" json:"uomId,omitempty"`
	Quantity       *decimal.Decimal `db:"quantity" json:"quantity,omitempty"`
	UnitPrice      *decimal.Decimal `db:"unit_price" json:"unitPrice,omitempty"`
	LineTotal      *decimal.Decimal `db:"line_total" json:"lineTotal,omitempty"`
}

// AddMaterialInput carries the add payload
type AddMaterialInput struct {
	Seq            *int             `json:"seq"`
	Name           string           `json:"name"`
	ModelOrArticle *string          `json:"modelOrArticle"`
	UomID          *int64           `json:"uomId"`
	Quantity       *decimal.Decimal `json:"quantity"`
	UnitPrice      *decimal.Decimal `json:"unitPrice"`
	LineTotal      *decimal.Decimal `json:"lineTotal"`
}

// UpdateMaterialInput carries the update payload; seq and name apply only
// when supplied, the rest overwrites unconditionally
type UpdateMaterialInput struct {
	Seq            *int             `json:"seq"`
	Name           *string          `json:"name"`
	ModelOrArticle *string          `json:"modelOrArticle"`
	UomID          *int64           `json:"uomId"`
	Quantity       *decimal.Decimal `json:"quantity"`
	UnitPrice      *decimal.Decimal `json:"unitPrice"`
	LineTotal      *decimal.Decimal `json:"lineTotal"`
}
