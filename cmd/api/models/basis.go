package models

import "time"

// WorkActBasis records a legal basis for performing the work.
// (workActId, workBasisTypeId) is unique: a basis type appears at most once
// per act, and update/delete address rows by that pair.
// Maps to: work_act_basis table
type WorkActBasis struct {
	ID              int64      `db:"work_act_basis_id" json:"id"`
	WorkActID       int64      `db:"work_act_id" json:"workActId"`
	WorkBasisTypeID int64      `db:"work_basis_type_id" json:"workBasisTypeId"`
	IsSelected      bool       `db:"is_selected" json:"isSelected"`
	DocumentNumber  *string    `db:"document_number" json:"documentNumber,omitempty"`
	DocumentDate    *time.Time `db:"document_date" json:"documentDate,omitempty"`
}

// AddBasisInput carries the add payload; a nil IsSelected defaults to true
type AddBasisInput struct {
	WorkBasisTypeID int64      `json:"workBasisTypeId"`
	IsSelected      *bool      `json:"isSelected"`
	DocumentNumber  *string    `json:"documentNumber"`
	DocumentDate    *time.Time `json:"documentDate"`
}

// UpdateBasisInput carries the update payload; IsSelected applies only when
// supplied, document fields overwrite unconditionally
type UpdateBasisInput struct {
	IsSelected     *bool      `json:"isSelected"`
	DocumentNumber *string    `json:"documentNumber"`
	DocumentDate   *time.Time `json:"documentDate"`
}
