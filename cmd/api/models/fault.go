package models

// WorkActFault ticks a fault type found during the work.
// (workActId, faultTypeId) is unique; update/delete address rows by that
// pair rather than by surrogate id.
// Maps to: work_act_fault table
type WorkActFault struct {
	ID          int64   `db:"work_act_fault_id" json:"id"`
	WorkActID   int64   `db:"work_act_id" json:"workActId"`
	FaultTypeID int64   `db:"fault_type_id" json:"faultTypeId"`
	IsSelected  bool    `db:"is_selected" json:"isSelected"`
	OtherText   *string `db:"other_text" json:"otherText,omitempty"`
}

// AddFaultInput carries the add payload; a nil IsSelected defaults to true
type AddFaultInput struct {
	FaultTypeID int64   `json:"faultTypeId"`
	IsSelected  *bool   `json:"isSelected"`
	OtherText   *string `json:"otherText"`
}

// UpdateFaultInput carries the update payload; IsSelected applies only when
// supplied, OtherText overwrites unconditionally
type UpdateFaultInput struct {
	IsSelected *bool   `json:"isSelected"`
	OtherText  *string `json:"otherText"`
}
