package models

// WorkActBrigadeMember records one employee on the brigade that performed
// the work, listed in seq order.
// Maps to: work_act_brigade_member table
type WorkActBrigadeMember struct {
	ID            int64 `db:"work_act_brigade_member_id" json:"id"`
	WorkActID     int64 `db:"work_act_id" json:"workActId"`
	EmployeeID    int64 `db:"employee_id" json:"employeeId"`
	BrigadeRoleID int64 `db:"brigade_role_id" json:"brigadeRoleId"`
	Seq           *int  `db:"seq" json:"seq,omitempty"`
}

// AddBrigadeMemberInput carries the add payload
type AddBrigadeMemberInput struct {
	EmployeeID    int64 `json:"employeeId"`
	BrigadeRoleID int64 `json:"brigadeRoleId"`
	Seq           *int  `json:"seq"`
}

// UpdateBrigadeMemberInput carries the update payload; both fields apply
// only when supplied
type UpdateBrigadeMemberInput struct {
	BrigadeRoleID *int64 `json:"brigadeRoleId"`
	Seq           *int   `json:"seq"`
}
