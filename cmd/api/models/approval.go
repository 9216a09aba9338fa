package models

import "time"

// WorkActApproval is the single sign-off row of a work act.
// The work act id doubles as the primary key, so at most one row exists.
// Maps to: work_act_approval table
type WorkActApproval struct {
	WorkActID        int64      `db:"work_act_id" json:"workActId"`
	ApproverPosition *string    `db:"approver_position" json:"approverPosition,omitempty"`
	ApproverFullName *string    `db:"approver_full_name" json:"approverFullName,omitempty"`
	ApprovalDate     *time.Time `db:"approval_date" json:"approvalDate,omitempty"`
	StampPresent     *bool      `db:"stamp_present" json:"stampPresent,omitempty"`
}

// ApprovalInput carries the upsert payload; every field replaces the stored one
type ApprovalInput struct {
	ApproverPosition *string    `json:"approverPosition"`
	ApproverFullName *string    `json:"approverFullName"`
	ApprovalDate     *time.Time `json:"approvalDate"`
	StampPresent     *bool      `json:"stampPresent"`
}
