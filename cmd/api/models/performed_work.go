package models

// WorkActPerformedWork is one numbered line of the performed-work list.
// seq is caller-supplied, positive and unique within the act.
// Maps to: work_act_performed_work table
type WorkActPerformedWork struct {
	ID          int64  `db:"performed_work_id" json:"id"`
	WorkActID   int64  `db:"work_act_id" json:"workActId"`
	Seq         int    `db:"seq" json:"seq"`
	Description string `db:"description" json:"description"`
}

// AddPerformedWorkInput carries the add payload
type AddPerformedWorkInput struct {
	Seq         int    `json:"seq"`
	Description string `json:"description"`
}

// UpdatePerformedWorkInput carries the update payload; both fields apply
// only when supplied
type UpdatePerformedWorkInput struct {
	Seq         *int    `json:"seq"`
	Description *string `json:"description"`
}
