package repository

import (
	"context"
	"fmt"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// BrigadeRepository handles brigade membership rows
type BrigadeRepository struct {
	ChildSet[models.WorkActBrigadeMember]
}

// NewBrigadeRepository creates a new brigade repository
func NewBrigadeRepository(database *db.DB) *BrigadeRepository {
	return &BrigadeRepository{
		ChildSet: newChildSet[models.WorkActBrigadeMember](
			database, "work_act_brigade_member", "work_act_brigade_member_id",
			"seq, work_act_brigade_member_id"),
	}
}

// Insert adds a brigade member
func (r *BrigadeRepository) Insert(ctx context.Context, m *models.WorkActBrigadeMember) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO work_act_brigade_member (work_act_id, employee_id, brigade_role_id, seq)
		VALUES ($1, $2, $3, $4)
		RETURNING work_act_brigade_member_id
	`, m.WorkActID, m.EmployeeID, m.BrigadeRoleID, m.Seq).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to insert brigade member: %w", err)
	}

	return nil
}

// Update rewrites the member's role and position; false when absent
func (r *BrigadeRepository) Update(ctx context.Context, m *models.WorkActBrigadeMember) (bool, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE work_act_brigade_member SET brigade_role_id = $2, seq = $3
		WHERE work_act_brigade_member_id = $1
	`, m.ID, m.BrigadeRoleID, m.Seq)
	if err != nil {
		return false, fmt.Errorf("failed to update brigade member: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
