package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// WorkActRepository handles database operations for the aggregate root
type WorkActRepository struct {
	db *db.DB
}

// NewWorkActRepository creates a new work act repository
func NewWorkActRepository(db *db.DB) *WorkActRepository {
	return &WorkActRepository{db: db}
}

const workActColumns = `
	act_number, act_compiled_on, act_place,
	executor_org_id, structural_unit, lighting_object_id,
	work_started_at, work_finished_at,
	total_duration_minutes, actual_work_minutes, downtime_minutes, downtime_reason,
	fault_details, fault_cause, quality_remarks,
	other_expenses_amount, materials_total_amount, works_total_amount,
	transport_total_amount, grand_total_amount, grand_total_in_words,
	warranty_work_months, warranty_work_start, warranty_work_end,
	warranty_equipment_months, warranty_terms,
	copies_count, accepted_without_remarks`

func workActArgs(a *models.WorkAct) []any {
	return []any{
		a.ActNumber, a.ActCompiledOn, a.ActPlace,
		a.ExecutorOrgID, a.StructuralUnit, a.LightingObjectID,
		a.WorkStartedAt, a.WorkFinishedAt,
		a.TotalDurationMinutes, a.ActualWorkMinutes, a.DowntimeMinutes, a.DowntimeReason,
		a.FaultDetails, a.FaultCause, a.QualityRemarks,
		a.OtherExpensesAmount, a.MaterialsTotalAmount, a.WorksTotalAmount,
		a.TransportTotalAmount, a.GrandTotalAmount, a.GrandTotalInWords,
		a.WarrantyWorkMonths, a.WarrantyWorkStart, a.WarrantyWorkEnd,
		a.WarrantyEquipmentMonths, a.WarrantyTerms,
		a.CopiesCount, a.AcceptedWithoutRemarks,
	}
}

// Create inserts a new work act and fills in the generated id
func (r *WorkActRepository) Create(ctx context.Context, act *models.WorkAct) error {
	query := fmt.Sprintf(`
		INSERT INTO work_act (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		RETURNING work_act_id
	`, workActColumns)

	if err := r.db.QueryRow(ctx, query, workActArgs(act)...).Scan(&act.ID); err != nil {
		return fmt.Errorf("failed to create work act: %w", err)
	}

	return nil
}

// GetByID retrieves a work act, or nil when absent
func (r *WorkActRepository) GetByID(ctx context.Context, id int64) (*models.WorkAct, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM work_act WHERE work_act_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get work act: %w", err)
	}

	act, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.WorkAct])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan work act: %w", err)
	}

	return act, nil
}

// Exists reports whether the work act exists
func (r *WorkActRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM work_act WHERE work_act_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check work act existence: %w", err)
	}

	return exists, nil
}

// List retrieves a page of work acts plus the total match count.
// Filter precedence: act-number substring wins over the id filters; both id
// filters combine with AND when both are present.
func (r *WorkActRepository) List(ctx context.Context, filter models.WorkActFilter, page models.PageRequest) ([]*models.WorkAct, int64, error) {
	where := ""
	args := []any{}

	switch {
	case filter.ActNumber != "":
		where = `WHERE act_number ILIKE '%' || $1 || '%'`
		args = append(args, filter.ActNumber)
	case filter.ExecutorOrgID != nil && filter.LightingObjectID != nil:
		where = `WHERE executor_org_id = $1 AND lighting_object_id = $2`
		args = append(args, *filter.ExecutorOrgID, *filter.LightingObjectID)
	case filter.ExecutorOrgID != nil:
		where = `WHERE executor_org_id = $1`
		args = append(args, *filter.ExecutorOrgID)
	case filter.LightingObjectID != nil:
		where = `WHERE lighting_object_id = $1`
		args = append(args, *filter.LightingObjectID)
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT count(*) FROM work_act %s`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work acts: %w", err)
	}

	// Sort column is whitelisted by the caller; never raw client input
	sortCol := page.Sort
	if sortCol == "" {
		sortCol = "work_act_id"
	}
	direction := "ASC"
	if page.Desc {
		direction = "DESC"
	}

	query := fmt.Sprintf(
		`SELECT * FROM work_act %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		where, sortCol, direction, len(args)+1, len(args)+2,
	)
	args = append(args, page.Size, page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list work acts: %w", err)
	}

	acts, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[models.WorkAct])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan work act rows: %w", err)
	}

	return acts, total, nil
}

// Update replaces all mutable fields of an existing work act; false when
// the row does not exist
func (r *WorkActRepository) Update(ctx context.Context, act *models.WorkAct) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE work_act SET (%s) =
		($2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		 $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
		WHERE work_act_id = $1
	`, workActColumns)

	args := append([]any{act.ID}, workActArgs(act)...)

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update work act: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Delete removes a work act; false when the row does not exist.
// Children are not touched unless the cascade schema variant is installed.
func (r *WorkActRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM work_act WHERE work_act_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete work act: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
