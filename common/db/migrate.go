package db

import (
	"context"
	"fmt"
	"time"
)

// Migrate creates the schema if it does not exist yet. Intended to run
// through the bootstrap DB init hook on startup.
//
// cascade controls whether child tables carry an ON DELETE CASCADE foreign
// key to work_act. Without it a deleted work act soft-orphans its children
// and cleanup is deferred to an external job.
func Migrate(ctx context.Context, db *DB, cascade bool) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	workActRef := ""
	if cascade {
		workActRef = " REFERENCES work_act(work_act_id) ON DELETE CASCADE"
	}

	statements := []string{
		// Reference catalogs. Managed elsewhere; this service only checks
		// existence and seeds nothing.
		`CREATE TABLE IF NOT EXISTS organization (
			org_id bigserial PRIMARY KEY,
			name text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS lighting_object (
			lighting_object_id bigserial PRIMARY KEY,
			name text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS employee (
			employee_id bigserial PRIMARY KEY,
			full_name text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS brigade_role (
			brigade_role_id bigserial PRIMARY KEY,
			name text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS fault_type (
			fault_type_id bigserial PRIMARY KEY,
			name text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS work_basis_type (
			work_basis_type_id bigserial PRIMARY KEY,
			name text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS unit_of_measure (
			uom_id bigserial PRIMARY KEY,
			name text NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS equipment_condition (
			equipment_condition_id bigserial PRIMARY KEY,
			name text NOT NULL
		)`,

		// Aggregate root
		`CREATE TABLE IF NOT EXISTS work_act (
			work_act_id bigserial PRIMARY KEY,
			act_number text,
			act_compiled_on date,
			act_place text,
			executor_org_id bigint NOT NULL REFERENCES organization(org_id),
			structural_unit text,
			lighting_object_id bigint REFERENCES lighting_object(lighting_object_id),
			work_started_at timestamptz,
			work_finished_at timestamptz,
			total_duration_minutes int,
			actual_work_minutes int,
			downtime_minutes int,
			downtime_reason text,
			fault_details text,
			fault_cause text,
			quality_remarks text,
			other_expenses_amount numeric(14,2),
			materials_total_amount numeric(14,2),
			works_total_amount numeric(14,2),
			transport_total_amount numeric(14,2),
			grand_total_amount numeric(14,2),
			grand_total_in_words text,
			warranty_work_months int,
			warranty_work_start date,
			warranty_work_end date,
			warranty_equipment_months int,
			warranty_terms text,
			copies_count int,
			accepted_without_remarks boolean
		)`,

		// Child collections
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_approval (
			work_act_id bigint PRIMARY KEY%s,
			approver_position text,
			approver_full_name text,
			approval_date date,
			stamp_present boolean
		)`, workActRef),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_basis (
			work_act_basis_id bigserial PRIMARY KEY,
			work_act_id bigint NOT NULL%s,
			work_basis_type_id bigint NOT NULL REFERENCES work_basis_type(work_basis_type_id),
			is_selected boolean NOT NULL DEFAULT true,
			document_number text,
			document_date date,
			CONSTRAINT uk_work_act_basis_act_type UNIQUE (work_act_id, work_basis_type_id)
		)`, workActRef),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_brigade_member (
			work_act_brigade_member_id bigserial PRIMARY KEY,
			work_act_id bigint NOT NULL%s,
			employee_id bigint NOT NULL REFERENCES employee(employee_id),
			brigade_role_id bigint NOT NULL REFERENCES brigade_role(brigade_role_id),
			seq int
		)`, workActRef),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_dismantled_equipment (
			dismantled_equipment_id bigserial PRIMARY KEY,
			work_act_id bigint NOT NULL%s,
			seq int,
			name text NOT NULL,
			model text,
			serial_number text,
			manufacture_year int,
			quantity numeric(14,3),
			equipment_condition_id bigint REFERENCES equipment_condition(equipment_condition_id),
			storage_or_transfer_place text
		)`, workActRef),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_installed_equipment (
			installed_equipment_id bigserial PRIMARY KEY,
			work_act_id bigint NOT NULL%s,
			seq int,
			name text NOT NULL,
			model text,
			serial_number text,
			manufacture_year int,
			quantity numeric(14,3),
			installed_on date,
			warranty_months int,
			warranty_until date,
			passport_or_certificate_number text
		)`, workActRef),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_equipment_usage (
			equipment_usage_id bigserial PRIMARY KEY,
			work_act_id bigint NOT NULL%s,
			seq int,
			equipment_name text NOT NULL,
			registration_or_inventory_number text,
			used_hours numeric(10,2),
			machine_hour_cost numeric(14,2),
			line_total numeric(14,2)
		)`, workActRef),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_fault (
			work_act_fault_id bigserial PRIMARY KEY,
			work_act_id bigint NOT NULL%s,
			fault_type_id bigint NOT NULL REFERENCES fault_type(fault_type_id),
			is_selected boolean NOT NULL DEFAULT true,
			other_text text,
			CONSTRAINT uk_work_act_fault_act_type UNIQUE (work_act_id, fault_type_id)
		)`, workActRef),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_labor_item (
			labor_item_id bigserial PRIMARY KEY,
			work_act_id bigint NOT NULL%s,
			seq int,
			work_type_name text NOT NULL,
			uom_id bigint REFERENCES unit_of_measure(uom_id),
			work_volume numeric(14,3),
			norm_hours numeric(10,2),
			actual_hours numeric(10,2),
			rate_amount numeric(14,2),
			cost_amount numeric(14,2)
		)`, workActRef),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_material (
			material_line_id bigserial PRIMARY KEY,
			work_act_id bigint NOT NULL%s,
			seq int,
			name text NOT NULL,
			model_or_article text,
			uom_id bigint REFERENCES unit_of_measure(uom_id),
			quantity numeric(14,3),
			unit_price numeric(14,2),
			line_total numeric(14,2)
		)`, workActRef),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS work_act_performed_work (
			performed_work_id bigserial PRIMARY KEY,
			work_act_id bigint NOT NULL%s,
			seq int NOT NULL,
			description text NOT NULL,
			CONSTRAINT uk_work_act_performed_work_act_seq UNIQUE (work_act_id, seq)
		)`, workActRef),

		`CREATE INDEX IF NOT EXISTS ix_work_act_executor_org ON work_act (executor_org_id)`,
		`CREATE INDEX IF NOT EXISTS ix_work_act_lighting_object ON work_act (lighting_object_id)`,
		`CREATE INDEX IF NOT EXISTS ix_work_act_basis_act ON work_act_basis (work_act_id)`,
		`CREATE INDEX IF NOT EXISTS ix_work_act_brigade_member_act ON work_act_brigade_member (work_act_id)`,
		`CREATE INDEX IF NOT EXISTS ix_work_act_dismantled_equipment_act ON work_act_dismantled_equipment (work_act_id)`,
		`CREATE INDEX IF NOT EXISTS ix_work_act_installed_equipment_act ON work_act_installed_equipment (work_act_id)`,
		`CREATE INDEX IF NOT EXISTS ix_work_act_equipment_usage_act ON work_act_equipment_usage (work_act_id)`,
		`CREATE INDEX IF NOT EXISTS ix_work_act_labor_item_act ON work_act_labor_item (work_act_id)`,
		`CREATE INDEX IF NOT EXISTS ix_work_act_material_act ON work_act_material (work_act_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}

	db.log.Info("schema migration complete", "cascade_delete", cascade)
	return nil
}
