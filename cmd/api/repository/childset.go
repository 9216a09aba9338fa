package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eternallight/backend/common/db"
)

// ChildSet implements the operations every child collection shares: ordered
// listing under a parent, lookup by id, parent-scoped lookup and delete.
// Per-kind repositories embed it and contribute only their INSERT/UPDATE
// statements; table, id column and order clause are fixed at construction.
type ChildSet[T any] struct {
	db      *db.DB
	table   string
	idCol   string
	orderBy string
}

func newChildSet[T any](database *db.DB, table, idCol, orderBy string) ChildSet[T] {
	return ChildSet[T]{
		db:      database,
		table:   table,
		idCol:   idCol,
		orderBy: orderBy,
	}
}

// ListByWorkAct returns all children of the work act in the kind's order
func (s *ChildSet[T]) ListByWorkAct(ctx context.Context, workActID int64) ([]*T, error) {
	query := fmt.Sprintf(
		`SELECT * FROM %s WHERE work_act_id = $1 ORDER BY %s`,
		s.table, s.orderBy,
	)

	rows, err := s.db.Query(ctx, query, workActID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s rows: %w", s.table, err)
	}

	return items, nil
}

// GetByID returns the child row, or nil when absent
func (s *ChildSet[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, s.table, s.idCol)

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.table, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s row: %w", s.table, err)
	}

	return item, nil
}

// GetScoped returns the child row only when it belongs to the work act.
// A row owned by a different parent is treated as absent.
func (s *ChildSet[T]) GetScoped(ctx context.Context, workActID, id int64) (*T, error) {
	query := fmt.Sprintf(
		`SELECT * FROM %s WHERE %s = $1 AND work_act_id = $2`,
		s.table, s.idCol,
	)

	rows, err := s.db.Query(ctx, query, id, workActID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", s.table, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s row: %w", s.table, err)
	}

	return item, nil
}

// DeleteByID removes the child row; false when no row matched
func (s *ChildSet[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.table, s.idCol)

	result, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", s.table, err)
	}

	return result.RowsAffected() > 0, nil
}

// DeleteScoped removes the child row only when it belongs to the work act
func (s *ChildSet[T]) DeleteScoped(ctx context.Context, workActID, id int64) (bool, error) {
	query := fmt.Sprintf(
		`DELETE FROM %s WHERE %s = $1 AND work_act_id = $2`,
		s.table, s.idCol,
	)

	result, err := s.db.Exec(ctx, query, id, workActID)
	if err != nil {
		return false, fmt.Errorf("failed to delete from %s: %w", s.table, err)
	}

	return result.RowsAffected() > 0, nil
}
