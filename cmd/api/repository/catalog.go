package repository

import (
	"context"
	"fmt"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/db"
)

// CatalogRepository answers existence checks against the reference
// catalogs. It never reads catalog content; the catalogs are owned by
// other services.
type CatalogRepository struct {
	db *db.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *db.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ExistsByID reports whether the catalog row exists
func (r *CatalogRepository) ExistsByID(ctx context.Context, kind models.CatalogKind, id int64) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		kind.Table(), kind.IDColumn(),
	)

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", kind.Table(), err)
	}

	return exists, nil
}
