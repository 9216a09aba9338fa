package service

import (
	"context"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/apperr"
)

// WorkActFinder checks aggregate-root existence
type WorkActFinder interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// CatalogChecker checks catalog-row existence
type CatalogChecker interface {
	ExistsByID(ctx context.Context, kind models.CatalogKind, id int64) (bool, error)
}

// Refs bundles the referential guards child services run before a write
type Refs struct {
	acts     WorkActFinder
	catalogs CatalogChecker
}

// NewRefs creates the shared guard set
func NewRefs(acts WorkActFinder, catalogs CatalogChecker) *Refs {
	return &Refs{acts: acts, catalogs: catalogs}
}

// RequireWorkAct fails with NotFound when the work act does not exist
func (r *Refs) RequireWorkAct(ctx context.Context, id int64) error {
	ok, err := r.acts.Exists(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("Work act not found: id=%d", id)
	}
	return nil
}

// RequireCatalog fails with NotFound when the catalog row does not exist
func (r *Refs) RequireCatalog(ctx context.Context, kind models.CatalogKind, id int64) error {
	ok, err := r.catalogs.ExistsByID(ctx, kind, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !ok {
		return apperr.NotFound("%s not found: id=%d", kind.Label(), id)
	}
	return nil
}

// RequireCatalogOpt checks an optional reference; nil passes
func (r *Refs) RequireCatalogOpt(ctx context.Context, kind models.CatalogKind, id *int64) error {
	if id == nil {
		return nil
	}
	return r.RequireCatalog(ctx, kind, *id)
}
