package service

import (
	"context"
	"fmt"
	"time"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/cache"
	"github.com/eternallight/backend/common/logger"
)

// CatalogStore answers existence queries against the catalog tables
type CatalogStore interface {
	ExistsByID(ctx context.Context, kind models.CatalogKind, id int64) (bool, error)
}

// CatalogService answers catalog existence checks with a positive-only
// cache in front of the database. Absence is never cached, so a catalog
// row created elsewhere becomes visible immediately.
type CatalogService struct {
	store CatalogStore
	cache cache.Cache
	ttl   time.Duration
	log   *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store CatalogStore, c cache.Cache, ttl time.Duration, log *logger.Logger) *CatalogService {
	return &CatalogService{store: store, cache: c, ttl: ttl, log: log}
}

// ExistsByID reports whether the catalog row exists
func (s *CatalogService) ExistsByID(ctx context.Context, kind models.CatalogKind, id int64) (bool, error) {
	key := fmt.Sprintf("catalog:%s:%d", kind, id)

	if s.cache != nil {
		if _, hit, err := s.cache.Get(ctx, key); err == nil && hit {
			return true, nil
		}
	}

	exists, err := s.store.ExistsByID(ctx, kind, id)
	if err != nil {
		return false, err
	}

	if exists && s.cache != nil {
		if err := s.cache.Set(ctx, key, []byte("1"), s.ttl); err != nil {
			s.log.Warn("failed to cache catalog existence", "key", key, "error", err)
		}
	}

	return exists, nil
}
