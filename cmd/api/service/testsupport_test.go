package service

import (
	"context"
	"fmt"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/logger"
)

// fakeActs answers work-act existence from a fixed set
type fakeActs struct {
	ids map[int64]bool
}

func (f *fakeActs) Exists(_ context.Context, id int64) (bool, error) {
	return f.ids[id], nil
}

// fakeCatalogs answers catalog existence from a fixed set of kind:id keys
type fakeCatalogs struct {
	rows map[string]bool
}

func (f *fakeCatalogs) ExistsByID(_ context.Context, kind models.CatalogKind, id int64) (bool, error) {
	return f.rows[fmt.Sprintf("%s:%d", kind, id)], nil
}

func catalogKey(kind models.CatalogKind, id int64) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

func newTestRefs(actIDs []int64, catalogKeys []string) *Refs {
	acts := &fakeActs{ids: make(map[int64]bool)}
	for _, id := range actIDs {
		acts.ids[id] = true
	}
	catalogs := &fakeCatalogs{rows: make(map[string]bool)}
	for _, key := range catalogKeys {
		catalogs.rows[key] = true
	}
	return NewRefs(acts, catalogs)
}

func testLogger() *logger.Logger {
	return logger.New("error", "text")
}

func ptr[T any](v T) *T {
	return &v
}
