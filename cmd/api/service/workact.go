package service

import (
	"context"
	"strings"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/repository"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// WorkActStore is the persistence surface of the aggregate root
type WorkActStore interface {
	Create(ctx context.Context, act *models.WorkAct) error
	GetByID(ctx context.Context, id int64) (*models.WorkAct, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter models.WorkActFilter, page models.PageRequest) ([]*models.WorkAct, int64, error)
	Update(ctx context.Context, act *models.WorkAct) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// workActSortColumns maps the sort fields the list endpoint accepts to
// their database columns
var workActSortColumns = map[string]string{
	"id":               "work_act_id",
	"actNumber":        "act_number",
	"actCompiledOn":    "act_compiled_on",
	"workStartedAt":    "work_started_at",
	"workFinishedAt":   "work_finished_at",
	"executorOrgId":    "executor_org_id",
	"lightingObjectId": "lighting_object_id",
	"grandTotalAmount": "grand_total_amount",
}

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// WorkActService implements the aggregate-root operations
type WorkActService struct {
	store WorkActStore
	refs  *Refs
	log   *logger.Logger
}

// NewWorkActService creates a new work act service
func NewWorkActService(store WorkActStore, refs *Refs, log *logger.Logger) *WorkActService {
	return &WorkActService{store: store, refs: refs, log: log}
}

// Create validates the references and inserts a new work act
func (s *WorkActService) Create(ctx context.Context, in *models.WorkActInput) (*models.WorkAct, error) {
	if in.ExecutorOrgID <= 0 {
		return nil, apperr.Invalid("executorOrgId is required")
	}
	if err := s.refs.RequireCatalog(ctx, models.CatalogOrganization, in.ExecutorOrgID); err != nil {
		return nil, err
	}
	if err := s.refs.RequireCatalogOpt(ctx, models.CatalogLightingObject, in.LightingObjectID); err != nil {
		return nil, err
	}

	act := &models.WorkAct{}
	applyWorkActInput(act, in)

	if err := s.store.Create(ctx, act); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("Referenced entity not found")
		}
		return nil, apperr.Internal(err)
	}

	s.log.WithWorkActID(act.ID).Info("work act created")
	return act, nil
}

// Get retrieves a work act by id
func (s *WorkActService) Get(ctx context.Context, id int64) (*models.WorkAct, error) {
	act, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if act == nil {
		return nil, apperr.NotFound("Work act not found: id=%d", id)
	}
	return act, nil
}

// List retrieves a filtered, sorted page of work acts
func (s *WorkActService) List(ctx context.Context, filter models.WorkActFilter, page models.PageRequest) (*models.Page[*models.WorkAct], error) {
	// A whitespace-only act number is no filter at all
	filter.ActNumber = strings.TrimSpace(filter.ActNumber)
	if page.Page < 0 {
		page.Page = 0
	}
	if page.Size <= 0 {
		page.Size = defaultPageSize
	}
	if page.Size > maxPageSize {
		page.Size = maxPageSize
	}

	if page.Sort != "" {
		col, ok := workActSortColumns[page.Sort]
		if !ok {
			return nil, apperr.Invalid("unknown sort field: %s", page.Sort)
		}
		page.Sort = col
	}

	acts, total, err := s.store.List(ctx, filter, page)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &models.Page[*models.WorkAct]{
		Items:      acts,
		Page:       page.Page,
		Size:       page.Size,
		TotalItems: total,
	}, nil
}

// Update validates the references and replaces all fields of the work act
func (s *WorkActService) Update(ctx context.Context, id int64, in *models.WorkActInput) (*models.WorkAct, error) {
	if in.ExecutorOrgID <= 0 {
		return nil, apperr.Invalid("executorOrgId is required")
	}
	if err := s.refs.RequireCatalog(ctx, models.CatalogOrganization, in.ExecutorOrgID); err != nil {
		return nil, err
	}
	if err := s.refs.RequireCatalogOpt(ctx, models.CatalogLightingObject, in.LightingObjectID); err != nil {
		return nil, err
	}

	act := &models.WorkAct{ID: id}
	applyWorkActInput(act, in)

	found, err := s.store.Update(ctx, act)
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("Referenced entity not found")
		}
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Work act not found: id=%d", id)
	}

	return act, nil
}

// Delete removes a work act. Children are untouched unless the cascade
// schema variant is installed.
func (s *WorkActService) Delete(ctx context.Context, id int64) error {
	found, err := s.store.Delete(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Work act not found: id=%d", id)
	}

	s.log.WithWorkActID(id).Info("work act deleted")
	return nil
}

func applyWorkActInput(act *models.WorkAct, in *models.WorkActInput) {
	act.ActNumber = in.ActNumber
	act.ActCompiledOn = in.ActCompiledOn
	act.ActPlace = in.ActPlace
	act.ExecutorOrgID = in.ExecutorOrgID
	act.StructuralUnit = in.StructuralUnit
	act.LightingObjectID = in.LightingObjectID
	act.WorkStartedAt = in.WorkStartedAt
	act.WorkFinishedAt = in.WorkFinishedAt
	act.TotalDurationMinutes = in.TotalDurationMinutes
	act.ActualWorkMinutes = in.ActualWorkMinutes
	act.DowntimeMinutes = in.DowntimeMinutes
	act.DowntimeReason = in.DowntimeReason
	act.FaultDetails = in.FaultDetails
	act.FaultCause = in.FaultCause
	act.QualityRemarks = in.QualityRemarks
	act.OtherExpensesAmount = in.OtherExpensesAmount
	act.MaterialsTotalAmount = in.MaterialsTotalAmount
	act.WorksTotalAmount = in.WorksTotalAmount
	act.TransportTotalAmount = in.TransportTotalAmount
	act.GrandTotalAmount = in.GrandTotalAmount
	act.GrandTotalInWords = in.GrandTotalInWords
	act.WarrantyWorkMonths = in.WarrantyWorkMonths
	act.WarrantyWorkStart = in.WarrantyWorkStart
	act.WarrantyWorkEnd = in.WarrantyWorkEnd
	act.WarrantyEquipmentMonths = in.WarrantyEquipmentMonths
	act.WarrantyTerms = in.WarrantyTerms
	act.CopiesCount = in.CopiesCount
	act.AcceptedWithoutRemarks = in.AcceptedWithoutRemarks
}
