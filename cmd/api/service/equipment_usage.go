package service

import (
	"context"
	"strings"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// EquipmentUsageStore is the persistence surface of machinery-usage lines
type EquipmentUsageStore interface {
	ListByWorkAct(ctx context.Context, workActID int64) ([]*models.WorkActEquipmentUsage, error)
	GetScoped(ctx context.Context, workActID, id int64) (*models.WorkActEquipmentUsage, error)
	Insert(ctx context.Context, u *models.WorkActEquipmentUsage) error
	Update(ctx context.Context, u *models.WorkActEquipmentUsage) (bool, error)
	DeleteScoped(ctx context.Context, workActID, id int64) (bool, error)
}

// EquipmentUsageService implements the machinery-usage lines of an act
type EquipmentUsageService struct {
	store EquipmentUsageStore
	refs  *Refs
	log   *logger.Logger
}

// NewEquipmentUsageService creates a new equipment-usage service
func NewEquipmentUsageService(store EquipmentUsageStore, refs *Refs, log *logger.Logger) *EquipmentUsageService {
	return &EquipmentUsageService{store: store, refs: refs, log: log}
}

// List returns the usage lines of the act in seq order
func (s *EquipmentUsageService) List(ctx context.Context, workActID int64) ([]*models.WorkActEquipmentUsage, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	items, err := s.store.ListByWorkAct(ctx, workActID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return items, nil
}

// Get returns the line only when it belongs to the act
func (s *EquipmentUsageService) Get(ctx context.Context, workActID, id int64) (*models.WorkActEquipmentUsage, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Equipment usage not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Add records a machinery-usage line
func (s *EquipmentUsageService) Add(ctx context.Context, workActID int64, in *models.AddEquipmentUsageInput) (*models.WorkActEquipmentUsage, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.EquipmentName)
	if name == "" {
		return nil, apperr.Invalid("equipmentName is required")
	}

	item := &models.WorkActEquipmentUsage{
		WorkActID:                     workActID,
		Seq:                           in.Seq,
		EquipmentName:                 name,
		RegistrationOrInventoryNumber: in.RegistrationOrInventoryNumber,
		UsedHours:                     in.UsedHours,
		MachineHourCost:               in.MachineHourCost,
		LineTotal:                     in.LineTotal,
	}

	if err := s.store.Insert(ctx, item); err != nil {
		return nil, apperr.Internal(err)
	}

	return item, nil
}

// Update rewrites the line. Seq and equipmentName apply only when
// supplied; the remaining fields always overwrite.
func (s *EquipmentUsageService) Update(ctx context.Context, workActID, id int64, in *models.UpdateEquipmentUsageInput) (*models.WorkActEquipmentUsage, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Equipment usage not found: workActId=%d, id=%d", workActID, id)
	}

	if in.Seq != nil {
		item.Seq = in.Seq
	}
	if in.EquipmentName != nil {
		name := strings.TrimSpace(*in.EquipmentName)
		if name == "" {
			return nil, apperr.Invalid("equipmentName must not be blank")
		}
		item.EquipmentName = name
	}
	item.RegistrationOrInventoryNumber = in.RegistrationOrInventoryNumber
	item.UsedHours = in.UsedHours
	item.MachineHourCost = in.MachineHourCost
	item.LineTotal = in.LineTotal

	found, err := s.store.Update(ctx, item)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Equipment usage not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Delete removes the line only when it belongs to the act
func (s *EquipmentUsageService) Delete(ctx context.Context, workActID, id int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.DeleteScoped(ctx, workActID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Equipment usage not found: workActId=%d, id=%d", workActID, id)
	}

	return nil
}
