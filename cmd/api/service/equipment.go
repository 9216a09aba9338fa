package service

import (
	"context"
	"strings"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/repository"
	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// DismantledEquipmentStore is the persistence surface of removed equipment
type DismantledEquipmentStore interface {
	ListByWorkAct(ctx context.Context, workActID int64) ([]*models.WorkActDismantledEquipment, error)
	GetScoped(ctx context.Context, workActID, id int64) (*models.WorkActDismantledEquipment, error)
	Insert(ctx context.Context, e *models.WorkActDismantledEquipment) error
	Update(ctx context.Context, e *models.WorkActDismantledEquipment) (bool, error)
	DeleteScoped(ctx context.Context, workActID, id int64) (bool, error)
}

// DismantledEquipmentService implements the removed-equipment list of an
// act. Create and update both take the full payload.
type DismantledEquipmentService struct {
	store DismantledEquipmentStore
	refs  *Refs
	log   *logger.Logger
}

// NewDismantledEquipmentService creates a new dismantled-equipment service
func NewDismantledEquipmentService(store DismantledEquipmentStore, refs *Refs, log *logger.Logger) *DismantledEquipmentService {
	return &DismantledEquipmentService{store: store, refs: refs, log: log}
}

// List returns the removed equipment of the act in seq order
func (s *DismantledEquipmentService) List(ctx context.Context, workActID int64) ([]*models.WorkActDismantledEquipment, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	items, err := s.store.ListByWorkAct(ctx, workActID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return items, nil
}

// Get returns the row only when it belongs to the act
func (s *DismantledEquipmentService) Get(ctx context.Context, workActID, id int64) (*models.WorkActDismantledEquipment, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Dismantled equipment not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Add records a removed unit of equipment
func (s *DismantledEquipmentService) Add(ctx context.Context, workActID int64, in *models.DismantledEquipmentInput) (*models.WorkActDismantledEquipment, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}
	if err := s.refs.RequireCatalogOpt(ctx, models.CatalogEquipmentCondition, in.EquipmentConditionID); err != nil {
		return nil, err
	}

	item := &models.WorkActDismantledEquipment{WorkActID: workActID}
	applyDismantledInput(item, in, name)

	if err := s.store.Insert(ctx, item); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("Referenced entity not found")
		}
		return nil, apperr.Internal(err)
	}

	return item, nil
}

// Update replaces every field of the row with the payload
func (s *DismantledEquipmentService) Update(ctx context.Context, workActID, id int64, in *models.DismantledEquipmentInput) (*models.WorkActDismantledEquipment, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}
	if err := s.refs.RequireCatalogOpt(ctx, models.CatalogEquipmentCondition, in.EquipmentConditionID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Dismantled equipment not found: workActId=%d, id=%d", workActID, id)
	}

	applyDismantledInput(item, in, name)

	found, err := s.store.Update(ctx, item)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Dismantled equipment not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Delete removes the row only when it belongs to the act
func (s *DismantledEquipmentService) Delete(ctx context.Context, workActID, id int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.DeleteScoped(ctx, workActID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Dismantled equipment not found: workActId=%d, id=%d", workActID, id)
	}

	return nil
}

func applyDismantledInput(item *models.WorkActDismantledEquipment, in *models.DismantledEquipmentInput, name string) {
	item.Seq = in.Seq
	item.Name = name
	item.Model = in.Model
	item.SerialNumber = in.SerialNumber
	item.ManufactureYear = in.ManufactureYear
	item.Quantity = in.Quantity
	item.EquipmentConditionID = in.EquipmentConditionID
	item.StorageOrTransferPlace = in.StorageOrTransferPlace
}

// InstalledEquipmentStore is the persistence surface of installed equipment
type InstalledEquipmentStore interface {
	ListByWorkAct(ctx context.Context, workActID int64) ([]*models.WorkActInstalledEquipment, error)
	GetScoped(ctx context.Context, workActID, id int64) (*models.WorkActInstalledEquipment, error)
	Insert(ctx context.Context, e *models.WorkActInstalledEquipment) error
	Update(ctx context.Context, e *models.WorkActInstalledEquipment) (bool, error)
	DeleteScoped(ctx context.Context, workActID, id int64) (bool, error)
}

// InstalledEquipmentService implements the installed-equipment list of an
// act. Create and update both take the full payload.
type InstalledEquipmentService struct {
	store InstalledEquipmentStore
	refs  *Refs
	log   *logger.Logger
}

// NewInstalledEquipmentService creates a new installed-equipment service
func NewInstalledEquipmentService(store InstalledEquipmentStore, refs *Refs, log *logger.Logger) *InstalledEquipmentService {
	return &InstalledEquipmentService{store: store, refs: refs, log: log}
}

// List returns the installed equipment of the act in seq order
func (s *InstalledEquipmentService) List(ctx context.Context, workActID int64) ([]*models.WorkActInstalledEquipment, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	items, err := s.store.ListByWorkAct(ctx, workActID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return items, nil
}

// Get returns the row only when it belongs to the act
func (s *InstalledEquipmentService) Get(ctx context.Context, workActID, id int64) (*models.WorkActInstalledEquipment, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Installed equipment not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Add records an installed unit of equipment
func (s *InstalledEquipmentService) Add(ctx context.Context, workActID int64, in *models.InstalledEquipmentInput) (*models.WorkActInstalledEquipment, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}

	item := &models.WorkActInstalledEquipment{WorkActID: workActID}
	applyInstalledInput(item, in, name)

	if err := s.store.Insert(ctx, item); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, apperr.NotFound("Referenced entity not found")
		}
		return nil, apperr.Internal(err)
	}

	return item, nil
}

// Update replaces every field of the row with the payload
func (s *InstalledEquipmentService) Update(ctx context.Context, workActID, id int64, in *models.InstalledEquipmentInput) (*models.WorkActInstalledEquipment, error) {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Invalid("name is required")
	}

	item, err := s.store.GetScoped(ctx, workActID, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if item == nil {
		return nil, apperr.NotFound("Installed equipment not found: workActId=%d, id=%d", workActID, id)
	}

	applyInstalledInput(item, in, name)

	found, err := s.store.Update(ctx, item)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !found {
		return nil, apperr.NotFound("Installed equipment not found: workActId=%d, id=%d", workActID, id)
	}

	return item, nil
}

// Delete removes the row only when it belongs to the act
func (s *InstalledEquipmentService) Delete(ctx context.Context, workActID, id int64) error {
	if err := s.refs.RequireWorkAct(ctx, workActID); err != nil {
		return err
	}

	found, err := s.store.DeleteScoped(ctx, workActID, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if !found {
		return apperr.NotFound("Installed equipment not found: workActId=%d, id=%d", workActID, id)
	}

	return nil
}

func applyInstalledInput(item *models.WorkActInstalledEquipment, in *models.InstalledEquipmentInput, name string) {
	item.Seq = in.Seq
	item.Name = name
	item.Model = in.Model
	item.SerialNumber = in.SerialNumber
	item.ManufactureYear = in.ManufactureYear
	item.Quantity = in.Quantity
	item.InstalledOn = in.InstalledOn
	item.WarrantyMonths = in.WarrantyMonths
	item.WarrantyUntil = in.WarrantyUntil
	item.PassportOrCertificateNumber = in.PassportOrCertificateNumber
}
