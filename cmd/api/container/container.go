package container

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/eternallight/backend/cmd/api/notify"
	"github.com/eternallight/backend/cmd/api/repository"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
	rediscommon "github.com/eternallight/backend/common/redis"
)

// Container holds all initialized services and repositories
type Container struct {
	Components *bootstrap.Components
	Redis      *rediscommon.Client

	// Repositories
	WorkActRepo             *repository.WorkActRepository
	ApprovalRepo            *repository.ApprovalRepository
	FaultRepo               *repository.FaultRepository
	BasisRepo               *repository.BasisRepository
	BrigadeRepo             *repository.BrigadeRepository
	DismantledEquipmentRepo *repository.DismantledEquipmentRepository
	InstalledEquipmentRepo  *repository.InstalledEquipmentRepository
	EquipmentUsageRepo      *repository.EquipmentUsageRepository
	LaborItemRepo           *repository.LaborItemRepository
	MaterialRepo            *repository.MaterialRepository
	PerformedWorkRepo       *repository.PerformedWorkRepository
	CatalogRepo             *repository.CatalogRepository

	// Services
	CatalogService             *service.CatalogService
	WorkActService             *service.WorkActService
	ApprovalService            *service.ApprovalService
	FaultService               *service.FaultService
	BasisService               *service.BasisService
	BrigadeService             *service.BrigadeService
	DismantledEquipmentService *service.DismantledEquipmentService
	InstalledEquipmentService  *service.InstalledEquipmentService
	EquipmentUsageService      *service.EquipmentUsageService
	LaborItemService           *service.LaborItemService
	MaterialService            *service.MaterialService
	PerformedWorkService       *service.PerformedWorkService

	Notifier *notify.Notifier
}

// NewContainer initializes all services and repositories once
func NewContainer(components *bootstrap.Components) (*Container, error) {
	c := &Container{Components: components}

	// Repositories
	c.WorkActRepo = repository.NewWorkActRepository(components.DB)
	c.ApprovalRepo = repository.NewApprovalRepository(components.DB)
	c.FaultRepo = repository.NewFaultRepository(components.DB)
	c.BasisRepo = repository.NewBasisRepository(components.DB)
	c.BrigadeRepo = repository.NewBrigadeRepository(components.DB)
	c.DismantledEquipmentRepo = repository.NewDismantledEquipmentRepository(components.DB)
	c.InstalledEquipmentRepo = repository.NewInstalledEquipmentRepository(components.DB)
	c.EquipmentUsageRepo = repository.NewEquipmentUsageRepository(components.DB)
	c.LaborItemRepo = repository.NewLaborItemRepository(components.DB)
	c.MaterialRepo = repository.NewMaterialRepository(components.DB)
	c.PerformedWorkRepo = repository.NewPerformedWorkRepository(components.DB)
	c.CatalogRepo = repository.NewCatalogRepository(components.DB)

	// Notification transport
	publisher, err := c.buildPublisher()
	if err != nil {
		return nil, err
	}
	c.Notifier = notify.NewNotifier(publisher, components.Logger)

	// Services (bottom-up: shared guards first)
	c.CatalogService = service.NewCatalogService(
		c.CatalogRepo,
		components.Cache,
		components.Config.Cache.DefaultTTL,
		components.Logger,
	)
	refs := service.NewRefs(c.WorkActRepo, c.CatalogService)

	log := components.Logger
	c.WorkActService = service.NewWorkActService(c.WorkActRepo, refs, log)
	c.ApprovalService = service.NewApprovalService(c.ApprovalRepo, refs, log)
	c.FaultService = service.NewFaultService(c.FaultRepo, c.WorkActRepo, refs, c.Notifier, log)
	c.BasisService = service.NewBasisService(c.BasisRepo, refs, log)
	c.BrigadeService = service.NewBrigadeService(c.BrigadeRepo, refs, log)
	c.DismantledEquipmentService = service.NewDismantledEquipmentService(c.DismantledEquipmentRepo, refs, log)
	c.InstalledEquipmentService = service.NewInstalledEquipmentService(c.InstalledEquipmentRepo, refs, log)
	c.EquipmentUsageService = service.NewEquipmentUsageService(c.EquipmentUsageRepo, refs, log)
	c.LaborItemService = service.NewLaborItemService(c.LaborItemRepo, refs, log)
	c.MaterialService = service.NewMaterialService(c.MaterialRepo, refs, log)
	c.PerformedWorkService = service.NewPerformedWorkService(c.PerformedWorkRepo, refs, log)

	return c, nil
}

// buildPublisher selects the notification transport from config
func (c *Container) buildPublisher() (notify.Publisher, error) {
	cfg := c.Components.Config

	switch cfg.Notifier.Transport {
	case "redis":
		raw := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
		})
		c.Redis = rediscommon.NewClient(raw, c.Components.Logger)
		return notify.NewRedisPublisher(c.Redis, cfg.Notifier.Channel), nil
	case "memory":
		return notify.NewQueuePublisher(c.Components.Queue, cfg.Notifier.Channel), nil
	default:
		return nil, fmt.Errorf("unknown notifier transport: %s", cfg.Notifier.Transport)
	}
}

// Close releases container-owned resources
func (c *Container) Close() error {
	if c.Redis != nil {
		return c.Redis.Close()
	}
	return nil
}
