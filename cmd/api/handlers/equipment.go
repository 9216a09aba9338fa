package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// DismantledEquipmentHandler handles removed equipment
type DismantledEquipmentHandler struct {
	components *bootstrap.Components
	equipment  *service.DismantledEquipmentService
}

// NewDismantledEquipmentHandler creates a new dismantled-equipment handler
func NewDismantledEquipmentHandler(components *bootstrap.Components, equipment *service.DismantledEquipmentService) *DismantledEquipmentHandler {
	return &DismantledEquipmentHandler{components: components, equipment: equipment}
}

// List returns the removed equipment of the act
// GET /api/v1/work-acts/:actId/dismantled-equipment
func (h *DismantledEquipmentHandler) List(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	items, err := h.equipment.List(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, items)
}

// Add records a removed unit of equipment
// POST /api/v1/work-acts/:actId/dismantled-equipment
func (h *DismantledEquipmentHandler) Add(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.DismantledEquipmentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.equipment.Add(c.Request().Context(), actID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// Get returns the row
// GET /api/v1/work-acts/:actId/dismantled-equipment/:id
func (h *DismantledEquipmentHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.equipment.Get(c.Request().Context(), actID, id)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Update replaces every field of the row
// PUT /api/v1/work-acts/:actId/dismantled-equipment/:id
func (h *DismantledEquipmentHandler) Update(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in models.DismantledEquipmentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.equipment.Update(c.Request().Context(), actID, id, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Delete removes the row
// DELETE /api/v1/work-acts/:actId/dismantled-equipment/:id
func (h *DismantledEquipmentHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.equipment.Delete(c.Request().Context(), actID, id); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// InstalledEquipmentHandler handles installed equipment
type InstalledEquipmentHandler struct {
	components *bootstrap.Components
	equipment  *service.InstalledEquipmentService
}

// NewInstalledEquipmentHandler creates a new installed-equipment handler
func NewInstalledEquipmentHandler(components *bootstrap.Components, equipment *service.InstalledEquipmentService) *InstalledEquipmentHandler {
	return &InstalledEquipmentHandler{components: components, equipment: equipment}
}

// List returns the installed equipment of the act
// GET /api/v1/work-acts/:actId/installed-equipment
func (h *InstalledEquipmentHandler) List(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	items, err := h.equipment.List(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, items)
}

// Add records an installed unit of equipment
// POST /api/v1/work-acts/:actId/installed-equipment
func (h *InstalledEquipmentHandler) Add(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.InstalledEquipmentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.equipment.Add(c.Request().Context(), actID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// Get returns the row
// GET /api/v1/work-acts/:actId/installed-equipment/:id
func (h *InstalledEquipmentHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.equipment.Get(c.Request().Context(), actID, id)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Update replaces every field of the row
// PUT /api/v1/work-acts/:actId/installed-equipment/:id
func (h *InstalledEquipmentHandler) Update(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in models.InstalledEquipmentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.equipment.Update(c.Request().Context(), actID, id, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Delete removes the row
// DELETE /api/v1/work-acts/:actId/installed-equipment/:id
func (h *InstalledEquipmentHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.equipment.Delete(c.Request().Context(), actID, id); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
