package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// EquipmentUsageHandler handles machinery-usage lines
type EquipmentUsageHandler struct {
	components *bootstrap.Components
	usages     *service.EquipmentUsageService
}

// NewEquipmentUsageHandler creates a new equipment-usage handler
func NewEquipmentUsageHandler(components *bootstrap.Components, usages *service.EquipmentUsageService) *EquipmentUsageHandler {
	return &EquipmentUsageHandler{components: components, usages: usages}
}

// List returns the usage lines of the act
// GET /api/v1/work-acts/:actId/equipment-usage
func (h *EquipmentUsageHandler) List(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	items, err := h.usages.List(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, items)
}

// Add records a machinery-usage line
// POST /api/v1/work-acts/:actId/equipment-usage
func (h *EquipmentUsageHandler) Add(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.AddEquipmentUsageInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.usages.Add(c.Request().Context(), actID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// Get returns the line
// GET /api/v1/work-acts/:actId/equipment-usage/:id
func (h *EquipmentUsageHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.usages.Get(c.Request().Context(), actID, id)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Update rewrites the line
// PUT /api/v1/work-acts/:actId/equipment-usage/:id
func (h *EquipmentUsageHandler) Update(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in models.UpdateEquipmentUsageInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.usages.Update(c.Request().Context(), actID, id, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Delete removes the line
// DELETE /api/v1/work-acts/:actId/equipment-usage/:id
func (h *EquipmentUsageHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.usages.Delete(c.Request().Context(), actID, id); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
