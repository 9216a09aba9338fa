package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// LaborItemHandler handles labor lines
type LaborItemHandler struct {
	components *bootstrap.Components
	items      *service.LaborItemService
}

// NewLaborItemHandler creates a new labor-item handler
func NewLaborItemHandler(components *bootstrap.Components, items *service.LaborItemService) *LaborItemHandler {
	return &LaborItemHandler{components: components, items: items}
}

// List returns the labor lines of the act
// GET /api/v1/work-acts/:actId/labor-items
func (h *LaborItemHandler) List(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	items, err := h.items.List(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, items)
}

// Add records a labor line
// POST /api/v1/work-acts/:actId/labor-items
func (h *LaborItemHandler) Add(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.AddLaborItemInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.items.Add(c.Request().Context(), actID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// Get returns the line
// GET /api/v1/work-acts/:actId/labor-items/:id
func (h *LaborItemHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.items.Get(c.Request().Context(), actID, id)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Update rewrites the line
// PUT /api/v1/work-acts/:actId/labor-items/:id
func (h *LaborItemHandler) Update(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in models.UpdateLaborItemInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.items.Update(c.Request().Context(), actID, id, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Delete removes the line
// DELETE /api/v1/work-acts/:actId/labor-items/:id
func (h *LaborItemHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.items.Delete(c.Request().Context(), actID, id); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
