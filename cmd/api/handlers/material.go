package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// MaterialHandler handles material lines
type MaterialHandler struct {
	components *bootstrap.Components
	materials  *service.MaterialService
}

// NewMaterialHandler creates a new material handler
func NewMaterialHandler(components *bootstrap.Components, materials *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{components: components, materials: materials}
}

// List returns the material lines of the act
// GET /api/v1/work-acts/:actId/materials
func (h *MaterialHandler) List(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	items, err := h.materials.List(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, items)
}

// Add records a material line
// POST /api/v1/work-acts/:actId/materials
func (h *MaterialHandler) Add(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.AddMaterialInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.materials.Add(c.Request().Context(), actID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// Get returns the line
// GET /api/v1/work-acts/:actId/materials/:id
func (h *MaterialHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.materials.Get(c.Request().Context(), actID, id)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Update rewrites the line
// PUT /api/v1/work-acts/:actId/materials/:id
func (h *MaterialHandler) Update(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in models.UpdateMaterialInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.materials.Update(c.Request().Context(), actID, id, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Delete removes the line
// DELETE /api/v1/work-acts/:actId/materials/:id
func (h *MaterialHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.materials.Delete(c.Request().Context(), actID, id); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
