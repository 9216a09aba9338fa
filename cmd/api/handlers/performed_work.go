package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// PerformedWorkHandler handles the numbered performed-work list
type PerformedWorkHandler struct {
	components *bootstrap.Components
	works      *service.PerformedWorkService
}

// NewPerformedWorkHandler creates a new performed-work handler
func NewPerformedWorkHandler(components *bootstrap.Components, works *service.PerformedWorkService) *PerformedWorkHandler {
	return &PerformedWorkHandler{components: components, works: works}
}

// List returns the performed-work lines of the act
// GET /api/v1/work-acts/:actId/performed-works
func (h *PerformedWorkHandler) List(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	items, err := h.works.List(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, items)
}

// Add records a performed-work line
// POST /api/v1/work-acts/:actId/performed-works
func (h *PerformedWorkHandler) Add(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.AddPerformedWorkInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.works.Add(c.Request().Context(), actID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, item)
}

// Get returns the line
// GET /api/v1/work-acts/:actId/performed-works/:id
func (h *PerformedWorkHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.works.Get(c.Request().Context(), actID, id)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Update rewrites the line
// PUT /api/v1/work-acts/:actId/performed-works/:id
func (h *PerformedWorkHandler) Update(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in models.UpdatePerformedWorkInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.works.Update(c.Request().Context(), actID, id, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Delete removes the line
// DELETE /api/v1/work-acts/:actId/performed-works/:id
func (h *PerformedWorkHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.works.Delete(c.Request().Context(), actID, id); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
