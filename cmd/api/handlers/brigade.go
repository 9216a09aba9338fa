package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// BrigadeHandler handles the brigade roster of an act
type BrigadeHandler struct {
	components *bootstrap.Components
	brigade    *service.BrigadeService
}

// NewBrigadeHandler creates a new brigade handler
func NewBrigadeHandler(components *bootstrap.Components, brigade *service.BrigadeService) *BrigadeHandler {
	return &BrigadeHandler{components: components, brigade: brigade}
}

// List returns the roster of the act
// GET /api/v1/work-acts/:actId/brigade
func (h *BrigadeHandler) List(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	members, err := h.brigade.List(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, members)
}

// Add appends an employee to the roster
// POST /api/v1/work-acts/:actId/brigade
func (h *BrigadeHandler) Add(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.AddBrigadeMemberInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	member, err := h.brigade.Add(c.Request().Context(), actID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, member)
}

// Get returns the member
// GET /api/v1/work-acts/:actId/brigade/:id
func (h *BrigadeHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	member, err := h.brigade.Get(c.Request().Context(), actID, id)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, member)
}

// Update changes the member's role or position
// PUT /api/v1/work-acts/:actId/brigade/:id
func (h *BrigadeHandler) Update(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var in models.UpdateBrigadeMemberInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	member, err := h.brigade.Update(c.Request().Context(), actID, id, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, member)
}

// Delete removes the member
// DELETE /api/v1/work-acts/:actId/brigade/:id
func (h *BrigadeHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.brigade.Delete(c.Request().Context(), actID, id); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
