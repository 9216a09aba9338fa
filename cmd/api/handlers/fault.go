package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/middleware"
	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// FaultHandler handles fault ticks; rows are addressed by fault type
// rather than surrogate id
type FaultHandler struct {
	components *bootstrap.Components
	faults     *service.FaultService
}

// NewFaultHandler creates a new fault handler
func NewFaultHandler(components *bootstrap.Components, faults *service.FaultService) *FaultHandler {
	return &FaultHandler{components: components, faults: faults}
}

// List returns the fault ticks of the act
// GET /api/v1/work-acts/:actId/faults
func (h *FaultHandler) List(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	faults, err := h.faults.List(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, faults)
}

// Add records a fault tick
// POST /api/v1/work-acts/:actId/faults
func (h *FaultHandler) Add(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.AddFaultInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	fault, err := h.faults.Add(c.Request().Context(), actID, &in, middleware.GetUsername(c))
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, fault)
}

// Get returns the fault tick for the fault type
// GET /api/v1/work-acts/:actId/faults/:faultTypeId
func (h *FaultHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	faultTypeID, err := pathID(c, "faultTypeId")
	if err != nil {
		return err
	}

	fault, err := h.faults.Get(c.Request().Context(), actID, faultTypeID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, fault)
}

// Update rewrites the fault tick for the fault type
// PUT /api/v1/work-acts/:actId/faults/:faultTypeId
func (h *FaultHandler) Update(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	faultTypeID, err := pathID(c, "faultTypeId")
	if err != nil {
		return err
	}

	var in models.UpdateFaultInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	fault, err := h.faults.Update(c.Request().Context(), actID, faultTypeID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, fault)
}

// Delete removes the fault tick for the fault type
// DELETE /api/v1/work-acts/:actId/faults/:faultTypeId
func (h *FaultHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	faultTypeID, err := pathID(c, "faultTypeId")
	if err != nil {
		return err
	}

	if err := h.faults.Delete(c.Request().Context(), actID, faultTypeID); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
