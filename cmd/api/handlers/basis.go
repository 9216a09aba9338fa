package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// BasisHandler handles work bases; rows are addressed by basis type
// rather than surrogate id
type BasisHandler struct {
	components *bootstrap.Components
	bases      *service.BasisService
}

// NewBasisHandler creates a new basis handler
func NewBasisHandler(components *bootstrap.Components, bases *service.BasisService) *BasisHandler {
	return &BasisHandler{components: components, bases: bases}
}

// List returns the bases of the act
// GET /api/v1/work-acts/:actId/basis
func (h *BasisHandler) List(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	bases, err := h.bases.List(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, bases)
}

// Add records a basis row
// POST /api/v1/work-acts/:actId/basis
func (h *BasisHandler) Add(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.AddBasisInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	basis, err := h.bases.Add(c.Request().Context(), actID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, basis)
}

// Get returns the basis row for the basis type
// GET /api/v1/work-acts/:actId/basis/:workBasisTypeId
func (h *BasisHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	basisTypeID, err := pathID(c, "workBasisTypeId")
	if err != nil {
		return err
	}

	basis, err := h.bases.Get(c.Request().Context(), actID, basisTypeID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, basis)
}

// Update rewrites the basis row for the basis type
// PUT /api/v1/work-acts/:actId/basis/:workBasisTypeId
func (h *BasisHandler) Update(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	basisTypeID, err := pathID(c, "workBasisTypeId")
	if err != nil {
		return err
	}

	var in models.UpdateBasisInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	basis, err := h.bases.Update(c.Request().Context(), actID, basisTypeID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, basis)
}

// Delete removes the basis row for the basis type
// DELETE /api/v1/work-acts/:actId/basis/:workBasisTypeId
func (h *BasisHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}
	basisTypeID, err := pathID(c, "workBasisTypeId")
	if err != nil {
		return err
	}

	if err := h.bases.Delete(c.Request().Context(), actID, basisTypeID); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
