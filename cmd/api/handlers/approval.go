package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// ApprovalHandler handles the one-per-act sign-off
type ApprovalHandler struct {
	components *bootstrap.Components
	approvals  *service.ApprovalService
}

// NewApprovalHandler creates a new approval handler
func NewApprovalHandler(components *bootstrap.Components, approvals *service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{components: components, approvals: approvals}
}

// Set writes the approval, replacing any existing one
// PUT /api/v1/work-acts/:actId/approval
func (h *ApprovalHandler) Set(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.ApprovalInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	approval, err := h.approvals.Set(c.Request().Context(), actID, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, approval)
}

// Get retrieves the approval
// GET /api/v1/work-acts/:actId/approval
func (h *ApprovalHandler) Get(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	approval, err := h.approvals.Get(c.Request().Context(), actID)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, approval)
}

// Delete removes the approval
// DELETE /api/v1/work-acts/:actId/approval
func (h *ApprovalHandler) Delete(c echo.Context) error {
	actID, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	if err := h.approvals.Delete(c.Request().Context(), actID); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
