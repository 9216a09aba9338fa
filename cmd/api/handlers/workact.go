package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/cmd/api/models"
	"github.com/eternallight/backend/cmd/api/service"
	"github.com/eternallight/backend/common/bootstrap"
)

// WorkActHandler handles aggregate-root requests
type WorkActHandler struct {
	components *bootstrap.Components
	workActs   *service.WorkActService
}

// NewWorkActHandler creates a new work act handler
func NewWorkActHandler(components *bootstrap.Components, workActs *service.WorkActService) *WorkActHandler {
	return &WorkActHandler{components: components, workActs: workActs}
}

// Create creates a work act
// POST /api/v1/work-acts
func (h *WorkActHandler) Create(c echo.Context) error {
	var in models.WorkActInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	act, err := h.workActs.Create(c.Request().Context(), &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusCreated, act)
}

// Get retrieves a work act by id
// GET /api/v1/work-acts/:actId
func (h *WorkActHandler) Get(c echo.Context) error {
	id, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	act, err := h.workActs.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, act)
}

// List retrieves a filtered page of work acts
// GET /api/v1/work-acts?executorOrgId=&lightingObjectId=&actNumber=&page=&size=&sort=&order=
func (h *WorkActHandler) List(c echo.Context) error {
	var filter models.WorkActFilter
	if v := c.QueryParam("executorOrgId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid executorOrgId")
		}
		filter.ExecutorOrgID = &id
	}
	if v := c.QueryParam("lightingObjectId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid lightingObjectId")
		}
		filter.LightingObjectID = &id
	}
	filter.ActNumber = c.QueryParam("actNumber")

	page := models.PageRequest{
		Sort: c.QueryParam("sort"),
		Desc: c.QueryParam("order") == "desc",
	}
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
		page.Page = p
	}
	if v := c.QueryParam("size"); v != "" {
		s, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid size")
		}
		page.Size = s
	}

	result, err := h.workActs.List(c.Request().Context(), filter, page)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Update replaces all fields of a work act
// PUT /api/v1/work-acts/:actId
func (h *WorkActHandler) Update(c echo.Context) error {
	id, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	var in models.WorkActInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	act, err := h.workActs.Update(c.Request().Context(), id, &in)
	if err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.JSON(http.StatusOK, act)
}

// Delete removes a work act
// DELETE /api/v1/work-acts/:actId
func (h *WorkActHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "actId")
	if err != nil {
		return err
	}

	if err := h.workActs.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, h.components.Logger, err)
	}

	return c.NoContent(http.StatusNoContent)
}
