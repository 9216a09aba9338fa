package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eternallight/backend/common/apperr"
	"github.com/eternallight/backend/common/logger"
)

// respondError maps a service error onto the HTTP response. Internal
// errors are logged with their cause; the client only sees a generic
// message.
func respondError(c echo.Context, log *logger.Logger, err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		if e.Kind == apperr.KindInternal {
			log.Error("request failed", "path", c.Path(), "error", e.Unwrap())
		}
		return c.JSON(e.Status(), map[string]any{"error": e.Error()})
	}

	log.Error("unhandled error", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
}

// pathID parses a numeric path parameter
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
