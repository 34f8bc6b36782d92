package handler

import (
	"strconv"

	"freelancer/internal/domain/entity"
	domainerrors "freelancer/internal/domain/errors"
	"freelancer/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a valid UUID"))
	}

	return id, nil
}

// pageQuery reads skip and limit. skip defaults to 0, limit to defaultLimit and
// limit may not exceed maxLimit.
func pageQuery(c echo.Context, defaultLimit, maxLimit int) (entity.Page, error) {
	page := entity.Page{Limit: defaultLimit}

	if raw := c.QueryParam("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return page, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("skip must be a non-negative integer"))
		}
		page.Skip = skip
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			return page, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
				"limit must be between 1 and " + strconv.Itoa(maxLimit)))
		}
		page.Limit = limit
	}

	return page, nil
}

// boolQuery reads an optional boolean query parameter.
func boolQuery(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a boolean"))
	}

	return value, nil
}
