package handler

import (
	"strconv"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pageQuery is the common limit/offset query of listing endpoints.
type pageQuery struct {
	Limit  int `query:"limit" validate:"gte=0,lte=100"`
	Offset int `query:"offset" validate:"gte=0"`
}

// effectiveLimit mirrors the use case default so the response meta is accurate.
func (q pageQuery) effectiveLimit() int {
	if q.Limit <= 0 {
		return constants.DefaultPageLimit
	}

	return min(q.Limit, constants.MaxPageLimit)
}

// orderNumberParam reads the :order_number path parameter.
func orderNumberParam(c echo.Context) (int64, error) {
	raw := c.Param("order_number")
	orderNumber, err := entity.ParseOrderKey(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "order_number %q", raw)
	}

	return orderNumber, nil
}

func formatOrderNumber(n int64) string {
	return strconv.FormatInt(n, 10)
}
