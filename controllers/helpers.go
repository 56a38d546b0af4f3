package controllers

import (
	"errors"
	"strconv"

	"stockbook-backend/dto"
	"stockbook-backend/services"
	"stockbook-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// parseID reads a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

func pageFilter(c *fiber.Ctx) (page, limit int) {
	page = utils.ParseIntDefault(c.Query("page"), 1)
	limit = utils.ParseIntDefault(c.Query("limit"), 10)
	return page, limit
}

// serviceError maps the service sentinels onto HTTP statuses. Anything
// unrecognized falls through to the global 500 handler.
func serviceError(err error) error {
	switch {
	case errors.Is(err, services.ErrStockNotFound),
		errors.Is(err, services.ErrSupplierNotFound),
		errors.Is(err, services.ErrBillNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNameTaken):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}

func billFilter(c *fiber.Ctx) dto.BillFilter {
	page, limit := pageFilter(c)
	return dto.BillFilter{Page: page, Limit: limit}
}
