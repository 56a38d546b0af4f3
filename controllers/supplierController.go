package controllers

import (
	"stockbook-backend/dto"
	"stockbook-backend/middlewares"
	"stockbook-backend/services"

	"github.com/gofiber/fiber/v2"
)

type SupplierController struct {
	suppliers services.SupplierService
}

func NewSupplierController(suppliers services.SupplierService) *SupplierController {
	return &SupplierController{suppliers: suppliers}
}

func (ctl *SupplierController) Create(c *fiber.Ctx) error {
	var in dto.SupplierCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	supplier, err := ctl.suppliers.Create(c.Context(), in)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

func (ctl *SupplierController) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	view, err := ctl.suppliers.Get(c.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(view)
}

func (ctl *SupplierController) List(c *fiber.Ctx) error {
	page, limit := pageFilter(c)
	res, err := ctl.suppliers.List(c.Context(), dto.SupplierFilter{Page: page, Limit: limit})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(res)
}

func (ctl *SupplierController) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.SupplierUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	supplier, err := ctl.suppliers.Update(c.Context(), id, in)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(supplier)
}

func (ctl *SupplierController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.suppliers.Delete(c.Context(), id); err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}
