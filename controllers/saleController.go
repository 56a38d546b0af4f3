package controllers

import (
	"stockbook-backend/dto"
	"stockbook-backend/middlewares"
	"stockbook-backend/services"

	"github.com/gofiber/fiber/v2"
)

type SaleController struct {
	sales services.SaleService
}

func NewSaleController(sales services.SaleService) *SaleController {
	return &SaleController{sales: sales}
}

func (ctl *SaleController) Create(c *fiber.Ctx) error {
	var in dto.SaleCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	bill, err := ctl.sales.Create(c.Context(), in)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Sale registered successfully.",
		"bill_no": bill.BillNo,
	})
}

func (ctl *SaleController) Get(c *fiber.Ctx) error {
	billNo, err := parseID(c, "billno")
	if err != nil {
		return err
	}
	view, err := ctl.sales.Get(c.Context(), billNo)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(view)
}

func (ctl *SaleController) List(c *fiber.Ctx) error {
	res, err := ctl.sales.List(c.Context(), billFilter(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(res)
}

func (ctl *SaleController) UpdateDetails(c *fiber.Ctx) error {
	billNo, err := parseID(c, "billno")
	if err != nil {
		return err
	}
	var in dto.BillDetailsUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	details, err := ctl.sales.UpdateDetails(c.Context(), billNo, in)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(details)
}

func (ctl *SaleController) Delete(c *fiber.Ctx) error {
	billNo, err := parseID(c, "billno")
	if err != nil {
		return err
	}
	if err := ctl.sales.Delete(c.Context(), billNo); err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"message": "Sale bill deleted successfully."})
}
