package controllers

import (
	"stockbook-backend/dto"
	"stockbook-backend/middlewares"
	"stockbook-backend/services"

	"github.com/gofiber/fiber/v2"
)

type PurchaseController struct {
	purchases services.PurchaseService
}

func NewPurchaseController(purchases services.PurchaseService) *PurchaseController {
	return &PurchaseController{purchases: purchases}
}

func (ctl *PurchaseController) Create(c *fiber.Ctx) error {
	var in dto.PurchaseCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	bill, err := ctl.purchases.Create(c.Context(), in)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Purchased items registered successfully.",
		"bill_no": bill.BillNo,
	})
}

func (ctl *PurchaseController) Get(c *fiber.Ctx) error {
	billNo, err := parseID(c, "billno")
	if err != nil {
		return err
	}
	view, err := ctl.purchases.Get(c.Context(), billNo)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(view)
}

func (ctl *PurchaseController) List(c *fiber.Ctx) error {
	res, err := ctl.purchases.List(c.Context(), billFilter(c))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(res)
}

func (ctl *PurchaseController) UpdateDetails(c *fiber.Ctx) error {
	billNo, err := parseID(c, "billno")
	if err != nil {
		return err
	}
	var in dto.BillDetailsUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	details, err := ctl.purchases.UpdateDetails(c.Context(), billNo, in)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(details)
}

func (ctl *PurchaseController) Delete(c *fiber.Ctx) error {
	billNo, err := parseID(c, "billno")
	if err != nil {
		return err
	}
	if err := ctl.purchases.Delete(c.Context(), billNo); err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"message": "Purchase bill deleted successfully."})
}
