package controllers

import (
	"stockbook-backend/dto"
	"stockbook-backend/middlewares"
	"stockbook-backend/services"

	"github.com/gofiber/fiber/v2"
)

type StockController struct {
	inventory services.InventoryService
}

func NewStockController(inventory services.InventoryService) *StockController {
	return &StockController{inventory: inventory}
}

func (ctl *StockController) Create(c *fiber.Ctx) error {
	var in dto.StockCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	stock, err := ctl.inventory.CreateStock(c.Context(), in)
	if err != nil {
		return serviceError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(stock)
}

func (ctl *StockController) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	stock, err := ctl.inventory.GetStock(c.Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(stock)
}

func (ctl *StockController) List(c *fiber.Ctx) error {
	page, limit := pageFilter(c)
	filter := dto.StockFilter{
		Name:  c.Query("name"),
		Page:  page,
		Limit: limit,
	}
	res, err := ctl.inventory.ListStocks(c.Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(res)
}

func (ctl *StockController) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.StockUpdateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	stock, err := ctl.inventory.UpdateStock(c.Context(), id, in)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(stock)
}

func (ctl *StockController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := ctl.inventory.DeleteStock(c.Context(), id); err != nil {
		return serviceError(err)
	}
	return c.JSON(fiber.Map{"message": "Stock has been deleted successfully"})
}
