package controllers

import (
	"time"

	"stockbook-backend/services"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

type ReportController struct {
	reports services.ReportService
}

func NewReportController(reports services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func (ctl *ReportController) Balance(c *fiber.Ctx) error {
	report, err := ctl.reports.Balance(c.Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(report)
}

// Inventory is the dated valuation report. Missing start_date defaults
// to the open-ended lower bound, missing end_date defaults to today.
func (ctl *ReportController) Inventory(c *fiber.Ctx) error {
	start := services.DefaultReportStart
	if raw := c.Query("start_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid start_date, want YYYY-MM-DD")
		}
		start = t
	}

	end := time.Now().Truncate(24 * time.Hour)
	if raw := c.Query("end_date"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid end_date, want YYYY-MM-DD")
		}
		end = t
	}

	if end.Before(start) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date is before start_date")
	}

	report, err := ctl.reports.Dated(c.Context(), start, end)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(report)
}

func (ctl *ReportController) Dashboard(c *fiber.Ctx) error {
	dashboard, err := ctl.reports.Dashboard(c.Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(dashboard)
}
