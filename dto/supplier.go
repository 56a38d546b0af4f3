package dto

import "stockbook-backend/models"

type SupplierCreateDTO struct {
	Name    string `json:"name" validate:"required,min=1"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	TIN     string `json:"tin" validate:"omitempty"`
}

type SupplierUpdateDTO struct {
	Phone   *string `json:"phone" validate:"omitempty"`
	Address *string `json:"address" validate:"omitempty"`
	Email   *string `json:"email" validate:"omitempty,email"`
	TIN     *string `json:"tin" validate:"omitempty"`
}

type SupplierFilter struct {
	Page  int
	Limit int
}

// SupplierView is the supplier detail page: the supplier plus their
// purchase history.
type SupplierView struct {
	Supplier *models.Supplier      `json:"supplier"`
	Bills    []models.PurchaseBill `json:"bills"`
}

type SupplierListResponse struct {
	Data  []models.Supplier `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
