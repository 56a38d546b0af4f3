package dto

import "stockbook-backend/models"

// BillItemInput is one line item of a purchase or sale form. The whole
// item list must validate before anything is persisted.
type BillItemInput struct {
	StockID  uint    `json:"stock_id" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	PerPrice float64 `json:"perprice" validate:"required,gt=0"`
}

type PurchaseCreateDTO struct {
	SupplierID uint            `json:"supplier_id" validate:"required"`
	Items      []BillItemInput `json:"items" validate:"required,min=1,dive"`
}

type SaleCreateDTO struct {
	Name    string          `json:"name" validate:"required,min=1"`
	Phone   string          `json:"phone" validate:"omitempty"`
	Address string          `json:"address" validate:"omitempty"`
	Email   string          `json:"email" validate:"omitempty,email"`
	Items   []BillItemInput `json:"items" validate:"required,min=1,dive"`
}

// BillDetailsUpdateDTO edits header fields only; nil fields are left
// untouched. Quantities and prices are not editable post-creation.
type BillDetailsUpdateDTO struct {
	Address     *string `json:"address" validate:"omitempty"`
	Phone       *string `json:"phone" validate:"omitempty"`
	TIN         *string `json:"tin" validate:"omitempty"`
	Destination *string `json:"destination" validate:"omitempty"`
	Notes       *string `json:"notes" validate:"omitempty"`
}

type BillFilter struct {
	Page  int
	Limit int
}

// BillSummary is the printed-bill totals block.
type BillSummary struct {
	Subtotal      float64 `json:"subtotal"`
	VAT           float64 `json:"vat"`
	TotalAfterVAT float64 `json:"total_after_vat"`
	Withhold      float64 `json:"withhold"`
	NetPayable    float64 `json:"net_payable"`
	NetInWords    string  `json:"net_in_words"`
}

type PurchaseBillView struct {
	Bill    *models.PurchaseBill        `json:"bill"`
	Details *models.PurchaseBillDetails `json:"details"`
	Summary BillSummary                 `json:"summary"`
}

type SaleBillView struct {
	Bill    *models.SaleBill        `json:"bill"`
	Details *models.SaleBillDetails `json:"details"`
	Summary BillSummary             `json:"summary"`
}

type PurchaseListResponse struct {
	Data  []models.PurchaseBill `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

type SaleListResponse struct {
	Data  []models.SaleBill `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
