package models

import "time"

// PurchaseBill is a purchase transaction header. It owns its line items
// and a 1:1 details row; all three are created in one transaction.
type PurchaseBill struct {
	BillNo     uint           `json:"billno" gorm:"primaryKey"`
	SupplierID uint           `json:"supplier_id" gorm:"not null;index"`
	Supplier   Supplier       `json:"supplier" gorm:"foreignKey:SupplierID;references:ID"`
	Time       time.Time      `json:"time" gorm:"autoCreateTime"`
	Items      []PurchaseItem `json:"items" gorm:"foreignKey:BillNo;constraint:OnDelete:CASCADE"`
}

type PurchaseItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	BillNo     uint    `json:"-" gorm:"index"`
	StockID    uint    `json:"stock_id" gorm:"not null;index"`
	Stock      Stock   `json:"stock" gorm:"foreignKey:StockID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Quantity   int     `json:"quantity"`
	PerPrice   float64 `json:"perprice" gorm:"type:numeric(12,2)"`
	TotalPrice float64 `json:"totalprice" gorm:"type:numeric(12,2)"`
}

// PurchaseBillDetails carries the free-form header fields that may be
// edited after the bill is created.
type PurchaseBillDetails struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	BillNo      uint   `json:"billno" gorm:"uniqueIndex"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	TIN         string `json:"tin"`
	Destination string `json:"destination"`
	Notes       string `json:"notes"`
}
