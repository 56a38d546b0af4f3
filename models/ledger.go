package models

import "gorm.io/datatypes"

// Purchase and Sale are the historical ledger rows behind the reports,
// distinct from bill line items. They carry the bill number so deleting
// a bill removes its history too, keeping the balance report in step
// with Stock.Quantity.

type Purchase struct {
	ID       uint           `json:"id" gorm:"primaryKey"`
	StockID  uint           `json:"stock_id" gorm:"not null;index"`
	Stock    Stock          `json:"-" gorm:"foreignKey:StockID;references:ID"`
	BillNo   uint           `json:"billno" gorm:"index"`
	Quantity int            `json:"quantity"`
	UnitCost float64        `json:"unit_cost" gorm:"type:numeric(12,2)"`
	Date     datatypes.Date `json:"date" gorm:"index"`
}

type Sale struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	StockID   uint           `json:"stock_id" gorm:"not null;index"`
	Stock     Stock          `json:"-" gorm:"foreignKey:StockID;references:ID"`
	BillNo    uint           `json:"billno" gorm:"index"`
	Quantity  int            `json:"quantity"`
	UnitPrice float64        `json:"unit_price" gorm:"type:numeric(12,2)"`
	Date      datatypes.Date `json:"date" gorm:"index"`
}
