package models

import "time"

// SaleBill records the buyer inline; unlike purchases there is no
// customer master table.
type SaleBill struct {
	BillNo  uint       `json:"billno" gorm:"primaryKey"`
	Name    string     `json:"name" gorm:"not null"`
	Phone   string     `json:"phone"`
	Address string     `json:"address"`
	Email   string     `json:"email"`
	Time    time.Time  `json:"time" gorm:"autoCreateTime"`
	Items   []SaleItem `json:"items" gorm:"foreignKey:BillNo;constraint:OnDelete:CASCADE"`
}

type SaleItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	BillNo     uint    `json:"-" gorm:"index"`
	StockID    uint    `json:"stock_id" gorm:"not null;index"`
	Stock      Stock   `json:"stock" gorm:"foreignKey:StockID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Quantity   int     `json:"quantity"`
	PerPrice   float64 `json:"perprice" gorm:"type:numeric(12,2)"`
	TotalPrice float64 `json:"totalprice" gorm:"type:numeric(12,2)"`
}

type SaleBillDetails struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	BillNo      uint   `json:"billno" gorm:"uniqueIndex"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	TIN         string `json:"tin"`
	Destination string `json:"destination"`
	Notes       string `json:"notes"`
}
