package models

// Stock is one inventory item and its current on-hand quantity.
// Quantity is maintained by the billing workflow: purchases add,
// sales subtract, bill deletions reverse.
type Stock struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:30;not null;unique"`
	Quantity  int    `json:"quantity"`
	IsDeleted bool   `json:"-" gorm:"index"`
}
