package models

// Supplier is soft-deleted, never removed: purchase bills keep
// referencing it after deletion.
type Supplier struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null;unique"`
	Phone     string `json:"phone" gorm:"not null"`
	Address   string `json:"address" gorm:"not null"`
	Email     string `json:"email"`
	TIN       string `json:"tin"`
	IsDeleted bool   `json:"-" gorm:"index"`
}
