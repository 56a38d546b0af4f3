package repositories

import (
	"context"

	"stockbook-backend/dto"
	"stockbook-backend/models"

	"gorm.io/gorm"
)

type PurchaseRepository interface {
	// CreateBillTx inserts the bill header together with its line items.
	CreateBillTx(tx *gorm.DB, bill *models.PurchaseBill) error
	CreateDetailsTx(tx *gorm.DB, d *models.PurchaseBillDetails) error
	FindBill(ctx context.Context, billNo uint) (*models.PurchaseBill, error)
	FindDetails(ctx context.Context, billNo uint) (*models.PurchaseBillDetails, error)
	List(ctx context.Context, filter dto.BillFilter) ([]models.PurchaseBill, int64, error)
	ListBySupplier(ctx context.Context, supplierID uint) ([]models.PurchaseBill, error)
	Recent(ctx context.Context, limit int) ([]models.PurchaseBill, error)
	ItemsTx(tx *gorm.DB, billNo uint) ([]models.PurchaseItem, error)
	// DeleteBillTx removes items, details and the bill header, in that order.
	DeleteBillTx(tx *gorm.DB, billNo uint) error
	UpdateDetails(ctx context.Context, billNo uint, updates map[string]any) error
	DB() *gorm.DB
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) CreateBillTx(tx *gorm.DB, bill *models.PurchaseBill) error {
	return tx.Create(bill).Error
}

func (r *purchaseRepo) CreateDetailsTx(tx *gorm.DB, d *models.PurchaseBillDetails) error {
	return tx.Create(d).Error
}

func (r *purchaseRepo) FindBill(ctx context.Context, billNo uint) (*models.PurchaseBill, error) {
	var bill models.PurchaseBill
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items").
		Preload("Items.Stock").
		First(&bill, "bill_no = ?", billNo).Error
	return &bill, err
}

func (r *purchaseRepo) FindDetails(ctx context.Context, billNo uint) (*models.PurchaseBillDetails, error) {
	var d models.PurchaseBillDetails
	err := r.db.WithContext(ctx).Where("bill_no = ?", billNo).First(&d).Error
	return &d, err
}

func (r *purchaseRepo) List(ctx context.Context, filter dto.BillFilter) ([]models.PurchaseBill, int64, error) {
	var bills []models.PurchaseBill
	var total int64

	q := r.db.WithContext(ctx).Model(&models.PurchaseBill{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Supplier").Preload("Items").
		Order("time DESC").Limit(filter.Limit).Offset(offset).Find(&bills).Error
	return bills, total, err
}

func (r *purchaseRepo) ListBySupplier(ctx context.Context, supplierID uint) ([]models.PurchaseBill, error) {
	var bills []models.PurchaseBill
	err := r.db.WithContext(ctx).Preload("Items").
		Where("supplier_id = ?", supplierID).Order("time DESC").Find(&bills).Error
	return bills, err
}

func (r *purchaseRepo) Recent(ctx context.Context, limit int) ([]models.PurchaseBill, error) {
	var bills []models.PurchaseBill
	err := r.db.WithContext(ctx).Preload("Supplier").
		Order("time DESC").Limit(limit).Find(&bills).Error
	return bills, err
}

func (r *purchaseRepo) ItemsTx(tx *gorm.DB, billNo uint) ([]models.PurchaseItem, error) {
	var items []models.PurchaseItem
	err := tx.Where("bill_no = ?", billNo).Find(&items).Error
	return items, err
}

func (r *purchaseRepo) DeleteBillTx(tx *gorm.DB, billNo uint) error {
	if err := tx.Where("bill_no = ?", billNo).Delete(&models.PurchaseItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("bill_no = ?", billNo).Delete(&models.PurchaseBillDetails{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.PurchaseBill{}, "bill_no = ?", billNo).Error
}

func (r *purchaseRepo) UpdateDetails(ctx context.Context, billNo uint, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.PurchaseBillDetails{}).
		Where("bill_no = ?", billNo).Updates(updates).Error
}

func (r *purchaseRepo) DB() *gorm.DB { return r.db }
