package repositories

import (
	"context"

	"stockbook-backend/dto"
	"stockbook-backend/models"

	"gorm.io/gorm"
)

type SaleRepository interface {
	CreateBillTx(tx *gorm.DB, bill *models.SaleBill) error
	CreateDetailsTx(tx *gorm.DB, d *models.SaleBillDetails) error
	FindBill(ctx context.Context, billNo uint) (*models.SaleBill, error)
	FindDetails(ctx context.Context, billNo uint) (*models.SaleBillDetails, error)
	List(ctx context.Context, filter dto.BillFilter) ([]models.SaleBill, int64, error)
	Recent(ctx context.Context, limit int) ([]models.SaleBill, error)
	ItemsTx(tx *gorm.DB, billNo uint) ([]models.SaleItem, error)
	DeleteBillTx(tx *gorm.DB, billNo uint) error
	UpdateDetails(ctx context.Context, billNo uint, updates map[string]any) error
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateBillTx(tx *gorm.DB, bill *models.SaleBill) error {
	return tx.Create(bill).Error
}

func (r *saleRepo) CreateDetailsTx(tx *gorm.DB, d *models.SaleBillDetails) error {
	return tx.Create(d).Error
}

func (r *saleRepo) FindBill(ctx context.Context, billNo uint) (*models.SaleBill, error) {
	var bill models.SaleBill
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Stock").
		First(&bill, "bill_no = ?", billNo).Error
	return &bill, err
}

func (r *saleRepo) FindDetails(ctx context.Context, billNo uint) (*models.SaleBillDetails, error) {
	var d models.SaleBillDetails
	err := r.db.WithContext(ctx).Where("bill_no = ?", billNo).First(&d).Error
	return &d, err
}

func (r *saleRepo) List(ctx context.Context, filter dto.BillFilter) ([]models.SaleBill, int64, error) {
	var bills []models.SaleBill
	var total int64

	q := r.db.WithContext(ctx).Model(&models.SaleBill{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").
		Order("time DESC").Limit(filter.Limit).Offset(offset).Find(&bills).Error
	return bills, total, err
}

func (r *saleRepo) Recent(ctx context.Context, limit int) ([]models.SaleBill, error) {
	var bills []models.SaleBill
	err := r.db.WithContext(ctx).Order("time DESC").Limit(limit).Find(&bills).Error
	return bills, err
}

func (r *saleRepo) ItemsTx(tx *gorm.DB, billNo uint) ([]models.SaleItem, error) {
	var items []models.SaleItem
	err := tx.Where("bill_no = ?", billNo).Find(&items).Error
	return items, err
}

func (r *saleRepo) DeleteBillTx(tx *gorm.DB, billNo uint) error {
	if err := tx.Where("bill_no = ?", billNo).Delete(&models.SaleItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("bill_no = ?", billNo).Delete(&models.SaleBillDetails{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.SaleBill{}, "bill_no = ?", billNo).Error
}

func (r *saleRepo) UpdateDetails(ctx context.Context, billNo uint, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.SaleBillDetails{}).
		Where("bill_no = ?", billNo).Updates(updates).Error
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
