package repositories

import (
	"context"
	"time"

	"stockbook-backend/models"

	"gorm.io/gorm"
)

// LedgerAgg is a quantity/cost sum over a set of ledger rows.
type LedgerAgg struct {
	Qty  int     `gorm:"column:qty"`
	Cost float64 `gorm:"column:cost"`
}

// LedgerRepository owns the historical Purchase/Sale rows the reports
// aggregate over. "Before" queries are exclusive of the given date,
// "Range" queries are inclusive on both ends.
type LedgerRepository interface {
	CreatePurchaseEntryTx(tx *gorm.DB, p *models.Purchase) error
	CreateSaleEntryTx(tx *gorm.DB, s *models.Sale) error
	DeletePurchaseEntriesTx(tx *gorm.DB, billNo uint) error
	DeleteSaleEntriesTx(tx *gorm.DB, billNo uint) error

	PurchasedTotal(ctx context.Context, stockID uint) (int, error)
	SoldTotal(ctx context.Context, stockID uint) (int, error)
	PurchaseAggBefore(ctx context.Context, stockID uint, before time.Time) (LedgerAgg, error)
	SaleAggBefore(ctx context.Context, stockID uint, before time.Time) (LedgerAgg, error)
	PurchaseAggRange(ctx context.Context, stockID uint, start, end time.Time) (LedgerAgg, error)
	SaleAggRange(ctx context.Context, stockID uint, start, end time.Time) (LedgerAgg, error)
}

type ledgerRepo struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) LedgerRepository { return &ledgerRepo{db: db} }

func (r *ledgerRepo) CreatePurchaseEntryTx(tx *gorm.DB, p *models.Purchase) error {
	return tx.Create(p).Error
}

func (r *ledgerRepo) CreateSaleEntryTx(tx *gorm.DB, s *models.Sale) error {
	return tx.Create(s).Error
}

func (r *ledgerRepo) DeletePurchaseEntriesTx(tx *gorm.DB, billNo uint) error {
	return tx.Where("bill_no = ?", billNo).Delete(&models.Purchase{}).Error
}

func (r *ledgerRepo) DeleteSaleEntriesTx(tx *gorm.DB, billNo uint) error {
	return tx.Where("bill_no = ?", billNo).Delete(&models.Sale{}).Error
}

func (r *ledgerRepo) PurchasedTotal(ctx context.Context, stockID uint) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("stock_id = ?", stockID).
		Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	return total, err
}

func (r *ledgerRepo) SoldTotal(ctx context.Context, stockID uint) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Model(&models.Sale{}).
		Where("stock_id = ?", stockID).
		Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	return total, err
}

const (
	purchaseAggSelect = "COALESCE(SUM(quantity), 0) AS qty, COALESCE(SUM(quantity * unit_cost), 0) AS cost"
	saleAggSelect     = "COALESCE(SUM(quantity), 0) AS qty, COALESCE(SUM(quantity * unit_price), 0) AS cost"
)

func (r *ledgerRepo) PurchaseAggBefore(ctx context.Context, stockID uint, before time.Time) (LedgerAgg, error) {
	var agg LedgerAgg
	err := r.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("stock_id = ? AND date < ?", stockID, before).
		Select(purchaseAggSelect).Scan(&agg).Error
	return agg, err
}

func (r *ledgerRepo) SaleAggBefore(ctx context.Context, stockID uint, before time.Time) (LedgerAgg, error) {
	var agg LedgerAgg
	err := r.db.WithContext(ctx).Model(&models.Sale{}).
		Where("stock_id = ? AND date < ?", stockID, before).
		Select(saleAggSelect).Scan(&agg).Error
	return agg, err
}

func (r *ledgerRepo) PurchaseAggRange(ctx context.Context, stockID uint, start, end time.Time) (LedgerAgg, error) {
	var agg LedgerAgg
	err := r.db.WithContext(ctx).Model(&models.Purchase{}).
		Where("stock_id = ? AND date >= ? AND date <= ?", stockID, start, end).
		Select(purchaseAggSelect).Scan(&agg).Error
	return agg, err
}

func (r *ledgerRepo) SaleAggRange(ctx context.Context, stockID uint, start, end time.Time) (LedgerAgg, error) {
	var agg LedgerAgg
	err := r.db.WithContext(ctx).Model(&models.Sale{}).
		Where("stock_id = ? AND date >= ? AND date <= ?", stockID, start, end).
		Select(saleAggSelect).Scan(&agg).Error
	return agg, err
}
