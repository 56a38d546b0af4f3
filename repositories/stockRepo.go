package repositories

import (
	"context"

	"stockbook-backend/dto"
	"stockbook-backend/models"

	"gorm.io/gorm"
)

// StockRepository is the data-access contract for inventory items.
// Services depend on this interface, not on the GORM implementation,
// so the workflow logic can be unit tested against in-memory stubs.
type StockRepository interface {
	Create(ctx context.Context, s *models.Stock) error
	FindByID(ctx context.Context, id uint) (*models.Stock, error)
	FindByName(ctx context.Context, name string) (*models.Stock, error)
	List(ctx context.Context, filter dto.StockFilter) ([]models.Stock, int64, error)
	// ListActive returns every non-deleted stock ordered by name (report order).
	ListActive(ctx context.Context) ([]models.Stock, error)
	Update(ctx context.Context, s *models.Stock) error
	SoftDelete(ctx context.Context, id uint) error
	CountActive(ctx context.Context) (int64, error)
	TotalQuantity(ctx context.Context) (int64, error)

	// Used inside bill transactions — callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uint) (*models.Stock, error)
	AdjustQuantityTx(tx *gorm.DB, id uint, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type stockRepo struct{ db *gorm.DB }

func NewStockRepository(db *gorm.DB) StockRepository { return &stockRepo{db: db} }

func (r *stockRepo) Create(ctx context.Context, s *models.Stock) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *stockRepo) FindByID(ctx context.Context, id uint) (*models.Stock, error) {
	var s models.Stock
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *stockRepo) FindByName(ctx context.Context, name string) (*models.Stock, error) {
	var s models.Stock
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	return &s, err
}

func (r *stockRepo) List(ctx context.Context, filter dto.StockFilter) ([]models.Stock, int64, error) {
	var stocks []models.Stock
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Stock{}).Where("is_deleted = false")
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&stocks).Error
	return stocks, total, err
}

func (r *stockRepo) ListActive(ctx context.Context) ([]models.Stock, error) {
	var stocks []models.Stock
	err := r.db.WithContext(ctx).Where("is_deleted = false").Order("name ASC").Find(&stocks).Error
	return stocks, err
}

func (r *stockRepo) Update(ctx context.Context, s *models.Stock) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *stockRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Stock{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (r *stockRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Stock{}).Where("is_deleted = false").Count(&n).Error
	return n, err
}

func (r *stockRepo) TotalQuantity(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Stock{}).Where("is_deleted = false").
		Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	return total, err
}

func (r *stockRepo) FindByIDTx(tx *gorm.DB, id uint) (*models.Stock, error) {
	var s models.Stock
	err := tx.First(&s, id).Error
	return &s, err
}

func (r *stockRepo) AdjustQuantityTx(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&models.Stock{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *stockRepo) DB() *gorm.DB { return r.db }
