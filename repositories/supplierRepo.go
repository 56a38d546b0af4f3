package repositories

import (
	"context"

	"stockbook-backend/dto"
	"stockbook-backend/models"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(ctx context.Context, s *models.Supplier) error
	FindByID(ctx context.Context, id uint) (*models.Supplier, error)
	List(ctx context.Context, filter dto.SupplierFilter) ([]models.Supplier, int64, error)
	Update(ctx context.Context, s *models.Supplier) error
	SoftDelete(ctx context.Context, id uint) error
	DB() *gorm.DB
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *models.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindByID(ctx context.Context, id uint) (*models.Supplier, error) {
	var s models.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *supplierRepo) List(ctx context.Context, filter dto.SupplierFilter) ([]models.Supplier, int64, error) {
	var suppliers []models.Supplier
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Supplier{}).Where("is_deleted = false")
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&suppliers).Error
	return suppliers, total, err
}

func (r *supplierRepo) Update(ctx context.Context, s *models.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *supplierRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Supplier{}).Where("id = ?", id).Update("is_deleted", true).Error
}

func (r *supplierRepo) DB() *gorm.DB { return r.db }
