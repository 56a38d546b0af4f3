package services

import (
	"context"
	"errors"

	"stockbook-backend/dto"
	"stockbook-backend/models"
	"stockbook-backend/notify"
	"stockbook-backend/repositories"
	"stockbook-backend/utils"

	"gorm.io/gorm"
)

type SupplierService interface {
	Create(ctx context.Context, in dto.SupplierCreateDTO) (*models.Supplier, error)
	// Get returns the supplier together with their purchase bills.
	Get(ctx context.Context, id uint) (*dto.SupplierView, error)
	List(ctx context.Context, filter dto.SupplierFilter) (*dto.SupplierListResponse, error)
	Update(ctx context.Context, id uint, in dto.SupplierUpdateDTO) (*models.Supplier, error)
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	suppliers repositories.SupplierRepository
	purchases repositories.PurchaseRepository
	sink      notify.Sink
}

func NewSupplierService(suppliers repositories.SupplierRepository, purchases repositories.PurchaseRepository, sink notify.Sink) SupplierService {
	return &supplierService{suppliers: suppliers, purchases: purchases, sink: sink}
}

func (s *supplierService) Create(ctx context.Context, in dto.SupplierCreateDTO) (*models.Supplier, error) {
	utils.NormalizeDTO(&in)

	supplier := models.Supplier{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Email:   in.Email,
		TIN:     in.TIN,
	}
	if err := s.suppliers.Create(ctx, &supplier); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.sink.Success("Supplier created successfully")
	return &supplier, nil
}

func (s *supplierService) find(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	if supplier.IsDeleted {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

func (s *supplierService) Get(ctx context.Context, id uint) (*dto.SupplierView, error) {
	supplier, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	bills, err := s.purchases.ListBySupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierView{Supplier: supplier, Bills: bills}, nil
}

func (s *supplierService) List(ctx context.Context, filter dto.SupplierFilter) (*dto.SupplierListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	suppliers, total, err := s.suppliers.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.SupplierListResponse{
		Data:  suppliers,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, in dto.SupplierUpdateDTO) (*models.Supplier, error) {
	utils.NormalizePtrDTO(&in)

	supplier, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.TIN != nil {
		supplier.TIN = *in.TIN
	}

	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}

	s.sink.Success("Supplier updated successfully")
	return supplier, nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.suppliers.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.sink.Success("Supplier deleted successfully")
	return nil
}
