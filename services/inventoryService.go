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

// InventoryService owns the stock catalogue and the running on-hand
// quantity per item. The *Tx methods are the ledger mutations the
// billing workflows call inside their transactions.
type InventoryService interface {
	CreateStock(ctx context.Context, in dto.StockCreateDTO) (*models.Stock, error)
	GetStock(ctx context.Context, id uint) (*models.Stock, error)
	ListStocks(ctx context.Context, filter dto.StockFilter) (*dto.StockListResponse, error)
	UpdateStock(ctx context.Context, id uint, in dto.StockUpdateDTO) (*models.Stock, error)
	DeleteStock(ctx context.Context, id uint) error

	// IncreaseTx / DecreaseTx adjust the on-hand quantity by the given
	// amount. No negative floor is enforced: selling past zero is allowed.
	IncreaseTx(tx *gorm.DB, stockID uint, qty int) error
	DecreaseTx(tx *gorm.DB, stockID uint, qty int) error
	// ReverseTx undoes a bill's effect on one stock. Soft-deleted stocks
	// are skipped: their history must not be rewritten by a deletion.
	ReverseTx(tx *gorm.DB, stockID uint, delta int) error
}

type inventoryService struct {
	stocks repositories.StockRepository
	sink   notify.Sink
}

func NewInventoryService(stocks repositories.StockRepository, sink notify.Sink) InventoryService {
	return &inventoryService{stocks: stocks, sink: sink}
}

func (s *inventoryService) CreateStock(ctx context.Context, in dto.StockCreateDTO) (*models.Stock, error) {
	utils.NormalizeDTO(&in)

	stock := models.Stock{
		Name:     in.Name,
		Quantity: in.Quantity,
	}
	if err := s.stocks.Create(ctx, &stock); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.sink.Success("Stock has been created successfully")
	return &stock, nil
}

func (s *inventoryService) GetStock(ctx context.Context, id uint) (*models.Stock, error) {
	stock, err := s.stocks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStockNotFound
		}
		return nil, err
	}
	if stock.IsDeleted {
		return nil, ErrStockNotFound
	}
	return stock, nil
}

func (s *inventoryService) ListStocks(ctx context.Context, filter dto.StockFilter) (*dto.StockListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	stocks, total, err := s.stocks.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StockRow, 0, len(stocks))
	for _, st := range stocks {
		rows = append(rows, dto.StockRow{ID: st.ID, Name: st.Name, Quantity: st.Quantity})
	}
	return &dto.StockListResponse{
		Data:  rows,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *inventoryService) UpdateStock(ctx context.Context, id uint, in dto.StockUpdateDTO) (*models.Stock, error) {
	utils.NormalizePtrDTO(&in)

	stock, err := s.GetStock(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		stock.Name = *in.Name
	}
	if in.Quantity != nil {
		stock.Quantity = *in.Quantity
	}

	if err := s.stocks.Update(ctx, stock); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	s.sink.Success("Stock has been updated successfully")
	return stock, nil
}

func (s *inventoryService) DeleteStock(ctx context.Context, id uint) error {
	if _, err := s.GetStock(ctx, id); err != nil {
		return err
	}
	if err := s.stocks.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.sink.Success("Stock has been deleted successfully")
	return nil
}

func (s *inventoryService) IncreaseTx(tx *gorm.DB, stockID uint, qty int) error {
	return s.stocks.AdjustQuantityTx(tx, stockID, qty)
}

func (s *inventoryService) DecreaseTx(tx *gorm.DB, stockID uint, qty int) error {
	return s.stocks.AdjustQuantityTx(tx, stockID, -qty)
}

func (s *inventoryService) ReverseTx(tx *gorm.DB, stockID uint, delta int) error {
	stock, err := s.stocks.FindByIDTx(tx, stockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStockNotFound
		}
		return err
	}
	if stock.IsDeleted {
		return nil
	}
	return s.stocks.AdjustQuantityTx(tx, stockID, delta)
}
