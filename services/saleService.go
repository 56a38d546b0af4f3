package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"stockbook-backend/dto"
	"stockbook-backend/models"
	"stockbook-backend/notify"
	"stockbook-backend/repositories"
	"stockbook-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SaleService is the sale-side billing workflow. Same atomic shape as
// purchases, with the stock effect inverted: creating a sale decreases
// quantities, deleting one restores them.
type SaleService interface {
	Create(ctx context.Context, in dto.SaleCreateDTO) (*models.SaleBill, error)
	Get(ctx context.Context, billNo uint) (*dto.SaleBillView, error)
	List(ctx context.Context, filter dto.BillFilter) (*dto.SaleListResponse, error)
	UpdateDetails(ctx context.Context, billNo uint, in dto.BillDetailsUpdateDTO) (*models.SaleBillDetails, error)
	Delete(ctx context.Context, billNo uint) error
}

type saleService struct {
	bills     repositories.SaleRepository
	stocks    repositories.StockRepository
	ledger    repositories.LedgerRepository
	inventory InventoryService
	sink      notify.Sink
}

func NewSaleService(
	bills repositories.SaleRepository,
	stocks repositories.StockRepository,
	ledger repositories.LedgerRepository,
	inventory InventoryService,
	sink notify.Sink,
) SaleService {
	return &saleService{
		bills:     bills,
		stocks:    stocks,
		ledger:    ledger,
		inventory: inventory,
		sink:      sink,
	}
}

func (s *saleService) Create(ctx context.Context, in dto.SaleCreateDTO) (*models.SaleBill, error) {
	utils.NormalizeDTO(&in)

	items := make([]models.SaleItem, 0, len(in.Items))
	for i, it := range in.Items {
		stock, err := s.stocks.FindByID(ctx, it.StockID)
		if err != nil || stock.IsDeleted {
			return nil, fmt.Errorf("item %d: %w", i, ErrStockNotFound)
		}
		items = append(items, models.SaleItem{
			StockID:    it.StockID,
			Quantity:   it.Quantity,
			PerPrice:   utils.Round2(it.PerPrice),
			TotalPrice: utils.Round2(it.PerPrice * float64(it.Quantity)),
		})
	}

	bill := models.SaleBill{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Email:   in.Email,
		Items:   items,
	}
	today := datatypes.Date(time.Now())

	txErr := runTx(ctx, s.bills.DB(), func(tx *gorm.DB) error {
		if err := s.bills.CreateBillTx(tx, &bill); err != nil {
			return err
		}
		if err := s.bills.CreateDetailsTx(tx, &models.SaleBillDetails{BillNo: bill.BillNo}); err != nil {
			return err
		}
		for _, item := range bill.Items {
			// Quantity may go negative: overselling is permitted.
			if err := s.inventory.DecreaseTx(tx, item.StockID, item.Quantity); err != nil {
				return err
			}
			entry := models.Sale{
				StockID:   item.StockID,
				BillNo:    bill.BillNo,
				Quantity:  item.Quantity,
				UnitPrice: item.PerPrice,
				Date:      today,
			}
			if err := s.ledger.CreateSaleEntryTx(tx, &entry); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		s.sink.Failure("Could not register sale")
		return nil, txErr
	}

	s.sink.Success("Sale registered successfully.")
	return &bill, nil
}

func (s *saleService) Get(ctx context.Context, billNo uint) (*dto.SaleBillView, error) {
	bill, err := s.bills.FindBill(ctx, billNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}
	details, err := s.bills.FindDetails(ctx, billNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	var subtotal float64
	for _, item := range bill.Items {
		subtotal += item.TotalPrice
	}

	return &dto.SaleBillView{
		Bill:    bill,
		Details: details,
		Summary: billSummary(subtotal),
	}, nil
}

func (s *saleService) List(ctx context.Context, filter dto.BillFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	bills, total, err := s.bills.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &dto.SaleListResponse{
		Data:  bills,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *saleService) UpdateDetails(ctx context.Context, billNo uint, in dto.BillDetailsUpdateDTO) (*models.SaleBillDetails, error) {
	if _, err := s.bills.FindDetails(ctx, billNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	updates := map[string]any{}
	if in.Address != nil {
		updates["address"] = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.TIN != nil {
		updates["tin"] = strings.TrimSpace(*in.TIN)
	}
	if in.Destination != nil {
		updates["destination"] = strings.TrimSpace(*in.Destination)
	}
	if in.Notes != nil {
		updates["notes"] = strings.TrimSpace(*in.Notes)
	}

	if len(updates) > 0 {
		if err := s.bills.UpdateDetails(ctx, billNo, updates); err != nil {
			return nil, err
		}
	}

	s.sink.Success("Sale bill updated.")
	return s.bills.FindDetails(ctx, billNo)
}

func (s *saleService) Delete(ctx context.Context, billNo uint) error {
	if _, err := s.bills.FindBill(ctx, billNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBillNotFound
		}
		return err
	}

	txErr := runTx(ctx, s.bills.DB(), func(tx *gorm.DB) error {
		items, err := s.bills.ItemsTx(tx, billNo)
		if err != nil {
			return err
		}
		// Undo the sale: sold quantities go back on the shelf.
		for _, item := range items {
			if err := s.inventory.ReverseTx(tx, item.StockID, item.Quantity); err != nil {
				return err
			}
		}
		if err := s.ledger.DeleteSaleEntriesTx(tx, billNo); err != nil {
			return err
		}
		return s.bills.DeleteBillTx(tx, billNo)
	})
	if txErr != nil {
		s.sink.Failure("Could not delete sale bill")
		return txErr
	}

	s.sink.Success("Sale bill deleted successfully.")
	return nil
}
