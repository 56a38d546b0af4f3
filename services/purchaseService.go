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

// PurchaseService orchestrates purchase bills: header, line items, the
// 1:1 details row, the stock-quantity side effects and the historical
// ledger rows are written in one transaction or not at all.
type PurchaseService interface {
	Create(ctx context.Context, in dto.PurchaseCreateDTO) (*models.PurchaseBill, error)
	Get(ctx context.Context, billNo uint) (*dto.PurchaseBillView, error)
	List(ctx context.Context, filter dto.BillFilter) (*dto.PurchaseListResponse, error)
	UpdateDetails(ctx context.Context, billNo uint, in dto.BillDetailsUpdateDTO) (*models.PurchaseBillDetails, error)
	Delete(ctx context.Context, billNo uint) error
}

type purchaseService struct {
	bills     repositories.PurchaseRepository
	stocks    repositories.StockRepository
	suppliers repositories.SupplierRepository
	ledger    repositories.LedgerRepository
	inventory InventoryService
	sink      notify.Sink
}

func NewPurchaseService(
	bills repositories.PurchaseRepository,
	stocks repositories.StockRepository,
	suppliers repositories.SupplierRepository,
	ledger repositories.LedgerRepository,
	inventory InventoryService,
	sink notify.Sink,
) PurchaseService {
	return &purchaseService{
		bills:     bills,
		stocks:    stocks,
		suppliers: suppliers,
		ledger:    ledger,
		inventory: inventory,
		sink:      sink,
	}
}

func (s *purchaseService) Create(ctx context.Context, in dto.PurchaseCreateDTO) (*models.PurchaseBill, error) {
	supplier, err := s.suppliers.FindByID(ctx, in.SupplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		return nil, err
	}
	if supplier.IsDeleted {
		return nil, ErrSupplierNotFound
	}

	// Resolve every line item before touching the database: a single bad
	// item aborts the whole bill.
	items := make([]models.PurchaseItem, 0, len(in.Items))
	for i, it := range in.Items {
		stock, err := s.stocks.FindByID(ctx, it.StockID)
		if err != nil || stock.IsDeleted {
			return nil, fmt.Errorf("item %d: %w", i, ErrStockNotFound)
		}
		items = append(items, models.PurchaseItem{
			StockID:    it.StockID,
			Quantity:   it.Quantity,
			PerPrice:   utils.Round2(it.PerPrice),
			TotalPrice: utils.Round2(it.PerPrice * float64(it.Quantity)),
		})
	}

	bill := models.PurchaseBill{
		SupplierID: in.SupplierID,
		Items:      items,
	}
	today := datatypes.Date(time.Now())

	txErr := runTx(ctx, s.bills.DB(), func(tx *gorm.DB) error {
		if err := s.bills.CreateBillTx(tx, &bill); err != nil {
			return err
		}
		if err := s.bills.CreateDetailsTx(tx, &models.PurchaseBillDetails{BillNo: bill.BillNo}); err != nil {
			return err
		}
		for _, item := range bill.Items {
			if err := s.inventory.IncreaseTx(tx, item.StockID, item.Quantity); err != nil {
				return err
			}
			entry := models.Purchase{
				StockID:  item.StockID,
				BillNo:   bill.BillNo,
				Quantity: item.Quantity,
				UnitCost: item.PerPrice,
				Date:     today,
			}
			if err := s.ledger.CreatePurchaseEntryTx(tx, &entry); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		s.sink.Failure("Could not register purchase")
		return nil, txErr
	}

	s.sink.Success("Purchased items registered successfully.")
	return &bill, nil
}

func (s *purchaseService) Get(ctx context.Context, billNo uint) (*dto.PurchaseBillView, error) {
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

	return &dto.PurchaseBillView{
		Bill:    bill,
		Details: details,
		Summary: billSummary(subtotal),
	}, nil
}

func (s *purchaseService) List(ctx context.Context, filter dto.BillFilter) (*dto.PurchaseListResponse, error) {
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
	return &dto.PurchaseListResponse{
		Data:  bills,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// UpdateDetails edits header fields only, through an explicit whitelist.
// Quantities and prices are never touched here.
func (s *purchaseService) UpdateDetails(ctx context.Context, billNo uint, in dto.BillDetailsUpdateDTO) (*models.PurchaseBillDetails, error) {
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

	s.sink.Success("Purchase bill updated.")
	return s.bills.FindDetails(ctx, billNo)
}

func (s *purchaseService) Delete(ctx context.Context, billNo uint) error {
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
		// Undo the purchase: each item's quantity comes back off the shelf.
		for _, item := range items {
			if err := s.inventory.ReverseTx(tx, item.StockID, -item.Quantity); err != nil {
				return err
			}
		}
		if err := s.ledger.DeletePurchaseEntriesTx(tx, billNo); err != nil {
			return err
		}
		return s.bills.DeleteBillTx(tx, billNo)
	})
	if txErr != nil {
		s.sink.Failure("Could not delete purchase bill")
		return txErr
	}

	s.sink.Success("Purchase bill deleted successfully.")
	return nil
}
