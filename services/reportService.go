package services

import (
	"context"
	"time"

	"stockbook-backend/dto"
	"stockbook-backend/repositories"
	"stockbook-backend/utils"
)

// ReportService computes the read-only aggregates: lifetime balance per
// stock, the dated inventory valuation report, and the dashboard.
type ReportService interface {
	Balance(ctx context.Context) (*dto.BalanceReport, error)
	Dated(ctx context.Context, start, end time.Time) (*dto.DatedReport, error)
	Dashboard(ctx context.Context) (*dto.Dashboard, error)
}

// DefaultReportStart is the open-ended lower bound when no start date
// is given.
var DefaultReportStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type reportService struct {
	stocks    repositories.StockRepository
	ledger    repositories.LedgerRepository
	purchases repositories.PurchaseRepository
	sales     repositories.SaleRepository
}

func NewReportService(
	stocks repositories.StockRepository,
	ledger repositories.LedgerRepository,
	purchases repositories.PurchaseRepository,
	sales repositories.SaleRepository,
) ReportService {
	return &reportService{stocks: stocks, ledger: ledger, purchases: purchases, sales: sales}
}

func (s *reportService) Balance(ctx context.Context) (*dto.BalanceReport, error) {
	stocks, err := s.stocks.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	report := dto.BalanceReport{Stocks: make([]dto.BalanceRow, 0, len(stocks))}
	for _, stock := range stocks {
		purchased, err := s.ledger.PurchasedTotal(ctx, stock.ID)
		if err != nil {
			return nil, err
		}
		sold, err := s.ledger.SoldTotal(ctx, stock.ID)
		if err != nil {
			return nil, err
		}
		remaining := purchased - sold

		report.Stocks = append(report.Stocks, dto.BalanceRow{
			Name:              stock.Name,
			QuantityAvailable: stock.Quantity,
			Purchased:         purchased,
			Sold:              sold,
			RemainingBalance:  remaining,
		})
		report.TotalQuantity += stock.Quantity
		report.TotalPurchased += purchased
		report.TotalSold += sold
		report.TotalRemaining += remaining
	}
	return &report, nil
}

func (s *reportService) Dated(ctx context.Context, start, end time.Time) (*dto.DatedReport, error) {
	stocks, err := s.stocks.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	report := dto.DatedReport{
		Stocks:      make([]dto.DatedRow, 0, len(stocks)),
		TotalStocks: len(stocks),
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
	}

	for _, stock := range stocks {
		beginP, err := s.ledger.PurchaseAggBefore(ctx, stock.ID, start)
		if err != nil {
			return nil, err
		}
		beginS, err := s.ledger.SaleAggBefore(ctx, stock.ID, start)
		if err != nil {
			return nil, err
		}
		periodP, err := s.ledger.PurchaseAggRange(ctx, stock.ID, start, end)
		if err != nil {
			return nil, err
		}
		periodS, err := s.ledger.SaleAggRange(ctx, stock.ID, start, end)
		if err != nil {
			return nil, err
		}

		beginQty := beginP.Qty - beginS.Qty
		beginCost := beginP.Cost - beginS.Cost
		endQty := beginQty + periodP.Qty - periodS.Qty
		endCost := beginCost + periodP.Cost - periodS.Cost

		avgCost := 0.0
		if endQty > 0 {
			avgCost = utils.Round2(endCost / float64(endQty))
		}

		report.Stocks = append(report.Stocks, dto.DatedRow{
			Name:          stock.Name,
			BeginQty:      beginQty,
			BeginCost:     beginCost,
			PurchasedQty:  periodP.Qty,
			PurchasedCost: periodP.Cost,
			SoldQty:       periodS.Qty,
			SoldCost:      periodS.Cost,
			EndQty:        endQty,
			EndCost:       endCost,
			AvgCost:       avgCost,
		})
		report.TotalQuantity += endQty
		report.TotalEndingCost += endCost
	}
	return &report, nil
}

func (s *reportService) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	totalItems, err := s.stocks.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	totalQty, err := s.stocks.TotalQuantity(ctx)
	if err != nil {
		return nil, err
	}
	recentPurchases, err := s.purchases.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}
	recentSales, err := s.sales.Recent(ctx, 5)
	if err != nil {
		return nil, err
	}
	return &dto.Dashboard{
		TotalItems:      totalItems,
		TotalQuantity:   totalQty,
		RecentPurchases: recentPurchases,
		RecentSales:     recentSales,
	}, nil
}
