package services

import (
	"context"
	"testing"
	"time"

	"stockbook-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type reportFixture struct {
	stocks    *stockStub
	ledger    *ledgerStub
	purchases *purchaseStub
	sales     *saleStub
	svc       ReportService
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		stocks:    newStockStub(),
		ledger:    newLedgerStub(),
		purchases: newPurchaseStub(),
		sales:     newSaleStub(),
	}
	f.svc = NewReportService(f.stocks, f.ledger, f.purchases, f.sales)
	return f
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func (f *reportFixture) purchased(stockID uint, qty int, cost float64, date datatypes.Date) {
	f.ledger.purchases = append(f.ledger.purchases, models.Purchase{
		StockID: stockID, Quantity: qty, UnitCost: cost, Date: date,
	})
}

func (f *reportFixture) sold(stockID uint, qty int, price float64, date datatypes.Date) {
	f.ledger.sales = append(f.ledger.sales, models.Sale{
		StockID: stockID, Quantity: qty, UnitPrice: price, Date: date,
	})
}

func TestBalanceReport(t *testing.T) {
	f := newReportFixture()
	pen := f.stocks.add("Pen", 30)
	ruler := f.stocks.add("Ruler", 7)

	f.purchased(pen.ID, 50, 2, day(2026, 1, 10))
	f.sold(pen.ID, 20, 3, day(2026, 2, 5))
	f.purchased(ruler.ID, 7, 10, day(2026, 1, 15))

	report, err := f.svc.Balance(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Stocks, 2)

	penRow := report.Stocks[0]
	assert.Equal(t, "Pen", penRow.Name)
	assert.Equal(t, 50, penRow.Purchased)
	assert.Equal(t, 20, penRow.Sold)
	assert.Equal(t, 30, penRow.RemainingBalance)
	// The derived balance agrees with the stored quantity.
	assert.Equal(t, penRow.QuantityAvailable, penRow.RemainingBalance)

	assert.Equal(t, 37, report.TotalQuantity)
	assert.Equal(t, 57, report.TotalPurchased)
	assert.Equal(t, 20, report.TotalSold)
	assert.Equal(t, 37, report.TotalRemaining)
}

func TestBalanceReportExcludesDeletedStocks(t *testing.T) {
	f := newReportFixture()
	pen := f.stocks.add("Pen", 10)
	gone := f.stocks.add("Staples", 4)
	gone.IsDeleted = true

	f.purchased(pen.ID, 10, 1, day(2026, 1, 1))

	report, err := f.svc.Balance(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Stocks, 1)
	assert.Equal(t, "Pen", report.Stocks[0].Name)
}

func TestDatedReportSplitsPeriods(t *testing.T) {
	f := newReportFixture()
	pen := f.stocks.add("Pen", 40)

	// Before the window: 50 in at 2.00, 20 out at 3.00.
	f.purchased(pen.ID, 50, 2, day(2026, 1, 10))
	f.sold(pen.ID, 20, 3, day(2026, 1, 20))
	// Inside the window: 30 in at 2.50, 20 out at 4.00.
	f.purchased(pen.ID, 30, 2.5, day(2026, 2, 10))
	f.sold(pen.ID, 20, 4, day(2026, 2, 15))

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	report, err := f.svc.Dated(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, report.Stocks, 1)

	row := report.Stocks[0]
	assert.Equal(t, 30, row.BeginQty)             // 50 - 20
	assert.Equal(t, 40.0, row.BeginCost)          // 100 - 60
	assert.Equal(t, 30, row.PurchasedQty)
	assert.Equal(t, 75.0, row.PurchasedCost)
	assert.Equal(t, 20, row.SoldQty)
	assert.Equal(t, 80.0, row.SoldCost)
	assert.Equal(t, row.BeginQty+row.PurchasedQty-row.SoldQty, row.EndQty)
	assert.Equal(t, 40, row.EndQty)
	assert.Equal(t, 35.0, row.EndCost) // 40 + 75 - 80
	assert.Equal(t, 0.88, row.AvgCost) // 35 / 40 rounded

	assert.Equal(t, "2026-02-01", report.PeriodStart)
	assert.Equal(t, "2026-02-28", report.PeriodEnd)
	assert.Equal(t, 40, report.TotalQuantity)
	assert.Equal(t, 35.0, report.TotalEndingCost)
}

func TestDatedReportSingleDayWindow(t *testing.T) {
	f := newReportFixture()
	pen := f.stocks.add("Pen", 10)

	target := day(2026, 3, 5)
	f.purchased(pen.ID, 10, 2, target)

	on := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	report, err := f.svc.Dated(context.Background(), on, on)
	require.NoError(t, err)

	row := report.Stocks[0]
	assert.Equal(t, 0, row.BeginQty)
	assert.Equal(t, 10, row.PurchasedQty)
	assert.Equal(t, 10, row.EndQty)
}

func TestDatedReportAvgCostZeroWhenNothingLeft(t *testing.T) {
	f := newReportFixture()
	pen := f.stocks.add("Pen", 0)

	f.purchased(pen.ID, 10, 2, day(2026, 1, 5))
	f.sold(pen.ID, 10, 5, day(2026, 1, 10))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	report, err := f.svc.Dated(context.Background(), start, end)
	require.NoError(t, err)

	row := report.Stocks[0]
	assert.Equal(t, 0, row.EndQty)
	assert.Equal(t, 0.0, row.AvgCost)
}

func TestDashboard(t *testing.T) {
	f := newReportFixture()
	f.stocks.add("Pen", 30)
	f.stocks.add("Ruler", 7)
	gone := f.stocks.add("Staples", 100)
	gone.IsDeleted = true

	for i := 0; i < 7; i++ {
		require.NoError(t, f.purchases.CreateBillTx(nil, &models.PurchaseBill{SupplierID: 1}))
	}
	require.NoError(t, f.sales.CreateBillTx(nil, &models.SaleBill{Name: "Kebede"}))

	dash, err := f.svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), dash.TotalItems)
	assert.Equal(t, int64(37), dash.TotalQuantity)
	assert.Len(t, dash.RecentPurchases, 5)
	assert.Len(t, dash.RecentSales, 1)
}
