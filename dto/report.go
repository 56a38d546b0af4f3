package dto

import "stockbook-backend/models"

type BalanceRow struct {
	Name              string `json:"name"`
	QuantityAvailable int    `json:"quantity_available"`
	Purchased         int    `json:"purchased"`
	Sold              int    `json:"sold"`
	RemainingBalance  int    `json:"remaining_balance"`
}

type BalanceReport struct {
	Stocks         []BalanceRow `json:"stock_data"`
	TotalQuantity  int          `json:"total_quantity"`
	TotalPurchased int          `json:"total_purchased"`
	TotalSold      int          `json:"total_sold"`
	TotalRemaining int          `json:"total_remaining"`
}

type DatedRow struct {
	Name          string  `json:"name"`
	BeginQty      int     `json:"begin_qty"`
	BeginCost     float64 `json:"begin_cost"`
	PurchasedQty  int     `json:"purchased_qty"`
	PurchasedCost float64 `json:"purchased_cost"`
	SoldQty       int     `json:"sold_qty"`
	SoldCost      float64 `json:"sold_cost"`
	EndQty        int     `json:"end_qty"`
	EndCost       float64 `json:"end_cost"`
	AvgCost       float64 `json:"avg_cost"`
}

type DatedReport struct {
	Stocks          []DatedRow `json:"stocks"`
	TotalStocks     int        `json:"total_stocks"`
	TotalQuantity   int        `json:"total_quantity"`
	TotalEndingCost float64    `json:"total_ending_cost"`
	PeriodStart     string     `json:"period_start"`
	PeriodEnd       string     `json:"period_end"`
}

type Dashboard struct {
	TotalItems      int64                 `json:"total_items"`
	TotalQuantity   int64                 `json:"total_qty"`
	RecentPurchases []models.PurchaseBill `json:"recent_purchases"`
	RecentSales     []models.SaleBill     `json:"recent_sales"`
}
