package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"stockbook-backend/dto"
	"stockbook-backend/models"
	"stockbook-backend/repositories"

	"gorm.io/gorm"
)

// In-memory repository stubs. DB() returns nil so runTx executes the
// callback directly without a database.

type testSink struct {
	successes []string
	failures  []string
}

func (s *testSink) Success(msg string) { s.successes = append(s.successes, msg) }
func (s *testSink) Failure(msg string) { s.failures = append(s.failures, msg) }

// ---- stocks

type stockStub struct {
	stocks map[uint]*models.Stock
	nextID uint
}

func newStockStub() *stockStub {
	return &stockStub{stocks: map[uint]*models.Stock{}, nextID: 1}
}

func (r *stockStub) add(name string, qty int) *models.Stock {
	s := &models.Stock{ID: r.nextID, Name: name, Quantity: qty}
	r.stocks[s.ID] = s
	r.nextID++
	return s
}

func (r *stockStub) Create(_ context.Context, s *models.Stock) error {
	for _, existing := range r.stocks {
		if existing.Name == s.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.stocks[s.ID] = &cp
	return nil
}

func (r *stockStub) FindByID(_ context.Context, id uint) (*models.Stock, error) {
	s, ok := r.stocks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stockStub) FindByName(_ context.Context, name string) (*models.Stock, error) {
	for _, s := range r.stocks {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stockStub) List(_ context.Context, filter dto.StockFilter) ([]models.Stock, int64, error) {
	var out []models.Stock
	for _, s := range r.stocks {
		if s.IsDeleted {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	total := int64(len(out))

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (r *stockStub) ListActive(_ context.Context) ([]models.Stock, error) {
	var out []models.Stock
	for _, s := range r.stocks {
		if !s.IsDeleted {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stockStub) Update(_ context.Context, s *models.Stock) error {
	cp := *s
	r.stocks[s.ID] = &cp
	return nil
}

func (r *stockStub) SoftDelete(_ context.Context, id uint) error {
	if s, ok := r.stocks[id]; ok {
		s.IsDeleted = true
	}
	return nil
}

func (r *stockStub) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, s := range r.stocks {
		if !s.IsDeleted {
			n++
		}
	}
	return n, nil
}

func (r *stockStub) TotalQuantity(_ context.Context) (int64, error) {
	var total int64
	for _, s := range r.stocks {
		if !s.IsDeleted {
			total += int64(s.Quantity)
		}
	}
	return total, nil
}

func (r *stockStub) FindByIDTx(_ *gorm.DB, id uint) (*models.Stock, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stockStub) AdjustQuantityTx(_ *gorm.DB, id uint, delta int) error {
	s, ok := r.stocks[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Quantity += delta
	return nil
}

func (r *stockStub) DB() *gorm.DB { return nil }

// ---- suppliers

type supplierStub struct {
	suppliers map[uint]*models.Supplier
	nextID    uint
}

func newSupplierStub() *supplierStub {
	return &supplierStub{suppliers: map[uint]*models.Supplier{}, nextID: 1}
}

func (r *supplierStub) add(name string) *models.Supplier {
	s := &models.Supplier{ID: r.nextID, Name: name}
	r.suppliers[s.ID] = s
	r.nextID++
	return s
}

func (r *supplierStub) Create(_ context.Context, s *models.Supplier) error {
	for _, existing := range r.suppliers {
		if existing.Name == s.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	s.ID = r.nextID
	r.nextID++
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *supplierStub) FindByID(_ context.Context, id uint) (*models.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *supplierStub) List(_ context.Context, filter dto.SupplierFilter) ([]models.Supplier, int64, error) {
	var out []models.Supplier
	for _, s := range r.suppliers {
		if !s.IsDeleted {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	total := int64(len(out))

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (r *supplierStub) Update(_ context.Context, s *models.Supplier) error {
	cp := *s
	r.suppliers[s.ID] = &cp
	return nil
}

func (r *supplierStub) SoftDelete(_ context.Context, id uint) error {
	if s, ok := r.suppliers[id]; ok {
		s.IsDeleted = true
	}
	return nil
}

func (r *supplierStub) DB() *gorm.DB { return nil }

// ---- purchase bills

type purchaseStub struct {
	bills      map[uint]*models.PurchaseBill
	details    map[uint]*models.PurchaseBillDetails
	nextBillNo uint
}

func newPurchaseStub() *purchaseStub {
	return &purchaseStub{
		bills:      map[uint]*models.PurchaseBill{},
		details:    map[uint]*models.PurchaseBillDetails{},
		nextBillNo: 1,
	}
}

func (r *purchaseStub) CreateBillTx(_ *gorm.DB, bill *models.PurchaseBill) error {
	bill.BillNo = r.nextBillNo
	r.nextBillNo++
	bill.Time = time.Now()
	for i := range bill.Items {
		bill.Items[i].BillNo = bill.BillNo
		bill.Items[i].ID = uint(i + 1)
	}
	cp := *bill
	cp.Items = append([]models.PurchaseItem(nil), bill.Items...)
	r.bills[bill.BillNo] = &cp
	return nil
}

func (r *purchaseStub) CreateDetailsTx(_ *gorm.DB, d *models.PurchaseBillDetails) error {
	cp := *d
	r.details[d.BillNo] = &cp
	return nil
}

func (r *purchaseStub) FindBill(_ context.Context, billNo uint) (*models.PurchaseBill, error) {
	b, ok := r.bills[billNo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	cp.Items = append([]models.PurchaseItem(nil), b.Items...)
	return &cp, nil
}

func (r *purchaseStub) FindDetails(_ context.Context, billNo uint) (*models.PurchaseBillDetails, error) {
	d, ok := r.details[billNo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *purchaseStub) List(_ context.Context, filter dto.BillFilter) ([]models.PurchaseBill, int64, error) {
	var out []models.PurchaseBill
	for _, b := range r.bills {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	total := int64(len(out))

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (r *purchaseStub) ListBySupplier(_ context.Context, supplierID uint) ([]models.PurchaseBill, error) {
	var out []models.PurchaseBill
	for _, b := range r.bills {
		if b.SupplierID == supplierID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, nil
}

func (r *purchaseStub) Recent(_ context.Context, limit int) ([]models.PurchaseBill, error) {
	out, _, _ := r.List(context.Background(), dto.BillFilter{Page: 1, Limit: limit})
	return out, nil
}

func (r *purchaseStub) ItemsTx(_ *gorm.DB, billNo uint) ([]models.PurchaseItem, error) {
	b, ok := r.bills[billNo]
	if !ok {
		return nil, nil
	}
	return append([]models.PurchaseItem(nil), b.Items...), nil
}

func (r *purchaseStub) DeleteBillTx(_ *gorm.DB, billNo uint) error {
	delete(r.bills, billNo)
	delete(r.details, billNo)
	return nil
}

func (r *purchaseStub) UpdateDetails(_ context.Context, billNo uint, updates map[string]any) error {
	d, ok := r.details[billNo]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range updates {
		val, _ := v.(string)
		switch k {
		case "address":
			d.Address = val
		case "phone":
			d.Phone = val
		case "tin":
			d.TIN = val
		case "destination":
			d.Destination = val
		case "notes":
			d.Notes = val
		}
	}
	return nil
}

func (r *purchaseStub) DB() *gorm.DB { return nil }

// ---- sale bills

type saleStub struct {
	bills      map[uint]*models.SaleBill
	details    map[uint]*models.SaleBillDetails
	nextBillNo uint
}

func newSaleStub() *saleStub {
	return &saleStub{
		bills:      map[uint]*models.SaleBill{},
		details:    map[uint]*models.SaleBillDetails{},
		nextBillNo: 1,
	}
}

func (r *saleStub) CreateBillTx(_ *gorm.DB, bill *models.SaleBill) error {
	bill.BillNo = r.nextBillNo
	r.nextBillNo++
	bill.Time = time.Now()
	for i := range bill.Items {
		bill.Items[i].BillNo = bill.BillNo
		bill.Items[i].ID = uint(i + 1)
	}
	cp := *bill
	cp.Items = append([]models.SaleItem(nil), bill.Items...)
	r.bills[bill.BillNo] = &cp
	return nil
}

func (r *saleStub) CreateDetailsTx(_ *gorm.DB, d *models.SaleBillDetails) error {
	cp := *d
	r.details[d.BillNo] = &cp
	return nil
}

func (r *saleStub) FindBill(_ context.Context, billNo uint) (*models.SaleBill, error) {
	b, ok := r.bills[billNo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	cp.Items = append([]models.SaleItem(nil), b.Items...)
	return &cp, nil
}

func (r *saleStub) FindDetails(_ context.Context, billNo uint) (*models.SaleBillDetails, error) {
	d, ok := r.details[billNo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *saleStub) List(_ context.Context, filter dto.BillFilter) ([]models.SaleBill, int64, error) {
	var out []models.SaleBill
	for _, b := range r.bills {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	total := int64(len(out))

	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(out) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], total, nil
}

func (r *saleStub) Recent(_ context.Context, limit int) ([]models.SaleBill, error) {
	out, _, _ := r.List(context.Background(), dto.BillFilter{Page: 1, Limit: limit})
	return out, nil
}

func (r *saleStub) ItemsTx(_ *gorm.DB, billNo uint) ([]models.SaleItem, error) {
	b, ok := r.bills[billNo]
	if !ok {
		return nil, nil
	}
	return append([]models.SaleItem(nil), b.Items...), nil
}

func (r *saleStub) DeleteBillTx(_ *gorm.DB, billNo uint) error {
	delete(r.bills, billNo)
	delete(r.details, billNo)
	return nil
}

func (r *saleStub) UpdateDetails(_ context.Context, billNo uint, updates map[string]any) error {
	d, ok := r.details[billNo]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for k, v := range updates {
		val, _ := v.(string)
		switch k {
		case "address":
			d.Address = val
		case "phone":
			d.Phone = val
		case "tin":
			d.TIN = val
		case "destination":
			d.Destination = val
		case "notes":
			d.Notes = val
		}
	}
	return nil
}

func (r *saleStub) DB() *gorm.DB { return nil }

// ---- ledger

type ledgerStub struct {
	purchases []models.Purchase
	sales     []models.Sale
}

func newLedgerStub() *ledgerStub { return &ledgerStub{} }

func (r *ledgerStub) CreatePurchaseEntryTx(_ *gorm.DB, p *models.Purchase) error {
	p.ID = uint(len(r.purchases) + 1)
	r.purchases = append(r.purchases, *p)
	return nil
}

func (r *ledgerStub) CreateSaleEntryTx(_ *gorm.DB, s *models.Sale) error {
	s.ID = uint(len(r.sales) + 1)
	r.sales = append(r.sales, *s)
	return nil
}

func (r *ledgerStub) DeletePurchaseEntriesTx(_ *gorm.DB, billNo uint) error {
	kept := r.purchases[:0]
	for _, p := range r.purchases {
		if p.BillNo != billNo {
			kept = append(kept, p)
		}
	}
	r.purchases = kept
	return nil
}

func (r *ledgerStub) DeleteSaleEntriesTx(_ *gorm.DB, billNo uint) error {
	kept := r.sales[:0]
	for _, s := range r.sales {
		if s.BillNo != billNo {
			kept = append(kept, s)
		}
	}
	r.sales = kept
	return nil
}

func (r *ledgerStub) PurchasedTotal(_ context.Context, stockID uint) (int, error) {
	total := 0
	for _, p := range r.purchases {
		if p.StockID == stockID {
			total += p.Quantity
		}
	}
	return total, nil
}

func (r *ledgerStub) SoldTotal(_ context.Context, stockID uint) (int, error) {
	total := 0
	for _, s := range r.sales {
		if s.StockID == stockID {
			total += s.Quantity
		}
	}
	return total, nil
}

func (r *ledgerStub) PurchaseAggBefore(_ context.Context, stockID uint, before time.Time) (repositories.LedgerAgg, error) {
	var agg repositories.LedgerAgg
	for _, p := range r.purchases {
		if p.StockID == stockID && time.Time(p.Date).Before(before) {
			agg.Qty += p.Quantity
			agg.Cost += float64(p.Quantity) * p.UnitCost
		}
	}
	return agg, nil
}

func (r *ledgerStub) SaleAggBefore(_ context.Context, stockID uint, before time.Time) (repositories.LedgerAgg, error) {
	var agg repositories.LedgerAgg
	for _, s := range r.sales {
		if s.StockID == stockID && time.Time(s.Date).Before(before) {
			agg.Qty += s.Quantity
			agg.Cost += float64(s.Quantity) * s.UnitPrice
		}
	}
	return agg, nil
}

func (r *ledgerStub) PurchaseAggRange(_ context.Context, stockID uint, start, end time.Time) (repositories.LedgerAgg, error) {
	var agg repositories.LedgerAgg
	for _, p := range r.purchases {
		d := time.Time(p.Date)
		if p.StockID == stockID && !d.Before(start) && !d.After(end) {
			agg.Qty += p.Quantity
			agg.Cost += float64(p.Quantity) * p.UnitCost
		}
	}
	return agg, nil
}

func (r *ledgerStub) SaleAggRange(_ context.Context, stockID uint, start, end time.Time) (repositories.LedgerAgg, error) {
	var agg repositories.LedgerAgg
	for _, s := range r.sales {
		d := time.Time(s.Date)
		if s.StockID == stockID && !d.Before(start) && !d.After(end) {
			agg.Qty += s.Quantity
			agg.Cost += float64(s.Quantity) * s.UnitPrice
		}
	}
	return agg, nil
}
