package database

import (
	"fmt"

	"stockbook-backend/models"

	"gorm.io/gorm"
)

// Migrate applies idempotent schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - Money column types (NUMERIC(12,2))
// - Helpful indexes for the bill and ledger tables
// - Basic CHECK constraints on quantities and prices
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Stock{},
			&models.Supplier{},
			&models.PurchaseBill{},
			&models.PurchaseItem{},
			&models.PurchaseBillDetails{},
			&models.SaleBill{},
			&models.SaleItem{},
			&models.SaleBillDetails{},
			&models.Purchase{},
			&models.Sale{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE purchase_items ALTER COLUMN per_price   TYPE numeric(12,2)`,
			`ALTER TABLE purchase_items ALTER COLUMN total_price TYPE numeric(12,2)`,
			`ALTER TABLE sale_items     ALTER COLUMN per_price   TYPE numeric(12,2)`,
			`ALTER TABLE sale_items     ALTER COLUMN total_price TYPE numeric(12,2)`,
			`ALTER TABLE purchases      ALTER COLUMN unit_cost   TYPE numeric(12,2)`,
			`ALTER TABLE sales          ALTER COLUMN unit_price  TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_purchase_items_bill ON purchase_items (bill_no)`,
			`CREATE INDEX IF NOT EXISTS idx_sale_items_bill ON sale_items (bill_no)`,
			`CREATE INDEX IF NOT EXISTS idx_purchases_stock_date ON purchases (stock_id, date)`,
			`CREATE INDEX IF NOT EXISTS idx_sales_stock_date ON sales (stock_id, date)`,
			`CREATE INDEX IF NOT EXISTS idx_purchase_bills_supplier ON purchase_bills (supplier_id)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'purchase_items'::regclass
					  AND conname  = 'chk_purchase_items_quantity_pos'
				) THEN
					ALTER TABLE purchase_items
					ADD CONSTRAINT chk_purchase_items_quantity_pos
					CHECK (quantity > 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'sale_items'::regclass
					  AND conname  = 'chk_sale_items_quantity_pos'
				) THEN
					ALTER TABLE sale_items
					ADD CONSTRAINT chk_sale_items_quantity_pos
					CHECK (quantity > 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'purchase_items'::regclass
					  AND conname  = 'chk_purchase_items_per_price_nonneg'
				) THEN
					ALTER TABLE purchase_items
					ADD CONSTRAINT chk_purchase_items_per_price_nonneg
					CHECK (per_price >= 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'sale_items'::regclass
					  AND conname  = 'chk_sale_items_per_price_nonneg'
				) THEN
					ALTER TABLE sale_items
					ADD CONSTRAINT chk_sale_items_per_price_nonneg
					CHECK (per_price >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
