package services

import "errors"

// Sentinel errors the controllers translate into HTTP status codes.
var (
	ErrStockNotFound    = errors.New("stock not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrBillNotFound     = errors.New("bill not found")
	ErrNameTaken        = errors.New("name already in use")
)
