package dto

type StockCreateDTO struct {
	Name     string `json:"name" validate:"required,min=1,max=30"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type StockUpdateDTO struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=30"`
	Quantity *int    `json:"quantity"`
}

// StockFilter narrows the stock listing; zero values mean "no filter".
type StockFilter struct {
	Name  string
	Page  int
	Limit int
}

type StockListResponse struct {
	Data  []StockRow `json:"data"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

type StockRow struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
