package domain

type StockAdjusted struct {
	ProductID int  `json:"product_id"`
	Quantity  int  `json:"quantity"`
	Low       bool `json:"low"`
}
