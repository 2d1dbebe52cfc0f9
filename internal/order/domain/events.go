package domain

const (
	TypeOrderCreated   = "order.created"
	TypeOrderConfirmed = "order.confirmed"
	TypeOrderCancelled = "order.cancelled"
)

type OrderCreated struct {
	OrderID  int     `json:"order_id"`
	ClientID int     `json:"client_id"`
	Total    float64 `json:"total"`
	Lines    []Line  `json:"lines"`
}

type OrderConfirmed struct {
	OrderID int     `json:"order_id"`
	Total   float64 `json:"total"`
}

type OrderCancelled struct {
	OrderID int    `json:"order_id"`
	WasIn   Status `json:"was_in"`
}
