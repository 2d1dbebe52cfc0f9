package application

import (
	"context"
	"log/slog"

	catalog "github.com/mbellamine/comptoir/internal/catalog/domain"
)

// AlertObserver logs a warning whenever a movement leaves a product at or
// below its alert threshold.
type AlertObserver struct {
	log *slog.Logger
}

func NewAlertObserver(log *slog.Logger) *AlertObserver {
	return &AlertObserver{log: log}
}

func (a *AlertObserver) StockChanged(_ context.Context, p catalog.Product) error {
	if p.Tracked() && p.Stock.IsLow() {
		a.log.Warn("low stock",
			"product_id", p.ID, "name", p.Name,
			"quantity", p.Stock.Quantity, "threshold", p.Stock.Threshold)
	}
	return nil
}
