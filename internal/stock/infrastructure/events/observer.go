package events

import (
	"context"
	"encoding/json"
	"strconv"

	catalog "github.com/mbellamine/comptoir/internal/catalog/domain"
	"github.com/mbellamine/comptoir/internal/stock/domain"
)

const TypeStockAdjusted = "stock.adjusted"

type Publisher interface {
	Publish(ctx context.Context, aggregateID, eventType string, payload []byte)
}

// Observer forwards every stock mutation to the event stream so external
// consumers can watch inventory levels.
type Observer struct {
	pub Publisher
}

func NewObserver(pub Publisher) *Observer {
	return &Observer{pub: pub}
}

func (o *Observer) StockChanged(ctx context.Context, p catalog.Product) error {
	if !p.Tracked() {
		return nil
	}
	payload, err := json.Marshal(domain.StockAdjusted{
		ProductID: p.ID,
		Quantity:  p.Stock.Quantity,
		Low:       p.Stock.IsLow(),
	})
	if err != nil {
		return err
	}
	o.pub.Publish(ctx, strconv.Itoa(p.ID), TypeStockAdjusted, payload)
	return nil
}
