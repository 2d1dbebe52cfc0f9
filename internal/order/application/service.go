package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mbellamine/comptoir/internal/order/domain"
	stockdomain "github.com/mbellamine/comptoir/internal/stock/domain"
)

type CreateLine struct {
	ProductID int
	Quantity  int
}

// Service drives the order lifecycle against live inventory.
type Service struct {
	log       *slog.Logger
	store     OrderStore
	catalog   ProductCatalog
	directory ClientDirectory
	stock     StockMover
	publisher EventPublisher
}

func NewService(log *slog.Logger, store OrderStore, catalog ProductCatalog, directory ClientDirectory, stock StockMover, publisher EventPublisher) *Service {
	return &Service{
		log:       log,
		store:     store,
		catalog:   catalog,
		directory: directory,
		stock:     stock,
		publisher: publisher,
	}
}

// Create builds a pending order from the requested products and quantities.
// Availability is pre-checked against current stock, but the binding check
// happens again at confirm time.
func (s *Service) Create(ctx context.Context, clientID int, lines []CreateLine) (domain.Order, error) {
	if _, err := s.directory.FindByID(ctx, clientID); err != nil {
		return domain.Order{}, fmt.Errorf("order client %d: %w", clientID, err)
	}
	if len(lines) == 0 {
		return domain.Order{}, domain.ErrNoLines
	}

	orderLines := make([]domain.Line, 0, len(lines))
	for _, in := range lines {
		p, err := s.catalog.FindByID(ctx, in.ProductID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("order line product %d: %w", in.ProductID, err)
		}
		line, err := domain.NewLine(p, in.Quantity)
		if err != nil {
			return domain.Order{}, err
		}
		// Soft pre-check; untracked products carry no limit.
		if p.Tracked() && in.Quantity > p.Stock.Quantity {
			return domain.Order{}, &stockdomain.InsufficientStockError{
				ProductID: p.ID,
				Requested: in.Quantity,
				Available: p.Stock.Quantity,
			}
		}
		orderLines = append(orderLines, line)
	}

	o, err := domain.NewOrder(clientID, orderLines, time.Now().UTC())
	if err != nil {
		return domain.Order{}, err
	}
	saved, err := s.store.Save(ctx, o)
	if err != nil {
		return domain.Order{}, fmt.Errorf("save order: %w", err)
	}

	s.publish(ctx, saved.ID, domain.TypeOrderCreated, domain.OrderCreated{
		OrderID:  saved.ID,
		ClientID: saved.ClientID,
		Total:    saved.Total,
		Lines:    saved.Lines,
	})
	s.log.Info("order created", "order_id", saved.ID, "client_id", saved.ClientID, "total", saved.Total)
	return saved, nil
}

// Confirm deducts stock line by line and moves the order to confirmed. A
// failing line aborts the remaining ones, but deductions already applied in
// the same call stay applied and the order remains pending. That matches
// the documented lifecycle; do not add rollback here.
func (s *Service) Confirm(ctx context.Context, id int) (domain.Order, error) {
	o, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if o.Status != domain.StatusPending {
		return domain.Order{}, &domain.InvalidTransitionError{From: o.Status, To: domain.StatusConfirmed}
	}

	for _, line := range o.Lines {
		p, err := s.catalog.FindByID(ctx, line.ProductID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("confirm order %d, product %d: %w", id, line.ProductID, err)
		}
		if !p.Tracked() {
			continue
		}
		if _, err := s.stock.Apply(ctx, line.ProductID, line.Quantity, stockdomain.Issue{}); err != nil {
			return domain.Order{}, fmt.Errorf("confirm order %d: %w", id, err)
		}
	}

	if err := o.Confirm(); err != nil {
		return domain.Order{}, err
	}
	if err := s.store.Update(ctx, o); err != nil {
		return domain.Order{}, fmt.Errorf("persist confirmed order %d: %w", id, err)
	}

	s.publish(ctx, o.ID, domain.TypeOrderConfirmed, domain.OrderConfirmed{OrderID: o.ID, Total: o.Total})
	s.log.Info("order confirmed", "order_id", o.ID)
	return o, nil
}

// Cancel is legal until the order is already cancelled. Already-deducted
// stock is not credited back.
func (s *Service) Cancel(ctx context.Context, id int) (domain.Order, error) {
	o, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	wasIn := o.Status
	if err := o.Cancel(); err != nil {
		return domain.Order{}, err
	}
	if err := s.store.Update(ctx, o); err != nil {
		return domain.Order{}, fmt.Errorf("persist cancelled order %d: %w", id, err)
	}

	s.publish(ctx, o.ID, domain.TypeOrderCancelled, domain.OrderCancelled{OrderID: o.ID, WasIn: wasIn})
	s.log.Info("order cancelled", "order_id", o.ID, "was_in", wasIn)
	return o, nil
}

// Duplicate clones an order's client and lines into a fresh pending order.
// Stock is not re-validated at duplication time.
func (s *Service) Duplicate(ctx context.Context, id int) (domain.Order, error) {
	original, err := s.store.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	saved, err := s.store.Save(ctx, original.Duplicate(time.Now().UTC()))
	if err != nil {
		return domain.Order{}, fmt.Errorf("save duplicated order: %w", err)
	}

	s.publish(ctx, saved.ID, domain.TypeOrderCreated, domain.OrderCreated{
		OrderID:  saved.ID,
		ClientID: saved.ClientID,
		Total:    saved.Total,
		Lines:    saved.Lines,
	})
	s.log.Info("order duplicated", "source_id", id, "order_id", saved.ID)
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("delete order %d: %w", id, domain.ErrOrderNotFound)
	}
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.store.FindAll(ctx)
}

func (s *Service) FindByID(ctx context.Context, id int) (domain.Order, error) {
	return s.store.FindByID(ctx, id)
}

func (s *Service) FindByClient(ctx context.Context, clientID int) ([]domain.Order, error) {
	return s.store.FindByClient(ctx, clientID)
}

func (s *Service) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Order, error) {
	return s.store.FindByStatus(ctx, status)
}

func (s *Service) publish(ctx context.Context, orderID int, eventType string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error("marshal order event", "type", eventType, "err", err)
		return
	}
	s.publisher.Publish(ctx, strconv.Itoa(orderID), eventType, payload)
}
