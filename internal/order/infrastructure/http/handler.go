package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	catalogdomain "github.com/mbellamine/comptoir/internal/catalog/domain"
	clientdomain "github.com/mbellamine/comptoir/internal/client/domain"
	"github.com/mbellamine/comptoir/internal/order/application"
	"github.com/mbellamine/comptoir/internal/order/domain"
	stockdomain "github.com/mbellamine/comptoir/internal/stock/domain"
)

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("order-http"),
	}
}

type lineReq struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type createOrderReq struct {
	ClientID int       `json:"client_id"`
	Lines    []lineReq `json:"lines"`
}

type lineResp struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type orderResp struct {
	ID        int        `json:"id"`
	ClientID  int        `json:"client_id"`
	Lines     []lineResp `json:"lines"`
	Status    string     `json:"status"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/orders", h.create)
	r.Get("/orders", h.list)
	r.Get("/orders/{id}", h.get)
	r.Post("/orders/{id}/confirm", h.confirm)
	r.Post("/orders/{id}/cancel", h.cancel)
	r.Post("/orders/{id}/duplicate", h.duplicate)
	r.Delete("/orders/{id}", h.delete)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	lines := make([]application.CreateLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, application.CreateLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	o, err := h.service.Create(ctx, req.ClientID, lines)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResp(o))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		orders []domain.Order
		err    error
	)
	switch {
	case r.URL.Query().Get("client") != "":
		clientID, convErr := strconv.Atoi(r.URL.Query().Get("client"))
		if convErr != nil {
			http.Error(w, "invalid client id", http.StatusBadRequest)
			return
		}
		orders, err = h.service.FindByClient(r.Context(), clientID)
	case r.URL.Query().Get("status") != "":
		orders, err = h.service.FindByStatus(r.Context(), domain.Status(r.URL.Query().Get("status")))
	default:
		orders, err = h.service.ListAll(r.Context())
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make([]orderResp, 0, len(orders))
	for _, o := range orders {
		out = append(out, toResp(o))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	o, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResp(o))
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ConfirmOrder")
	defer span.End()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	o, err := h.service.Confirm(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResp(o))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CancelOrder")
	defer span.End()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	o, err := h.service.Cancel(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResp(o))
}

func (h *Handler) duplicate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "DuplicateOrder")
	defer span.End()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	o, err := h.service.Duplicate(ctx, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResp(o))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		transition   *domain.InvalidTransitionError
		insufficient *stockdomain.InsufficientStockError
	)
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, clientdomain.ErrClientNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &transition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &insufficient):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrNoLines),
		errors.Is(err, domain.ErrNoClient),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, stockdomain.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.log.Error("order request failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResp(o domain.Order) orderResp {
	lines := make([]lineResp, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, lineResp{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal(),
		})
	}
	return orderResp{
		ID:        o.ID,
		ClientID:  o.ClientID,
		Lines:     lines,
		Status:    string(o.Status),
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
