package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/mbellamine/comptoir/internal/catalog/domain"
	catalogmem "github.com/mbellamine/comptoir/internal/catalog/infrastructure/memory"
	clientdomain "github.com/mbellamine/comptoir/internal/client/domain"
	clientmem "github.com/mbellamine/comptoir/internal/client/infrastructure/memory"
	"github.com/mbellamine/comptoir/internal/order/application"
	ordermem "github.com/mbellamine/comptoir/internal/order/infrastructure/memory"
	stockapp "github.com/mbellamine/comptoir/internal/stock/application"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()
	log := slog.Default()

	products := catalogmem.NewProductRepository()
	clients := clientmem.NewClientRepository()
	orders := ordermem.NewOrderRepository()

	stock, err := catalogdomain.NewStock(5, 2)
	require.NoError(t, err)
	p, err := catalogdomain.NewProduct("Clavier", "", 10.0, stock)
	require.NoError(t, err)
	_, err = products.Save(ctx, p)
	require.NoError(t, err)

	c, err := clientdomain.NewClient("Durand", "Alice", "alice@example.com", "", "")
	require.NoError(t, err)
	_, err = clients.Save(ctx, c)
	require.NoError(t, err)

	stockSvc := stockapp.NewService(log, products)
	svc := application.NewService(log, orders, products, clients, stockSvc, application.NopPublisher{})

	r := chi.NewRouter()
	NewHandler(log, svc).Register(r)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	h := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/orders",
		`{"client_id":1,"lines":[{"product_id":1,"quantity":3}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created orderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 30.0, created.Total)
	assert.Equal(t, "pending", created.Status)

	rec = doJSON(t, h, http.MethodPost, "/orders/1/confirm", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var confirmed orderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &confirmed))
	assert.Equal(t, "confirmed", confirmed.Status)

	// Second confirm conflicts with the state machine.
	rec = doJSON(t, h, http.MethodPost, "/orders/1/confirm", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	h := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/orders",
		`{"client_id":1,"lines":[{"product_id":1,"quantity":6}]}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOrderNotFound(t *testing.T) {
	h := newServer(t)

	rec := doJSON(t, h, http.MethodGet, "/orders/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/orders/42/cancel", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrderUnknownClient(t *testing.T) {
	h := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/orders",
		`{"client_id":9,"lines":[{"product_id":1,"quantity":1}]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrdersByStatus(t *testing.T) {
	h := newServer(t)

	rec := doJSON(t, h, http.MethodPost, "/orders",
		`{"client_id":1,"lines":[{"product_id":1,"quantity":1}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/orders?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out []orderResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 1)

	rec = doJSON(t, h, http.MethodGet, "/orders?status=confirmed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	out = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out)
}
