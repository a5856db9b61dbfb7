package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/cache"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/catalog"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/handlers"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/models"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/repository"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/routes"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New()
	engine := service.NewEngine(cat, repository.NewOrderStore(), repository.NewTradeLog(), repository.NewLedger(), nil)

	queryCache, err := cache.New(1<<20, time.Minute)
	require.NoError(t, err)

	logger := zap.NewNop()
	router := gin.New()
	router.Use(handlers.RequestLogger(logger), gin.Recovery(), handlers.CORS("*"))
	routes.RegisterRoutes(router, handlers.NewTradingHandler(engine, cat, queryCache, logger))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func placeOrder(t *testing.T, router *gin.Engine, req models.PlaceOrderRequest) models.PlaceOrderResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/orders", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.PlaceOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func floatPtr(f float64) *float64 { return &f }

func TestPlaceOrderEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantErr    string
	}{
		{
			name:       "Market Buy Executes",
			body:       models.PlaceOrderRequest{Symbol: "AAPL", Side: models.SideBuy, OrderType: models.OrderTypeMarket, Quantity: 10},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Unknown Instrument Is 404",
			body:       models.PlaceOrderRequest{Symbol: "DOGE", Side: models.SideBuy, OrderType: models.OrderTypeMarket, Quantity: 1},
			wantStatus: http.StatusNotFound,
			wantErr:    "instrument not found",
		},
		{
			name:       "Limit Without Price Is 400",
			body:       models.PlaceOrderRequest{Symbol: "AAPL", Side: models.SideBuy, OrderType: models.OrderTypeLimit, Quantity: 1},
			wantStatus: http.StatusBadRequest,
			wantErr:    "price is required",
		},
		{
			name:       "Sell Without Holdings Is 400",
			body:       models.PlaceOrderRequest{Symbol: "MSFT", Side: models.SideSell, OrderType: models.OrderTypeMarket, Quantity: 1},
			wantStatus: http.StatusBadRequest,
			wantErr:    "insufficient holdings",
		},
		{
			name:       "Zero Quantity Is 400",
			body:       models.PlaceOrderRequest{Symbol: "AAPL", Side: models.SideBuy, OrderType: models.OrderTypeMarket, Quantity: 0},
			wantStatus: http.StatusBadRequest,
			wantErr:    "quantity must be greater than 0",
		},
		{
			name:       "Invalid Side Fails Schema Validation",
			body:       map[string]any{"symbol": "AAPL", "side": "HOLD", "orderType": "MARKET", "quantity": 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Malformed Body Is 400",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t)

			w := doJSON(t, router, http.MethodPost, "/api/v1/orders", tc.body)

			assert.Equal(t, tc.wantStatus, w.Code, w.Body.String())
			if tc.wantErr != "" {
				assert.Contains(t, w.Body.String(), tc.wantErr)
			}
		})
	}
}

func TestGetOrderEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := placeOrder(t, router, models.PlaceOrderRequest{Symbol: "AAPL", Side: models.SideBuy, OrderType: models.OrderTypeMarket, Quantity: 5})

	w := doJSON(t, router, http.MethodGet, "/api/v1/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, resp.OrderID, order.OrderID)
	assert.Equal(t, models.StatusExecuted, order.Status)
	assert.Equal(t, 190.25, order.ExecutedPrice)

	w = doJSON(t, router, http.MethodGet, "/api/v1/orders/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListInstrumentsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/instruments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var instruments []models.Instrument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &instruments))
	require.Len(t, instruments, 3)
	assert.Equal(t, "AAPL", instruments[0].Symbol)
}

func TestTradesEndpointReflectsPlacements(t *testing.T) {
	router := newTestRouter(t)

	// Prime the cache with the empty result, then place an order: the
	// placement must invalidate the cached rows.
	w := doJSON(t, router, http.MethodGet, "/api/v1/trades", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	placeOrder(t, router, models.PlaceOrderRequest{Symbol: "AAPL", Side: models.SideBuy, OrderType: models.OrderTypeMarket, Quantity: 2})

	w = doJSON(t, router, http.MethodGet, "/api/v1/trades", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var trades []models.Trade
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trades))
	require.Len(t, trades, 1)
	assert.Equal(t, int64(1), trades[0].TradeID)
	assert.Equal(t, models.SideBuy, trades[0].Side)
}

func TestPortfolioEndpointReflectsPlacements(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/portfolio", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	placeOrder(t, router, models.PlaceOrderRequest{Symbol: "MSFT", Side: models.SideBuy, OrderType: models.OrderTypeLimit, Quantity: 10, Price: floatPtr(400)})

	w = doJSON(t, router, http.MethodGet, "/api/v1/portfolio", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var portfolio []models.PortfolioEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &portfolio))
	require.Len(t, portfolio, 1)
	assert.Equal(t, 10, portfolio[0].Quantity)
	assert.Equal(t, 400.00, portfolio[0].AveragePrice)
	assert.Equal(t, 4201.00, portfolio[0].CurrentValue)

	// Second read may come from the cache and must match.
	w = doJSON(t, router, http.MethodGet, "/api/v1/portfolio", nil)
	var cached []models.PortfolioEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cached))
	assert.Equal(t, portfolio, cached)
}

func TestHealthAndCORS(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
