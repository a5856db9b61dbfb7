package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/cache"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/catalog"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/models"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/service"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/utils"
)

type TradingHandler struct {
	Engine    *service.Engine
	Catalog   *catalog.Catalog
	Cache     *cache.Cache
	Validator *validator.Validate
	Logger    *zap.Logger
}

func NewTradingHandler(engine *service.Engine, cat *catalog.Catalog, c *cache.Cache, logger *zap.Logger) *TradingHandler {
	return &TradingHandler{
		Engine:    engine,
		Catalog:   cat,
		Cache:     c,
		Validator: utils.GetValidator(),
		Logger:    logger,
	}
}

func formatValidationError(err error) map[string]string {
	fields := make(map[string]string)
	for _, e := range err.(validator.ValidationErrors) {
		fields[e.Field()] = "failed on tag '" + e.Tag() + "'"
	}
	return fields
}

// rejectionStatus maps an engine rejection to a client-visible status:
// an unknown symbol is a 404, every other rejection a 400.
func rejectionStatus(err error) int {
	if errors.Is(err, service.ErrUnknownInstrument) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// GET /api/v1/instruments
func (h *TradingHandler) ListInstruments(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.List())
}

// POST /api/v1/orders
func (h *TradingHandler) PlaceOrder(c *gin.Context) {
	var req models.PlaceOrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.Validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"validation_errors": formatValidationError(err)})
		return
	}

	resp, err := h.Engine.PlaceOrder(c.Request.Context(), &req)
	if err != nil {
		if !service.IsRejection(err) {
			h.Logger.Error("place order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(rejectionStatus(err), gin.H{"error": err.Error()})
		return
	}

	// Cached query results are stale the moment a placement commits.
	h.Cache.Del(cache.KeyTrades, cache.KeyPortfolio)

	c.JSON(http.StatusOK, resp)
}

// GET /api/v1/orders/:id
func (h *TradingHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	order, err := h.Engine.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /api/v1/trades
func (h *TradingHandler) ListTrades(c *gin.Context) {
	if rows, ok := h.Cache.Get(cache.KeyTrades); ok {
		c.JSON(http.StatusOK, rows)
		return
	}

	trades := h.Engine.ListTrades(c.Request.Context())
	h.Cache.Set(cache.KeyTrades, trades)
	c.JSON(http.StatusOK, trades)
}

// GET /api/v1/portfolio
func (h *TradingHandler) GetPortfolio(c *gin.Context) {
	if rows, ok := h.Cache.Get(cache.KeyPortfolio); ok {
		c.JSON(http.StatusOK, rows)
		return
	}

	portfolio := h.Engine.GetPortfolio(c.Request.Context())
	h.Cache.Set(cache.KeyPortfolio, portfolio)
	c.JSON(http.StatusOK, portfolio)
}
