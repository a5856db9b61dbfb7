package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/handlers"
)

func RegisterRoutes(router *gin.Engine, h *handlers.TradingHandler) {
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := router.Group("/api/v1")
	{
		api.GET("/instruments", h.ListInstruments)
		api.POST("/orders", h.PlaceOrder)
		api.GET("/orders/:id", h.GetOrder)
		api.GET("/trades", h.ListTrades)
		api.GET("/portfolio", h.GetPortfolio)
	}
}
