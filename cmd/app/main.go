package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/cache"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/catalog"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/config"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/events"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/handlers"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/repository"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/routes"
	"github.com/Sohan-bhatt/Bajaj-Trading-App-Prototype/service"
)

func main() {
	// .env is optional; everything has an env default.
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// 1. Instrument catalog and the three stores
	cat := catalog.New()
	orderStore := repository.NewOrderStore()
	tradeLog := repository.NewTradeLog()
	ledger := repository.NewLedger()

	// 2. Optional trade stream
	var publisher service.TradePublisher
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer kp.Close()
		publisher = kp
		logger.Info("trade stream enabled", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	}

	// 3. Execution engine
	engine := service.NewEngine(cat, orderStore, tradeLog, ledger, publisher)

	// 4. Query cache
	queryCache, err := cache.New(1<<20, cfg.CacheTTL)
	if err != nil {
		logger.Fatal("cache", zap.Error(err))
	}

	// 5. Router & handlers
	router := gin.New()
	router.Use(handlers.RequestLogger(logger), gin.Recovery(), handlers.CORS(cfg.CORSOrigin))
	routes.RegisterRoutes(router, handlers.NewTradingHandler(engine, cat, queryCache, logger))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("http listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http", zap.Error(err))
		}
	}()

	// Wait for a signal, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
