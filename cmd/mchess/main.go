package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/ZEBDA1/McHess/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	notifier := NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, sugaredLogger)
	service := NewService(repository, notifier, cfg.AdminLogin, cfg.AdminPassword, cfg.JWTSecret, sugaredLogger)
	handlers := NewHandlers(service, cfg.PaypalEmail, cfg.JWTSecret, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(MetricsMiddleware())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	api.Get("/config", handlers.GetConfig)
	api.Get("/packs", handlers.GetPacks)
	api.Get("/packs/:id", handlers.GetPack)

	api.Post("/orders", handlers.CreateOrder)
	api.Get("/orders/:email", handlers.GetOrdersByEmail)

	admin := api.Group("/admin")
	admin.Post("/login", handlers.Login)

	admin.Use(handlers.AdminRequired)
	admin.Get("/orders", handlers.GetOrders)
	admin.Put("/orders/:id", handlers.UpdateOrderStatus)
	admin.Put("/orders/:id/deliver", handlers.DeliverOrder)
	admin.Put("/packs/:id", handlers.UpdatePack)

	go sugaredLogger.Fatal(app.Listen(cfg.RunAddress))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")
}
