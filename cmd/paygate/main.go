package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/piresc/intercity/internal/paygate"
	"github.com/piresc/intercity/internal/pkg/config"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/paygate.env"
	}
	configs := config.InitConfig(configPath)

	log := paygate.NewLogger(configs.Logger.Level)
	if configs.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	addr := fmt.Sprintf(":%d", configs.PaymentGateway.Port)
	router := paygate.NewRouter(paygate.Config{
		Secret:      configs.PaymentGateway.Secret,
		CheckoutURL: configs.PaymentGateway.URL,
	}, paygate.NewStore(), log)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("address", addr).Info("Starting payment gateway sandbox")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start payment gateway sandbox")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Payment gateway sandbox forced to shutdown")
		return
	}
	log.Info("Payment gateway sandbox stopped")
}
