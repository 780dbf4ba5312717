package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/piresc/intercity/internal/pkg/config"
	"github.com/piresc/intercity/internal/pkg/constants"
	"github.com/piresc/intercity/internal/pkg/database"
	"github.com/piresc/intercity/internal/pkg/logger"
	nsqpkg "github.com/piresc/intercity/internal/pkg/nsq"
	"github.com/piresc/intercity/services/notifications/handler"
	"github.com/piresc/intercity/services/notifications/repository"
	"github.com/piresc/intercity/services/notifications/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/notifier.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	db, err := database.Init(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer database.Close()

	notificationUC := usecase.NewNotificationUC(repository.NewNotificationRepo(db))
	nsqHandler := handler.NewNSQHandler(notificationUC)

	consumer, err := nsqpkg.NewConsumer(constants.TopicNotifications, constants.ChannelNotificationStore, nsqHandler.HandleNotification)
	if err != nil {
		zapLogger.Fatal("Failed to create NSQ consumer", logger.Err(err))
	}

	switch {
	case configs.NSQ.LookupdAddress != "":
		err = consumer.ConnectToLookupd(strings.Split(configs.NSQ.LookupdAddress, ","))
	case configs.NSQ.Address != "":
		err = consumer.Connect(configs.NSQ.Address)
	default:
		zapLogger.Fatal("NSQ_ADDRESS or NSQ_LOOKUPD_ADDRESS is required")
	}
	if err != nil {
		zapLogger.Fatal("Failed to connect NSQ consumer", logger.Err(err))
	}

	zapLogger.Info("Notifier consuming",
		logger.String("topic", constants.TopicNotifications),
		logger.String("channel", constants.ChannelNotificationStore))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit

	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	consumer.Stop()
}
