package paygate

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Config holds the sandbox settings
type Config struct {
	Secret      string
	CheckoutURL string
}

// NewRouter builds the sandbox gin engine around store
func NewRouter(cfg Config, store *Store, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(AccessLog(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/")
	api.Use(BearerAuth(cfg.Secret))
	NewHandler(store, cfg.CheckoutURL).RegisterRoutes(api)

	return router
}

// NewLogger returns the JSON logrus logger used for the access log
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
