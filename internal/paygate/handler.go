package paygate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/piresc/intercity/internal/pkg/models"
)

// Handler serves the charge endpoints
type Handler struct {
	store       *Store
	checkoutURL string
}

// NewHandler creates a charge handler. checkoutURL prefixes the
// authorization url handed out for each charge.
func NewHandler(store *Store, checkoutURL string) *Handler {
	return &Handler{
		store:       store,
		checkoutURL: strings.TrimRight(checkoutURL, "/"),
	}
}

// RegisterRoutes mounts the charge endpoints on r
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	charges := r.Group("/v1/charges")
	charges.POST("", h.CreateCharge)
	charges.GET("/:reference", h.GetCharge)
	charges.POST("/:reference/complete", h.transition(models.ChargeStatusSuccess, models.ChargeStatusPending))
	charges.POST("/:reference/fail", h.transition(models.ChargeStatusFailed, models.ChargeStatusPending))
	charges.POST("/:reference/refund", h.transition(models.ChargeStatusRefunded, models.ChargeStatusSuccess))
}

// CreateCharge opens a pending charge
func (h *Handler) CreateCharge(c *gin.Context) {
	var req models.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Reference) == "" || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference and a positive amount are required"})
		return
	}

	charge, err := h.store.Create(req, h.checkoutURL+"/checkout/"+req.Reference)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, charge.ChargeResult)
}

// GetCharge returns the current state of a charge
func (h *Handler) GetCharge(c *gin.Context) {
	charge, err := h.store.Get(c.Param("reference"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, charge.ChargeResult)
}

func (h *Handler) transition(to models.ChargeStatus, from ...models.ChargeStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		charge, err := h.store.Transition(c.Param("reference"), to, from...)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, charge.ChargeResult)
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, ErrChargeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDuplicateCharge), errors.Is(err, ErrChargeState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
