package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/service/purchase"
)

type PurchaseHandler struct {
	service purchase.PurchaseUseCase
	counted func()
}

type createPurchaseRequest struct {
	OfferID      int64   `json:"offer_id"`
	EmissionTons float64 `json:"emission_tons"`
	CostCents    int64   `json:"cost_cents"`
	Currency     string  `json:"currency"`
	Email        string  `json:"email"`
}

type purchaseResponse struct {
	Token        string  `json:"token"`
	Status       string  `json:"status"`
	ExpiresAt    string  `json:"expires_at"`
	OfferID      int64   `json:"offer_id"`
	EmissionTons float64 `json:"emission_tons"`
	CostCents    int64   `json:"cost_cents"`
	Currency     string  `json:"currency"`
	Email        string  `json:"email"`
}

func NewPurchaseHandler(service purchase.PurchaseUseCase, counted func()) *PurchaseHandler {
	return &PurchaseHandler{service: service, counted: counted}
}

func (h *PurchaseHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.PUT("/:token", h.confirm)
	router.DELETE("/:token", h.cancel)
}

func toPurchaseResponse(p *domain.OffsetPurchase) purchaseResponse {
	return purchaseResponse{
		Token:        p.Token,
		Status:       string(p.Status),
		ExpiresAt:    p.ExpiresAt.Format(time.RFC3339),
		OfferID:      p.OfferID,
		EmissionTons: p.EmissionTons,
		CostCents:    p.CostCents,
		Currency:     string(p.Currency),
		Email:        p.Email,
	}
}

func (h *PurchaseHandler) create(c *gin.Context) {
	var req createPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.CreatePurchase(c.Request.Context(), purchase.CreatePurchaseInput{
		OfferID:      req.OfferID,
		EmissionTons: req.EmissionTons,
		CostCents:    req.CostCents,
		Currency:     domain.Currency(req.Currency),
		Email:        req.Email,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.counted != nil {
		h.counted()
	}
	c.JSON(http.StatusCreated, toPurchaseResponse(p))
}

func (h *PurchaseHandler) confirm(c *gin.Context) {
	token := c.Param("token")
	p, err := h.service.ConfirmPurchase(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toPurchaseResponse(p))
}

func (h *PurchaseHandler) cancel(c *gin.Context) {
	token := c.Param("token")
	p, err := h.service.CancelPurchase(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toPurchaseResponse(p))
}
