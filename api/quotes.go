package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/service/quotes"
)

type QuoteHandler struct {
	service quotes.QuoteUseCase
	counted func()
}

func NewQuoteHandler(service quotes.QuoteUseCase, counted func()) *QuoteHandler {
	return &QuoteHandler{service: service, counted: counted}
}

func (h *QuoteHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
}

type quoteRequest struct {
	OfferID       int64  `json:"offer_id"`
	From          string `json:"from"`
	To            string `json:"to"`
	FromContinent string `json:"from_continent"`
	ToContinent   string `json:"to_continent"`
	DurationText  string `json:"duration"`
	Participants  int    `json:"participants"`
	UserID        string `json:"user_id"`
}

func (h *QuoteHandler) create(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OfferID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offer_id is required"})
		return
	}

	quote, err := h.service.QuoteOffer(c.Request.Context(), quotes.QuoteInput{
		OfferID:       req.OfferID,
		From:          req.From,
		To:            req.To,
		FromContinent: domain.Continent(req.FromContinent),
		ToContinent:   domain.Continent(req.ToContinent),
		DurationText:  req.DurationText,
		Participants:  req.Participants,
		UserID:        req.UserID,
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if h.counted != nil {
		h.counted()
	}
	c.JSON(http.StatusOK, quote)
}
