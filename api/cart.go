package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nmoreaux/skylux/internal/cart"
	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/service/offers"
)

type CartHandler struct {
	carts  *cart.Service
	offers offers.OfferUseCase
}

func NewCartHandler(carts *cart.Service, offerService offers.OfferUseCase) *CartHandler {
	return &CartHandler{carts: carts, offers: offerService}
}

func (h *CartHandler) Register(router *gin.RouterGroup) {
	router.GET("/:userID", h.get)
	router.POST("/:userID/items", h.addItem)
	router.DELETE("/:userID/items/:itemID", h.removeItem)
	router.DELETE("/:userID", h.clear)
}

type addItemRequest struct {
	OfferID        int64             `json:"offer_id"`
	Quantity       int               `json:"quantity"`
	Customizations map[string]string `json:"customizations"`
}

type cartResponse struct {
	Cart   *domain.Cart              `json:"cart"`
	Totals map[domain.Currency]int64 `json:"totals_cents"`
}

func toCartResponse(c *domain.Cart) cartResponse {
	return cartResponse{Cart: c, Totals: cart.TotalCents(c)}
}

func (h *CartHandler) get(c *gin.Context) {
	userID := c.Param("userID")
	result, err := h.carts.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(result))
}

func (h *CartHandler) addItem(c *gin.Context) {
	userID := c.Param("userID")

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer, err := h.offers.GetByID(c.Request.Context(), req.OfferID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "offer " + strconv.FormatInt(req.OfferID, 10) + " not found"})
		return
	}

	result, err := h.carts.AddItem(c.Request.Context(), userID, offer, req.Quantity, req.Customizations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toCartResponse(result))
}

func (h *CartHandler) removeItem(c *gin.Context) {
	userID := c.Param("userID")
	itemID := c.Param("itemID")

	result, err := h.carts.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(result))
}

func (h *CartHandler) clear(c *gin.Context) {
	userID := c.Param("userID")
	if err := h.carts.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
