package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nmoreaux/skylux/internal/domain"
	"github.com/nmoreaux/skylux/internal/recommend"
	"github.com/nmoreaux/skylux/internal/service/offers"
)

type OfferHandler struct {
	service offers.OfferUseCase
	counted func()
}

func NewOfferHandler(service offers.OfferUseCase, counted func()) *OfferHandler {
	return &OfferHandler{service: service, counted: counted}
}

func (h *OfferHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/search", h.search)
	router.POST("/recommend", h.recommendFromText)
}

func (h *OfferHandler) list(c *gin.Context) {
	offers, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *OfferHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	offer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, offer)
}

func (h *OfferHandler) search(c *gin.Context) {
	criteria := recommend.Criteria{
		LocationSubstring:     c.Query("location"),
		AircraftTypeSubstring: c.Query("aircraft_type"),
		Category:              domain.OfferType(c.Query("category")),
		Difficulty:            domain.Difficulty(c.Query("difficulty")),
	}
	if v := c.Query("min_price_cents"); v != "" {
		criteria.MinPriceCents, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := c.Query("max_price_cents"); v != "" {
		criteria.MaxPriceCents, _ = strconv.ParseInt(v, 10, 64)
	}
	if v := c.Query("min_passengers"); v != "" {
		criteria.MinPassengers, _ = strconv.Atoi(v)
	}
	if v := c.Query("departure_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure_after, want RFC3339"})
			return
		}
		criteria.DepartureOnOrAfter = t
	}
	if v, ok := c.GetQueryArray("activity"); ok {
		criteria.Activities = v
	}

	result, err := h.service.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type recommendRequest struct {
	Text string `json:"text"`
}

type recommendResponse struct {
	Offers []domain.Offer `json:"offers"`
	Intent intentView     `json:"intent"`
}

// intentView mirrors the parsed intent so the client can show what was
// understood and let the user correct it.
type intentView struct {
	From            string `json:"from,omitempty"`
	To              string `json:"to,omitempty"`
	Passengers      int    `json:"passengers,omitempty"`
	BudgetCents     int64  `json:"budget_cents,omitempty"`
	AircraftType    string `json:"aircraft_type,omitempty"`
	NeedsJet        bool   `json:"needs_jet"`
	NeedsCar        bool   `json:"needs_car"`
	NeedsAdventure  bool   `json:"needs_adventure"`
	NeedsEmptyLeg   bool   `json:"needs_empty_leg"`
	NeedsYacht      bool   `json:"needs_yacht"`
	NeedsHelicopter bool   `json:"needs_helicopter"`
}

func (h *OfferHandler) recommendFromText(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, parsed := h.service.Recommend(c.Request.Context(), req.Text)
	if h.counted != nil {
		h.counted()
	}
	c.JSON(http.StatusOK, recommendResponse{
		Offers: result,
		Intent: intentView{
			From:            parsed.From,
			To:              parsed.To,
			Passengers:      parsed.Passengers,
			BudgetCents:     parsed.BudgetCents,
			AircraftType:    parsed.AircraftType,
			NeedsJet:        parsed.NeedsJet,
			NeedsCar:        parsed.NeedsCar,
			NeedsAdventure:  parsed.NeedsAdventure,
			NeedsEmptyLeg:   parsed.NeedsEmptyLeg,
			NeedsYacht:      parsed.NeedsYacht,
			NeedsHelicopter: parsed.NeedsHelicopter,
		},
	})
}
