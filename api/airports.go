package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmoreaux/skylux/internal/geo"
)

// AirportHandler serves the static airport reference list.
type AirportHandler struct{}

func NewAirportHandler() *AirportHandler {
	return &AirportHandler{}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.search)
	router.GET("/:code", h.get)
}

func (h *AirportHandler) search(c *gin.Context) {
	c.JSON(http.StatusOK, geo.SearchAirports(c.Query("q")))
}

func (h *AirportHandler) get(c *gin.Context) {
	airport := geo.AirportByCode(c.Param("code"))
	if airport == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown airport code"})
		return
	}
	c.JSON(http.StatusOK, airport)
}
