package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/journeys/internal/command"
	"github.com/Domenick1991/journeys/internal/domain"
	"github.com/gin-gonic/gin"
)

type JourneyHandler struct {
	bus *command.Bus
}

type searchJourneysRequest struct {
	Origin      string `form:"origin" binding:"required,len=3"`
	Destination string `form:"destination" binding:"required,len=3"`
	Date        string `form:"date" binding:"required"`
}

type flightEventResponse struct {
	FlightNumber  string `json:"flight_number"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

type journeyResponse struct {
	Connections int                   `json:"connections"`
	Path        []flightEventResponse `json:"path"`
}

func NewJourneyHandler(bus *command.Bus) *JourneyHandler {
	return &JourneyHandler{bus: bus}
}

func (h *JourneyHandler) Register(router *gin.RouterGroup) {
	router.GET("/search", h.search)
}

func (h *JourneyHandler) search(c *gin.Context) {
	var req searchJourneysRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return
	}

	results, err := h.bus.Dispatch(c.Request.Context(), domain.SearchCriteria{
		From: req.Origin,
		To:   req.Destination,
		Date: date,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMalformedData) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := make([]journeyResponse, 0, len(results))
	for _, journey := range results {
		path := make([]flightEventResponse, 0, len(journey.FlightEvents))
		for _, event := range journey.FlightEvents {
			path = append(path, flightEventResponse{
				FlightNumber:  event.FlightNumber,
				From:          event.From,
				To:            event.To,
				DepartureTime: event.DepartureTime.Format(time.RFC3339),
				ArrivalTime:   event.ArrivalTime.Format(time.RFC3339),
			})
		}
		response = append(response, journeyResponse{Connections: journey.Connections(), Path: path})
	}
	c.JSON(http.StatusOK, response)
}
