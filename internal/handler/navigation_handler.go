package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/safestride/service-navigation/internal/application"
	"github.com/safestride/service-navigation/internal/domain/geo"
	"github.com/safestride/service-navigation/pkg/auth"
	"github.com/safestride/service-navigation/pkg/middleware"
	"github.com/safestride/service-navigation/pkg/response"
)

// NavigationHandler handles HTTP requests for route queries and zone overlays.
type NavigationHandler struct {
	service *application.NavigationService
}

// NewNavigationHandler creates a new NavigationHandler.
func NewNavigationHandler(service *application.NavigationService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// RegisterRoutes registers navigation routes on the given router group.
func (h *NavigationHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	nav := r.Group("/api/v1/navigation")
	nav.Use(authMW)
	{
		nav.POST("/routes", h.PlanRoute)
	}

	// Zone overlays are readable without auth so the map can render before
	// sign-in.
	r.GET("/api/v1/zones", h.GetZones)
}

// PlanRoute handles POST /api/v1/navigation/routes.
func (h *NavigationHandler) PlanRoute(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req application.PlanRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.PlanRoute(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetZones handles GET /api/v1/zones?lat=..&lng=..
func (h *NavigationHandler) GetZones(c *gin.Context) {
	anchor, ok := parseCoordinate(c)
	if !ok {
		response.BadRequest(c, "lat and lng query parameters are required")
		return
	}

	zones := h.service.ActiveZones(c.Request.Context(), anchor)
	response.Success(c, zones)
}

// parseCoordinate extracts lat/lng query parameters.
func parseCoordinate(c *gin.Context) (geo.Coordinate, bool) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Lat: lat, Lng: lng}, true
}
