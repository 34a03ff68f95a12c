package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/safestride/service-navigation/internal/application"
	"github.com/safestride/service-navigation/pkg/auth"
	"github.com/safestride/service-navigation/pkg/middleware"
	"github.com/safestride/service-navigation/pkg/response"
)

// ReportHandler handles HTTP requests for safety report operations.
type ReportHandler struct {
	service *application.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *application.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers report routes on the given router group. Reports
// accept anonymous submissions, so auth is optional here.
func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	optionalAuth := middleware.OptionalAuthMiddleware(jwtManager)

	reports := r.Group("/api/v1/reports")
	reports.Use(optionalAuth)
	{
		reports.POST("", h.SubmitReport)
		reports.GET("", h.ListReports)
		reports.POST("/:id/upvote", h.UpvoteReport)
	}
}

// SubmitReport handles POST /api/v1/reports.
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	var req application.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.service.SubmitReport(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListReports handles GET /api/v1/reports?lat=..&lng=..&radius=..
func (h *ReportHandler) ListReports(c *gin.Context) {
	center, ok := parseCoordinate(c)
	if !ok {
		response.BadRequest(c, "lat and lng query parameters are required")
		return
	}

	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "5000"), 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))

	result, err := h.service.GetActiveReports(c.Request.Context(), center, radius, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpvoteReport handles POST /api/v1/reports/:id/upvote.
func (h *ReportHandler) UpvoteReport(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid report ID")
		return
	}

	result, err := h.service.UpvoteReport(c.Request.Context(), reportID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
