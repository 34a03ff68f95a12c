package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/safestride/service-navigation/internal/application"
	"github.com/safestride/service-navigation/pkg/auth"
	"github.com/safestride/service-navigation/pkg/middleware"
	"github.com/safestride/service-navigation/pkg/response"
)

// AdminReportHandler handles admin HTTP requests for report management.
type AdminReportHandler struct {
	service *application.ReportService
}

// NewAdminReportHandler creates a new AdminReportHandler.
func NewAdminReportHandler(service *application.ReportService) *AdminReportHandler {
	return &AdminReportHandler{service: service}
}

// RegisterRoutes registers admin report routes.
func (h *AdminReportHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)
	adminRole := middleware.RequireRole(auth.RoleAdmin)

	admin := r.Group("/api/v1/admin")
	admin.Use(authMW, adminRole)
	{
		admin.GET("/reports", h.ListReports)
		admin.GET("/stats/reports", h.ReportStats)
	}
}

// ListReports handles GET /api/v1/admin/reports.
func (h *AdminReportHandler) ListReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	reports, total, err := h.service.ListAllReports(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, reports, total, page, limit)
}

// ReportStats handles GET /api/v1/admin/stats/reports.
func (h *AdminReportHandler) ReportStats(c *gin.Context) {
	stats, err := h.service.GetReportStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, stats)
}
