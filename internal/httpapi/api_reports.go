package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reporthttpmapper "github.com/cheezenes/pos-api/internal/domains/reports/adapters/http/mapper"
	reportsports "github.com/cheezenes/pos-api/internal/domains/reports/ports"
)

// ReportsAPI wires HTTP transport with the reports bounded context service.
type ReportsAPI struct {
	service reportsports.Service
}

// NewReportsAPI creates a ReportsAPI backed by the provided service.
func NewReportsAPI(service reportsports.Service) ReportsAPI {
	return ReportsAPI{service: service}
}

// Get /v1/reports/sales
// Build the summary, top-items and daily breakdown for the requested period
func (api *ReportsAPI) GetSalesReport(c *gin.Context) {
	report, err := api.service.SalesReport(c.Request.Context(), c.Query("period"))
	if err != nil {
		respondReportServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reporthttpmapper.FromDomainReport(report))
}

// Get /v1/reports/dashboard
// Today's order count, subtotal, discount and sales
func (api *ReportsAPI) GetDashboardStats(c *gin.Context) {
	stats, err := api.service.DashboardStats(c.Request.Context())
	if err != nil {
		respondReportServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reporthttpmapper.FromDomainDashboard(stats))
}
