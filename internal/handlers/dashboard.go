package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/dashboard
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.API.GetDashboardStats(c.Request.Context()))
}

// GET /api/admin/dashboard/sales-chart?period=month
func (h *Handlers) GetSalesChart(c *gin.Context) {
	period := c.DefaultQuery("period", "month")
	c.JSON(http.StatusOK, gin.H{
		"period": period,
		"data":   h.API.GetSalesChart(c.Request.Context(), period),
	})
}
