package handler

import (
	"net/http"
	"path/filepath"
	"time"

	"hotelier/internal/apierror"
	"hotelier/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// month/year query params default to the current month.
func monthYear(c *gin.Context) (int, int, bool) {
	now := time.Now()
	var q struct {
		Month int `form:"month"`
		Year  int `form:"year"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid query parameters"))
		return 0, 0, false
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month < 1 || q.Month > 12 {
		c.JSON(http.StatusBadRequest, apierror.New("Month must be between 1 and 12"))
		return 0, 0, false
	}
	return q.Month, q.Year, true
}

// Stats godoc
// @Summary Monthly dashboard metrics
// @Tags dashboard
// @Produce json
// @Param month query int false "Month (1-12), defaults to current"
// @Param year query int false "Year, defaults to current"
// @Success 200 {object} dto.DashboardResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	month, year, ok := monthYear(c)
	if !ok {
		return
	}
	resp, err := h.svc.Stats(c.Request.Context(), month, year)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportPDF godoc
// @Summary Download the monthly dashboard as PDF
// @Tags dashboard
// @Produce application/pdf
// @Param month query int false "Month (1-12), defaults to current"
// @Param year query int false "Year, defaults to current"
// @Success 200 {file} binary
// @Router /api/dashboard/pdf [get]
func (h *DashboardHandler) ExportPDF(c *gin.Context) {
	month, year, ok := monthYear(c)
	if !ok {
		return
	}
	path, err := h.svc.GeneratePDF(c.Request.Context(), month, year)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
