package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prepwise-backend/internal/repository"
)

type ReportController struct {
	ReportRepo repository.ReportRepository
}

func NewReportController(reportRepo repository.ReportRepository) *ReportController {
	return &ReportController{ReportRepo: reportRepo}
}

// GetReports handles GET /reports, the archived history. Empty when
// the archive is disabled.
func (rc *ReportController) GetReports(c *gin.Context) {
	records, err := rc.ReportRepo.GetReports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetArchivedReport handles GET /reports/:sessionId
func (rc *ReportController) GetArchivedReport(c *gin.Context) {
	record, err := rc.ReportRepo.GetReportBySessionID(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}
