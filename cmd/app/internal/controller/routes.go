package controller

import (
	"github.com/gin-gonic/gin"

	"prepwise-backend/internal/repository"
	"prepwise-backend/internal/session"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine, orchestrator *session.Orchestrator, reportRepo repository.ReportRepository) {
	interviewCtrl := NewInterviewController(orchestrator)
	interviewRoutes := r.Group("/interviews")
	{
		interviewRoutes.POST("", interviewCtrl.StartInterview)
		interviewRoutes.GET("/:id", interviewCtrl.GetInterview)
		interviewRoutes.POST("/:id/recording/start", interviewCtrl.StartRecording)
		interviewRoutes.POST("/:id/recording/events", interviewCtrl.RecordingEvent)
		interviewRoutes.POST("/:id/recording/stop", interviewCtrl.StopRecording)
		interviewRoutes.POST("/:id/answer", interviewCtrl.SubmitAnswer)
		interviewRoutes.POST("/:id/code", interviewCtrl.SubmitCode)
		interviewRoutes.POST("/:id/skip", interviewCtrl.SkipPractical)
		interviewRoutes.GET("/:id/report", interviewCtrl.GetReport)
		interviewRoutes.GET("/:id/report/download", interviewCtrl.DownloadReport)
	}

	reportCtrl := NewReportController(reportRepo)
	reportRoutes := r.Group("/reports")
	{
		reportRoutes.GET("", reportCtrl.GetReports)
		reportRoutes.GET("/:sessionId", reportCtrl.GetArchivedReport)
	}
}
