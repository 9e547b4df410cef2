package controller

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"prepwise-backend/internal/model"
	"prepwise-backend/internal/report"
	"prepwise-backend/internal/session"
)

type InterviewController struct {
	Orchestrator *session.Orchestrator
}

func NewInterviewController(orchestrator *session.Orchestrator) *InterviewController {
	return &InterviewController{Orchestrator: orchestrator}
}

// StartInterview handles POST /interviews
func (ic *InterviewController) StartInterview(c *gin.Context) {
	var req struct {
		Difficulty string `json:"difficulty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	difficulty, ok := model.ParseDifficulty(req.Difficulty)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "difficulty must be easy, medium or hard"})
		return
	}

	s := ic.Orchestrator.Start(difficulty)
	c.JSON(http.StatusCreated, s.Snapshot())
}

// GetInterview handles GET /interviews/:id
func (ic *InterviewController) GetInterview(c *gin.Context) {
	snapshot, err := ic.snapshotOf(c)
	if err != nil {
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// StartRecording handles POST /interviews/:id/recording/start
func (ic *InterviewController) StartRecording(c *gin.Context) {
	snapshot, err := ic.Orchestrator.BeginRecording(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// RecordingEvent handles POST /interviews/:id/recording/events
func (ic *InterviewController) RecordingEvent(c *gin.Context) {
	var req struct {
		Text  string `json:"text"`
		Final bool   `json:"final"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := ic.Orchestrator.RecordingEvent(c.Param("id"), req.Text, req.Final); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event recorded"})
}

// StopRecording handles POST /interviews/:id/recording/stop
func (ic *InterviewController) StopRecording(c *gin.Context) {
	transcript, err := ic.Orchestrator.StopRecording(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transcript": transcript})
}

// SubmitAnswer handles POST /interviews/:id/answer
func (ic *InterviewController) SubmitAnswer(c *gin.Context) {
	var req struct {
		Transcript string `json:"transcript"`
	}
	// Body is optional: with no override the captured transcript is used.
	_ = c.ShouldBindJSON(&req)

	snapshot, err := ic.Orchestrator.SubmitTranscript(c.Param("id"), req.Transcript)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SubmitCode handles POST /interviews/:id/code
func (ic *InterviewController) SubmitCode(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	snapshot, err := ic.Orchestrator.SubmitCode(c.Param("id"), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SkipPractical handles POST /interviews/:id/skip
func (ic *InterviewController) SkipPractical(c *gin.Context) {
	snapshot, err := ic.Orchestrator.Skip(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetReport handles GET /interviews/:id/report
func (ic *InterviewController) GetReport(c *gin.Context) {
	rep, err := ic.Orchestrator.Report(c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrInvalidState) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not available until the interview is complete"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// DownloadReport handles GET /interviews/:id/report/download
func (ic *InterviewController) DownloadReport(c *gin.Context) {
	rep, err := ic.Orchestrator.Report(c.Param("id"))
	if err != nil {
		if errors.Is(err, session.ErrInvalidState) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not available until the interview is complete"})
			return
		}
		respondError(c, err)
		return
	}

	path := report.PDFPath(rep.SessionID)
	if _, statErr := os.Stat(path); statErr != nil {
		// Archive listener may not have run yet; render on demand.
		path, err = report.GeneratePDF(rep)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
			return
		}
	}
	c.FileAttachment(path, "interview_report.pdf")
}

func (ic *InterviewController) snapshotOf(c *gin.Context) (session.Snapshot, error) {
	snapshot, err := ic.Orchestrator.Snapshot(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return session.Snapshot{}, err
	}
	return snapshot, nil
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
	case errors.Is(err, session.ErrEmptyTranscript):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Transcript is empty; record your answer again"})
	case errors.Is(err, session.ErrEmptyCode):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Code is empty"})
	case errors.Is(err, session.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "Operation not allowed in the current interview state"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
