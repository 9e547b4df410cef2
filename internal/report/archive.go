package report

import (
	"encoding/json"

	"prepwise-backend/internal/model"
	"prepwise-backend/internal/repository"
	"prepwise-backend/utilities"
)

// InitReportEventListeners subscribes the archive to session
// completion: the report is persisted and its PDF rendered off the
// request path. The session itself is never stored.
func InitReportEventListeners(bus *utilities.EventBus, repo repository.ReportRepository, event string) {
	bus.Subscribe(event, func(data interface{}) {
		rep, ok := data.(*model.Report)
		if !ok {
			utilities.Error("invalid payload on %s event", event)
			return
		}

		pdfPath, err := GeneratePDF(rep)
		if err != nil {
			utilities.Error("failed to render report PDF for session %s: %v", rep.SessionID, err)
		}

		payload, err := json.Marshal(rep)
		if err != nil {
			utilities.Error("failed to encode report for session %s: %v", rep.SessionID, err)
			return
		}

		record := &model.ReportRecord{
			SessionID:  rep.SessionID,
			Difficulty: string(rep.Difficulty),
			Overall:    rep.Overall,
			Payload:    string(payload),
			PDFPath:    pdfPath,
		}
		if err := repo.SaveReport(record); err != nil {
			if err == repository.ErrArchiveDisabled {
				return
			}
			utilities.Error("failed to archive report for session %s: %v", rep.SessionID, err)
			return
		}
		utilities.Info("archived report for session %s", rep.SessionID)
	})
}
