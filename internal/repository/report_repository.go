package repository

import (
	"errors"

	"prepwise-backend/internal/db"
	"prepwise-backend/internal/model"
)

var ErrArchiveDisabled = errors.New("report archive is disabled")

type ReportRepository interface {
	SaveReport(record *model.ReportRecord) error
	GetReports() ([]model.ReportRecord, error)
	GetReportBySessionID(sessionID string) (*model.ReportRecord, error)
}

type reportRepository struct{}

func NewReportRepository() ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) SaveReport(record *model.ReportRecord) error {
	conn := db.GetDB()
	if conn == nil {
		return ErrArchiveDisabled
	}
	return conn.Create(record).Error
}

func (r *reportRepository) GetReports() ([]model.ReportRecord, error) {
	conn := db.GetDB()
	if conn == nil {
		return nil, nil
	}
	var records []model.ReportRecord
	err := conn.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *reportRepository) GetReportBySessionID(sessionID string) (*model.ReportRecord, error) {
	conn := db.GetDB()
	if conn == nil {
		return nil, ErrArchiveDisabled
	}
	var record model.ReportRecord
	if err := conn.Where("session_id = ?", sessionID).First(&record).Error; err != nil {
		return nil, errors.New("report not found")
	}
	return &record, nil
}
