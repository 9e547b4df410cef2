package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"prepwise-backend/internal/model"
)

const pdfDir = "working/reports"

// PDFPath returns where the PDF for a session is written.
func PDFPath(sessionID string) string {
	return filepath.Join(pdfDir, fmt.Sprintf("report_%s.pdf", sessionID))
}

// GeneratePDF renders the report as a downloadable PDF and returns the
// output path.
func GeneratePDF(rep *model.Report) (string, error) {
	if err := os.MkdirAll(pdfDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 16)
	pdf.AddPage()

	pdf.Cell(40, 10, "Mock Interview Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Session: %s", rep.SessionID))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Difficulty: %s", rep.Difficulty))
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, fmt.Sprintf("Overall score: %.1f / 10", rep.Overall))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Category scores")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Technical knowledge: %.1f", rep.Categories.TechnicalKnowledge))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Communication: %.1f", rep.Categories.Communication))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Confidence: %.1f", rep.Categories.Confidence))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Professionalism: %.1f", rep.Categories.Professionalism))
	pdf.Ln(10)

	writeList(pdf, "Strengths", rep.Strengths)
	writeList(pdf, "Areas to improve", rep.Improvements)
	writeList(pdf, "Recommendations", rep.Recommendations)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Questions")
	pdf.Ln(8)
	for i, result := range rep.Results {
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. [%s] %s", i+1, result.Type, result.QuestionText), "", "L", false)
		pdf.SetFont("Arial", "", 10)
		switch result.Type {
		case model.QuestionTheory:
			if result.Analysis != nil {
				pdf.MultiCell(0, 5, fmt.Sprintf("Technical score: %.1f  Terms: %s",
					result.Analysis.TechnicalScore, strings.Join(result.Analysis.TechnicalTerms, ", ")), "", "L", false)
			}
		case model.QuestionPractical:
			if result.Validation != nil {
				pdf.MultiCell(0, 5, fmt.Sprintf("Score: %.1f  Syntax valid: %t  Logic correct: %t",
					result.Validation.Score, result.Validation.SyntaxValid, result.Validation.LogicCorrect), "", "L", false)
			}
		}
		pdf.Ln(4)
	}

	outputPath := PDFPath(rep.SessionID)
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("failed to save PDF: %w", err)
	}
	return outputPath, nil
}

func writeList(pdf *gofpdf.Fpdf, title string, items []string) {
	if len(items) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, item := range items {
		pdf.MultiCell(0, 6, "- "+item, "", "L", false)
	}
	pdf.Ln(4)
}
