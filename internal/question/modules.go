package question

import (
	"strings"

	"prepwise-backend/internal/model"
)

// moduleSignals is evaluated in order: Excel beats Python beats SQL.
// Adding a module means adding a row, not a branch.
var moduleSignals = []struct {
	module  model.Module
	signals []string
}{
	{model.ModuleExcel, []string{"excel", "spreadsheet", "vlookup", "hlookup", "pivot", "worksheet", "workbook", "=sum", "formula"}},
	{model.ModulePython, []string{"python", "pandas", "numpy", "dataframe", "matplotlib", "def ", "script"}},
	{model.ModuleSQL, []string{"sql", "query", "database", "select", "join", "table", "schema"}},
}

// InferModule decides the practical module from the theory question and
// the candidate's transcript. defaultModule applies when no signal is
// found (SQL unless configured otherwise).
func InferModule(questionText, transcript string, defaultModule model.Module) model.Module {
	haystack := strings.ToLower(questionText + " " + transcript)
	for _, entry := range moduleSignals {
		for _, signal := range entry.signals {
			if strings.Contains(haystack, signal) {
				return entry.module
			}
		}
	}
	if defaultModule == "" {
		return model.ModuleSQL
	}
	return defaultModule
}
