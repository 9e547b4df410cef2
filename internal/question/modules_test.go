package question

import (
	"testing"

	"prepwise-backend/internal/model"
)

func TestInferModule(t *testing.T) {
	tests := []struct {
		name       string
		question   string
		transcript string
		want       model.Module
	}{
		{
			name:       "excel signal in transcript",
			question:   "How do you analyze data?",
			transcript: "I use pivot tables and VLOOKUP in Excel for analysis",
			want:       model.ModuleExcel,
		},
		{
			name:       "python signal",
			question:   "How do you clean data?",
			transcript: "I load everything into a pandas DataFrame",
			want:       model.ModulePython,
		},
		{
			name:       "sql signal",
			question:   "Describe how you summarize sales",
			transcript: "I write a query with GROUP BY against the database",
			want:       model.ModuleSQL,
		},
		{
			name:       "excel beats python and sql",
			question:   "Compare Excel and Python for SQL-style analysis",
			transcript: "",
			want:       model.ModuleExcel,
		},
		{
			name:       "python beats sql",
			question:   "Using Python against a database",
			transcript: "",
			want:       model.ModulePython,
		},
		{
			name:       "no signal falls back to default",
			question:   "Tell me about teamwork",
			transcript: "I collaborate well with others",
			want:       model.ModuleSQL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferModule(tt.question, tt.transcript, model.ModuleSQL)
			if got != tt.want {
				t.Errorf("InferModule() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInferModuleConfigurableDefault(t *testing.T) {
	got := InferModule("Tell me about teamwork", "nothing technical here", model.ModulePython)
	if got != model.ModulePython {
		t.Errorf("InferModule() with python default = %q, want python", got)
	}

	got = InferModule("Tell me about teamwork", "nothing technical here", "")
	if got != model.ModuleSQL {
		t.Errorf("InferModule() with empty default = %q, want sql", got)
	}
}
