package analysis

import (
	"reflect"
	"testing"

	"prepwise-backend/internal/model"
)

func TestAnalyzeIsDeterministic(t *testing.T) {
	transcript := "I use pivot tables and VLOOKUP in Excel for analysis"
	question := "How do you use Excel for data analysis?"

	first := Analyze(transcript, question, model.DifficultyEasy)
	second := Analyze(transcript, question, model.DifficultyEasy)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Analyze() is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestAnalyzeMatchesExcelVocabulary(t *testing.T) {
	transcript := "I use pivot tables and VLOOKUP in Excel for analysis"
	result := Analyze(transcript, "How do you use Excel for data analysis?", model.DifficultyEasy)

	if result.TechnicalScore <= 0 {
		t.Errorf("technical score = %v, want > 0", result.TechnicalScore)
	}
	if !containsTerm(result.TechnicalTerms, "pivot table") {
		t.Errorf("expected 'pivot table' in matched terms, got %v", result.TechnicalTerms)
	}
	if !containsTerm(result.TechnicalTerms, "vlookup") {
		t.Errorf("expected 'vlookup' in matched terms, got %v", result.TechnicalTerms)
	}
	if len(result.MissingKeywords) == 0 {
		t.Error("expected some missing keywords for a short answer")
	}
}

func TestAnalyzeTechnicalScoreBounds(t *testing.T) {
	full := "pivot table vlookup hlookup index match formula conditional formatting macro chart filter spreadsheet"
	result := Analyze(full, "Tell me about Excel", model.DifficultyMedium)
	if result.TechnicalScore != 10 {
		t.Errorf("full-coverage score = %v, want 10", result.TechnicalScore)
	}

	empty := Analyze("completely unrelated gardening topics", "Tell me about Excel", model.DifficultyMedium)
	if empty.TechnicalScore < 0 || empty.TechnicalScore > 10 {
		t.Errorf("score out of range: %v", empty.TechnicalScore)
	}
}

func TestDetectTopic(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"How do you use Excel spreadsheets?", "excel"},
		{"Explain pandas DataFrames in Python", "python"},
		{"Write a SQL query with a join", "sql"},
		{"What is overfitting in a machine learning model?", "ml"},
		{"Describe hypothesis testing", "statistics"},
		{"How do you present insights to stakeholders?", "communication"},
		{"Tell me about yourself", "data-analysis"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := DetectTopic(tt.question); got != tt.want {
				t.Errorf("DetectTopic(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

func TestSentimentLabels(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		wantLabel  string
	}{
		{"positive", "great great excellent good", "positive"},
		{"negative", "bad poor wrong fail", "negative"},
		{"neutral", "the data was loaded into the table and then grouped by region for the quarterly report", "neutral"},
		{"empty", "", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Analyze(tt.transcript, "Tell me about your work", model.DifficultyEasy)
			if result.Sentiment.Label != tt.wantLabel {
				t.Errorf("label = %q (score %v), want %q", result.Sentiment.Label, result.Sentiment.Score, tt.wantLabel)
			}
		})
	}
}

func TestFluencyMetrics(t *testing.T) {
	// 25 words, two fillers ("um", "like").
	transcript := "um I like to group the data by region and then compute the totals for every quarter before building the final chart for the stakeholders"
	result := Analyze(transcript, "Describe your workflow", model.DifficultyEasy)

	if result.Fluency.FillerWords != 2 {
		t.Errorf("filler words = %d, want 2", result.Fluency.FillerWords)
	}
	if result.Fluency.PauseCount != 1 {
		t.Errorf("pause count = %d, want 1", result.Fluency.PauseCount)
	}
	if result.Fluency.SpeakingRate != 20 {
		t.Errorf("speaking rate = %v, want 20", result.Fluency.SpeakingRate)
	}
}

func TestSynonymMatching(t *testing.T) {
	result := Analyze("I rely on ml for predictions", "Explain your machine learning model choices", model.DifficultyHard)
	if !containsTerm(result.TechnicalTerms, "machine learning") {
		t.Errorf("expected 'ml' to match 'machine learning', got %v", result.TechnicalTerms)
	}
}

func containsTerm(terms []string, want string) bool {
	for _, term := range terms {
		if term == want {
			return true
		}
	}
	return false
}
