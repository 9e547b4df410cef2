package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepwise-backend/internal/model"
)

func theoryResult(score float64) model.QuestionResult {
	return model.QuestionResult{
		Type:         model.QuestionTheory,
		QuestionText: "Q",
		Transcript:   "answer",
		Analysis:     &model.TextAnalysis{TechnicalScore: score},
	}
}

func practicalResult(score float64) model.QuestionResult {
	return model.QuestionResult{
		Type:          model.QuestionPractical,
		QuestionText:  "Q",
		SubmittedCode: "SELECT 1",
		Validation:    &model.ValidationResult{SyntaxValid: true, Score: score},
	}
}

func TestTheoryOnlyUsesPracticalBaseline(t *testing.T) {
	rep := Aggregate("s1", model.DifficultyEasy, []model.QuestionResult{theoryResult(8)})

	// 8*0.5 + 5*0.5 with the neutral practical baseline.
	assert.Equal(t, 6.5, rep.Overall)
	assert.Equal(t, 8.0, rep.Categories.TechnicalKnowledge)
	assert.Equal(t, 8.0, rep.Categories.Communication)
	assert.Equal(t, 5.0, rep.Categories.Confidence)
	assert.Equal(t, 6.5, rep.Categories.Professionalism)
}

func TestPracticalOnlyUsesTheoryBaseline(t *testing.T) {
	rep := Aggregate("s2", model.DifficultyMedium, []model.QuestionResult{practicalResult(9)})

	// 7.5*0.5 + 9*0.5: an all-practical session is not zeroed for the
	// missing theory half.
	assert.Equal(t, 8.3, rep.Overall)
	assert.Equal(t, 7.5, rep.Categories.TechnicalKnowledge)
	assert.Equal(t, 9.0, rep.Categories.Confidence)
}

func TestEmptyResultsIsTotal(t *testing.T) {
	rep := Aggregate("s3", model.DifficultyEasy, nil)

	assert.Equal(t, 6.3, rep.Overall) // (7.5 + 5) / 2, rounded
	assert.NotEmpty(t, rep.Improvements)
	assert.NotEmpty(t, rep.Recommendations)
}

func TestMixedSessionAverages(t *testing.T) {
	results := []model.QuestionResult{
		theoryResult(8),
		practicalResult(6),
		theoryResult(6),
		practicalResult(8),
	}
	rep := Aggregate("s4", model.DifficultyHard, results)

	// avgTheory = 7, avgPractical = 7.
	assert.Equal(t, 7.0, rep.Overall)
	assert.Equal(t, 7.0, rep.Categories.Professionalism)
	require.Len(t, rep.Results, 4)
}

func TestStrengthAndImprovementThresholds(t *testing.T) {
	strong := Aggregate("s5", model.DifficultyEasy, []model.QuestionResult{
		theoryResult(9), practicalResult(8),
	})
	assert.Contains(t, strong.Strengths, "Strong technical knowledge in spoken answers")
	assert.Contains(t, strong.Strengths, "Solid hands-on problem solving")
	assert.Contains(t, strong.Strengths, "Completed a full mixed interview with both spoken and practical answers")

	weak := Aggregate("s6", model.DifficultyEasy, []model.QuestionResult{
		theoryResult(4), practicalResult(3),
	})
	assert.Contains(t, weak.Improvements, "Deepen technical vocabulary in spoken answers")
	assert.Contains(t, weak.Improvements, "Practice hands-on coding tasks under time pressure")
	assert.NotEmpty(t, weak.Recommendations)
}

func TestUnbalancedResultsTolerated(t *testing.T) {
	// Skipped practical slot: two theory results, one practical.
	results := []model.QuestionResult{
		theoryResult(7),
		practicalResult(6),
		theoryResult(9),
	}
	rep := Aggregate("s7", model.DifficultyMedium, results)

	// avgTheory = 8, avgPractical = 6 -> overall 7.
	assert.Equal(t, 7.0, rep.Overall)
}

func TestResultsWithoutPayloadsSkipped(t *testing.T) {
	results := []model.QuestionResult{
		{Type: model.QuestionTheory, QuestionText: "Q"},    // no analysis
		{Type: model.QuestionPractical, QuestionText: "Q"}, // no validation
	}
	rep := Aggregate("s8", model.DifficultyEasy, results)
	assert.Equal(t, 6.3, rep.Overall) // both baselines
}
