package report

import (
	"math"

	"prepwise-backend/internal/model"
)

// Neutral baselines reported when a session produced no results of a
// given type, so a theory-only or practical-only session is not
// penalized for the missing half.
const (
	defaultTheoryScore    = 7.5
	defaultPracticalScore = 5.0
)

// Aggregate post-processes the session's completed results into the
// final report. Total over any mix of result types, including an
// unbalanced mix after a skipped practical slot.
func Aggregate(sessionID string, difficulty model.Difficulty, results []model.QuestionResult) model.Report {
	var theoryScores, practicalScores []float64
	for _, r := range results {
		switch r.Type {
		case model.QuestionTheory:
			if r.Analysis != nil {
				theoryScores = append(theoryScores, r.Analysis.TechnicalScore)
			}
		case model.QuestionPractical:
			if r.Validation != nil {
				practicalScores = append(practicalScores, r.Validation.Score)
			}
		}
	}

	avgTheory := meanOr(theoryScores, defaultTheoryScore)
	avgPractical := meanOr(practicalScores, defaultPracticalScore)

	// Equal weighting regardless of how many results of each type exist,
	// applied even when one side is a baseline.
	overall := round1(avgTheory*0.5 + avgPractical*0.5)

	categories := model.CategoryScores{
		TechnicalKnowledge: round1(avgTheory),
		Communication:      round1(avgTheory),
		Confidence:         round1(avgPractical),
		Professionalism:    round1((avgTheory + avgPractical) / 2),
	}

	strengths, improvements := classify(avgTheory, avgPractical, len(theoryScores), len(practicalScores))

	return model.Report{
		SessionID:       sessionID,
		Difficulty:      difficulty,
		Overall:         overall,
		Categories:      categories,
		Strengths:       strengths,
		Improvements:    improvements,
		Recommendations: recommend(avgTheory, avgPractical),
		Results:         results,
	}
}

const strengthThreshold = 7.0

func classify(avgTheory, avgPractical float64, theoryCount, practicalCount int) (strengths, improvements []string) {
	if theoryCount > 0 {
		if avgTheory >= strengthThreshold {
			strengths = append(strengths, "Strong technical knowledge in spoken answers")
		} else {
			improvements = append(improvements, "Deepen technical vocabulary in spoken answers")
		}
	}
	if practicalCount > 0 {
		if avgPractical >= strengthThreshold {
			strengths = append(strengths, "Solid hands-on problem solving")
		} else {
			improvements = append(improvements, "Practice hands-on coding tasks under time pressure")
		}
	}

	switch {
	case theoryCount > 0 && practicalCount > 0:
		strengths = append(strengths, "Completed a full mixed interview with both spoken and practical answers")
	case theoryCount > 0:
		improvements = append(improvements, "Attempt the practical portion next time for a fuller picture")
	case practicalCount > 0:
		improvements = append(improvements, "Attempt the spoken portion next time for a fuller picture")
	default:
		improvements = append(improvements, "Complete at least one question to receive meaningful feedback")
	}
	return strengths, improvements
}

func recommend(avgTheory, avgPractical float64) []string {
	var recs []string
	if avgTheory < strengthThreshold {
		recs = append(recs, "Review core concepts for your chosen modules and rehearse explaining them aloud")
	}
	if avgPractical < strengthThreshold {
		recs = append(recs, "Work through timed practice exercises in SQL, Python or Excel")
	}
	if len(recs) == 0 {
		recs = append(recs, "Keep practicing at a higher difficulty to maintain your edge")
	}
	return recs
}

func meanOr(values []float64, fallback float64) float64 {
	if len(values) == 0 {
		return fallback
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
