package analysis

import (
	"math"
	"strings"
	"unicode"

	"prepwise-backend/internal/model"
)

// Analyze scores a transcript against the expected vocabulary of the
// question. Pure and deterministic: same inputs, same TextAnalysis.
func Analyze(transcript, questionText string, difficulty model.Difficulty) model.TextAnalysis {
	lowerTranscript := strings.ToLower(transcript)
	tokens := tokenize(lowerTranscript)

	topic := detectTopic(questionText)
	expected := topicKeywords[topic]

	var matched, missing []string
	for _, keyword := range expected {
		if keywordPresent(keyword, lowerTranscript, tokens) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	technicalScore := 0.0
	if len(expected) > 0 {
		technicalScore = round1(math.Min(10, float64(len(matched))/float64(len(expected))*10))
	}

	return model.TextAnalysis{
		TechnicalScore:  technicalScore,
		TechnicalTerms:  matched,
		MissingKeywords: missing,
		Fluency:         scoreFluency(tokens),
		Sentiment:       scoreSentiment(tokens),
	}
}

// DetectTopic exposes the topic keyed into the keyword tables; the
// question generators reuse it for focus areas.
func DetectTopic(questionText string) string {
	return detectTopic(questionText)
}

func detectTopic(questionText string) string {
	lower := strings.ToLower(questionText)
	for _, entry := range topicSignals {
		for _, signal := range entry.signals {
			if strings.Contains(lower, signal) {
				return entry.topic
			}
		}
	}
	return "data-analysis"
}

// keywordPresent matches by substring containment in both directions,
// then by the fixed synonym table.
func keywordPresent(keyword, lowerTranscript string, tokens []string) bool {
	if strings.Contains(lowerTranscript, keyword) {
		return true
	}
	for _, token := range tokens {
		if len(token) >= 3 && strings.Contains(keyword, token) {
			return true
		}
	}
	for _, alias := range synonyms[keyword] {
		if strings.Contains(lowerTranscript, alias) {
			return true
		}
		for _, token := range tokens {
			if token == alias {
				return true
			}
		}
	}
	return false
}

func scoreSentiment(tokens []string) model.Sentiment {
	if len(tokens) == 0 {
		return model.Sentiment{Score: 0, Label: "neutral"}
	}

	positive := 0
	negative := 0
	for _, token := range tokens {
		if containsWord(positiveWords, token) {
			positive++
		}
		if containsWord(negativeWords, token) {
			negative++
		}
	}

	score := float64(positive-negative) / float64(len(tokens))
	label := "neutral"
	if score > 0.1 {
		label = "positive"
	} else if score < -0.1 {
		label = "negative"
	}

	return model.Sentiment{Score: score, Label: label}
}

func scoreFluency(tokens []string) model.Fluency {
	fillers := 0
	for _, token := range tokens {
		if containsWord(fillerWords, token) {
			fillers++
		}
	}

	return model.Fluency{
		// Words-per-minute proxy; no timing data is available.
		SpeakingRate: float64(len(tokens)) * 0.8,
		PauseCount:   len(tokens) / 20,
		FillerWords:  fillers,
	}
}

func tokenize(lower string) []string {
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-'
	})
}

func containsWord(words []string, token string) bool {
	for _, w := range words {
		if w == token {
			return true
		}
	}
	return false
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
