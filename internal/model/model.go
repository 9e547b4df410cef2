package model

import "time"

// Difficulty is chosen once at session start and is immutable for the
// whole session.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a user-supplied difficulty string.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	}
	return "", false
}

// Module is the inferred technical domain governing syntax rules and
// fallback content for a practical slot.
type Module string

const (
	ModuleSQL    Module = "sql"
	ModulePython Module = "python"
	ModuleExcel  Module = "excel"
)

// QuestionType discriminates theory and practical slots.
type QuestionType string

const (
	QuestionTheory    QuestionType = "theory"
	QuestionPractical QuestionType = "practical"
)

type TheoryQuestion struct {
	Question   string   `json:"question"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category,omitempty"`
	Topics     []string `json:"topics,omitempty"`
}

type TestCase struct {
	Description    string `json:"description"`
	ExpectedOutput string `json:"expectedOutput"`
}

type PracticalQuestion struct {
	Question      string     `json:"question"`
	Scenario      string     `json:"scenario,omitempty"`
	Requirements  []string   `json:"requirements,omitempty"`
	DataContext   string     `json:"dataContext,omitempty"`
	Difficulty    string     `json:"difficulty,omitempty"`
	EstimatedTime string     `json:"estimatedTime,omitempty"`
	TestCases     []TestCase `json:"testCases,omitempty"`
	Hints         []string   `json:"hints,omitempty"`
	Module        Module     `json:"module,omitempty"`
}

// QuestionSlot is one step of the interview. A practical slot exists
// with an empty prompt until the preceding theory answer has been
// analyzed and dependent generation completes.
type QuestionSlot struct {
	Type      QuestionType       `json:"type"`
	Prompt    string             `json:"prompt,omitempty"`
	Practical *PracticalQuestion `json:"practical,omitempty"`
}

type Fluency struct {
	SpeakingRate float64 `json:"speaking_rate"`
	PauseCount   int     `json:"pause_count"`
	FillerWords  int     `json:"filler_words"`
}

type Sentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// TextAnalysis is derived deterministically from a transcript and never
// mutated after creation.
type TextAnalysis struct {
	TechnicalScore  float64   `json:"technical_score"`
	TechnicalTerms  []string  `json:"technical_terms"`
	MissingKeywords []string  `json:"missing_keywords"`
	Fluency         Fluency   `json:"fluency"`
	Sentiment       Sentiment `json:"sentiment"`
}

type TestCaseResult struct {
	TestCase string `json:"test_case"`
	Passed   bool   `json:"passed"`
	Error    string `json:"error,omitempty"`
}

// ValidationResult carries the two-phase code validation outcome.
// SyntaxValid=false forces Score=0 and LogicCorrect=false by
// construction.
type ValidationResult struct {
	SyntaxValid     bool             `json:"syntax_valid"`
	LogicCorrect    bool             `json:"logic_correct"`
	Score           float64          `json:"score"`
	Feedback        []string         `json:"feedback"`
	Suggestions     []string         `json:"suggestions"`
	TestCaseResults []TestCaseResult `json:"test_case_results"`
}

// QuestionResult is a tagged union on Type: theory results carry
// Transcript+Analysis, practical results carry SubmittedCode+Validation.
type QuestionResult struct {
	Type          QuestionType      `json:"type"`
	QuestionText  string            `json:"question_text"`
	Transcript    string            `json:"transcript,omitempty"`
	Analysis      *TextAnalysis     `json:"analysis,omitempty"`
	SubmittedCode string            `json:"submitted_code,omitempty"`
	Validation    *ValidationResult `json:"validation,omitempty"`
}

type CategoryScores struct {
	TechnicalKnowledge float64 `json:"technical_knowledge"`
	Communication      float64 `json:"communication"`
	Confidence         float64 `json:"confidence"`
	Professionalism    float64 `json:"professionalism"`
}

// Report is the consolidated session outcome produced by the aggregator.
type Report struct {
	SessionID       string           `json:"session_id"`
	Difficulty      Difficulty       `json:"difficulty"`
	Overall         float64          `json:"overall"`
	Categories      CategoryScores   `json:"categories"`
	Strengths       []string         `json:"strengths"`
	Improvements    []string         `json:"improvements"`
	Recommendations []string         `json:"recommendations"`
	Results         []QuestionResult `json:"results"`
}

// ReportRecord is the persisted form of a completed report. Sessions
// themselves are never persisted; only the final report survives the
// session teardown.
type ReportRecord struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	SessionID  string     `json:"session_id" gorm:"not null;unique"`
	Difficulty string     `json:"difficulty"`
	Overall    float64    `json:"overall"`
	Payload    string     `json:"payload"` // JSON-encoded Report
	PDFPath    string     `json:"pdf_path"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
