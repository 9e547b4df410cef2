package question

import (
	"strings"

	"prepwise-backend/internal/aiclient"
	"prepwise-backend/internal/model"
	"prepwise-backend/utilities"
)

// TheoryClient and PracticalClient are the slices of the AI client the
// generators need; tests substitute fakes.
type TheoryClient interface {
	GenerateTheoryQuestion(req aiclient.TheoryGenRequest) (*model.TheoryQuestion, error)
}

type PracticalClient interface {
	GeneratePracticalQuestion(req aiclient.PracticalGenRequest) (*model.PracticalQuestion, error)
}

// TheoryGenerator produces the next spoken-answer question. Generation
// is total: a service failure falls back to the static bank, so the
// session can never stall waiting for a question.
type TheoryGenerator struct {
	client TheoryClient
}

func NewTheoryGenerator(client TheoryClient) *TheoryGenerator {
	return &TheoryGenerator{client: client}
}

func (g *TheoryGenerator) Generate(difficulty model.Difficulty, previousQuestions []string) model.TheoryQuestion {
	if g.client != nil {
		generated, err := g.client.GenerateTheoryQuestion(aiclient.TheoryGenRequest{
			Difficulty:        string(difficulty),
			PreviousQuestions: previousQuestions,
		})
		if err == nil && !isRepeat(generated.Question, previousQuestions) {
			return *generated
		}
		if err != nil {
			utilities.Warn("theory generation fell back to static bank: %v", err)
		}
	}
	return FallbackTheoryQuestion(difficulty, previousQuestions)
}

// PracticalGenerator produces the code question that follows a theory
// answer. The request carries the transcript and extracted technical
// terms so the service can tailor the task; failures fall back to the
// per-module bank.
type PracticalGenerator struct {
	client PracticalClient
}

func NewPracticalGenerator(client PracticalClient) *PracticalGenerator {
	return &PracticalGenerator{client: client}
}

type PracticalContext struct {
	Module         model.Module
	Difficulty     model.Difficulty
	TheoryQuestion string
	UserTranscript string
	TechnicalTerms []string
}

func (g *PracticalGenerator) Generate(ctx PracticalContext) model.PracticalQuestion {
	if g.client != nil {
		generated, err := g.client.GeneratePracticalQuestion(aiclient.PracticalGenRequest{
			Prompt:         buildPracticalPrompt(ctx),
			Module:         string(ctx.Module),
			Difficulty:     string(ctx.Difficulty),
			TheoryQuestion: ctx.TheoryQuestion,
			UserTranscript: ctx.UserTranscript,
			TechnicalTerms: ctx.TechnicalTerms,
		})
		if err == nil {
			return *generated
		}
		utilities.Warn("practical generation fell back to static bank: %v", err)
	}

	fallback := FallbackPracticalQuestion(ctx.Module, ctx.Difficulty, ctx.TheoryQuestion)
	return fallback
}

func buildPracticalPrompt(ctx PracticalContext) string {
	var prompt strings.Builder
	prompt.WriteString("Generate one practical ")
	prompt.WriteString(string(ctx.Module))
	prompt.WriteString(" task at ")
	prompt.WriteString(string(ctx.Difficulty))
	prompt.WriteString(" difficulty for a data-analyst mock interview.\n")
	prompt.WriteString("The candidate just answered: ")
	prompt.WriteString(ctx.TheoryQuestion)
	prompt.WriteString("\n")
	if len(ctx.TechnicalTerms) > 0 {
		prompt.WriteString("Terms the candidate used: ")
		prompt.WriteString(strings.Join(ctx.TechnicalTerms, ", "))
		prompt.WriteString("\n")
	}
	prompt.WriteString("Respond with a single JSON object with keys question, scenario, requirements, dataContext, difficulty, estimatedTime, testCases and hints.")
	return prompt.String()
}

func isRepeat(question string, previous []string) bool {
	for _, p := range previous {
		if p == question {
			return true
		}
	}
	return false
}
