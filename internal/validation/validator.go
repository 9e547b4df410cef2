package validation

import (
	"strings"

	"prepwise-backend/internal/aiclient"
	"prepwise-backend/internal/model"
	"prepwise-backend/utilities"
)

const testNotExecuted = "Test not executed"

type ValidationClient interface {
	ValidateCode(req aiclient.ValidationRequest) (*aiclient.ValidationPayload, error)
}

// Validator runs the two-phase code validation: local syntax pre-check
// first, then the external logic-scoring service, degrading to a
// deterministic local result when the service is unusable. Validate is
// total and never returns an error.
type Validator struct {
	client ValidationClient
}

func NewValidator(client ValidationClient) *Validator {
	return &Validator{client: client}
}

func (v *Validator) Validate(code string, question model.PracticalQuestion) model.ValidationResult {
	if ok, reason := CheckSyntax(code, question.Module); !ok {
		return model.ValidationResult{
			SyntaxValid:     false,
			LogicCorrect:    false,
			Score:           0,
			Feedback:        []string{reason},
			Suggestions:     []string{"Fix the syntax error and submit again"},
			TestCaseResults: notExecutedResults(question.TestCases),
		}
	}

	if v.client == nil {
		return degradedResult(code, question)
	}

	payload, err := v.client.ValidateCode(aiclient.ValidationRequest{
		Code:         code,
		Question:     question.Question,
		Module:       string(question.Module),
		Requirements: question.Requirements,
		TestCases:    question.TestCases,
		Scenario:     question.Scenario,
	})
	if err != nil {
		utilities.Warn("code validation degraded to local fallback: %v", err)
		return degradedResult(code, question)
	}

	return normalizePayload(payload, question)
}

// normalizePayload clamps the service response into a well-formed
// ValidationResult and realigns test case results with the question's
// declared test cases.
func normalizePayload(payload *aiclient.ValidationPayload, question model.PracticalQuestion) model.ValidationResult {
	result := model.ValidationResult{
		SyntaxValid:  payload.SyntaxValid,
		LogicCorrect: payload.LogicCorrect,
		Score:        clampScore(payload.Score),
		Feedback:     payload.Feedback,
		Suggestions:  payload.Suggestions,
	}

	// Syntax failure short-circuits logic evaluation by construction.
	if !result.SyntaxValid {
		result.Score = 0
		result.LogicCorrect = false
	}

	result.TestCaseResults = alignTestCases(question.TestCases, payload.TestCaseResults)
	return result
}

// alignTestCases matches service results back to the declared test
// cases positionally, falling back to description match when index
// alignment fails. Declared cases with no result are marked as not
// executed.
func alignTestCases(declared []model.TestCase, reported []aiclient.WireTestCaseResult) []model.TestCaseResult {
	if len(declared) == 0 {
		return nil
	}

	aligned := make([]model.TestCaseResult, len(declared))
	positional := len(reported) == len(declared)

	for i, tc := range declared {
		if positional {
			aligned[i] = toResult(tc, &reported[i])
			continue
		}
		aligned[i] = toResult(tc, findByDescription(tc, reported))
	}
	return aligned
}

func findByDescription(tc model.TestCase, reported []aiclient.WireTestCaseResult) *aiclient.WireTestCaseResult {
	for i := range reported {
		if matchesDescription(tc.Description, reported[i]) {
			return &reported[i]
		}
	}
	return nil
}

func matchesDescription(description string, r aiclient.WireTestCaseResult) bool {
	if description == "" {
		return false
	}
	return strings.EqualFold(r.Description, description) || strings.EqualFold(r.TestCase, description)
}

func toResult(tc model.TestCase, r *aiclient.WireTestCaseResult) model.TestCaseResult {
	if r == nil {
		return model.TestCaseResult{TestCase: tc.Description, Passed: false, Error: testNotExecuted}
	}
	return model.TestCaseResult{TestCase: tc.Description, Passed: r.Passed, Error: r.Error}
}

// degradedResult is the deterministic substitute when the service is
// unreachable or its body unusable: logic cannot be determined without
// the service, so LogicCorrect stays false and the score is a neutral 5
// for non-empty code.
func degradedResult(code string, question model.PracticalQuestion) model.ValidationResult {
	score := 0.0
	if strings.TrimSpace(code) != "" {
		score = 5
	}
	return model.ValidationResult{
		SyntaxValid:     true,
		LogicCorrect:    false,
		Score:           score,
		Feedback:        []string{"Automated logic scoring was unavailable; a neutral score was assigned"},
		Suggestions:     []string{"Review your solution against the stated requirements"},
		TestCaseResults: notExecutedResults(question.TestCases),
	}
}

func notExecutedResults(declared []model.TestCase) []model.TestCaseResult {
	if len(declared) == 0 {
		return nil
	}
	results := make([]model.TestCaseResult, len(declared))
	for i, tc := range declared {
		results[i] = model.TestCaseResult{TestCase: tc.Description, Passed: false, Error: testNotExecuted}
	}
	return results
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
