package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepwise-backend/internal/aiclient"
	"prepwise-backend/internal/model"
)

type fakeValidationClient struct {
	payload *aiclient.ValidationPayload
	err     error
	calls   int
}

func (f *fakeValidationClient) ValidateCode(req aiclient.ValidationRequest) (*aiclient.ValidationPayload, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func sqlQuestion() model.PracticalQuestion {
	return model.PracticalQuestion{
		Question: "Write a query",
		Module:   model.ModuleSQL,
		TestCases: []model.TestCase{
			{Description: "filters rows", ExpectedOutput: "filtered"},
			{Description: "sorts output", ExpectedOutput: "sorted"},
		},
	}
}

func TestSyntaxFailureShortCircuits(t *testing.T) {
	client := &fakeValidationClient{payload: &aiclient.ValidationPayload{SyntaxValid: true, Score: 9}}
	v := NewValidator(client)

	result := v.Validate("SELECT * FROM t(", sqlQuestion())

	assert.False(t, result.SyntaxValid)
	assert.False(t, result.LogicCorrect)
	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, 0, client.calls, "external service must not be called on syntax failure")
	require.Len(t, result.TestCaseResults, 2)
	for _, tc := range result.TestCaseResults {
		assert.False(t, tc.Passed)
		assert.Equal(t, "Test not executed", tc.Error)
	}
}

func TestDegradedFallbackOnServiceFailure(t *testing.T) {
	client := &fakeValidationClient{err: errors.New("boom")}
	v := NewValidator(client)

	result := v.Validate("SELECT * FROM t", sqlQuestion())

	assert.True(t, result.SyntaxValid)
	assert.False(t, result.LogicCorrect, "logic cannot be determined without the service")
	assert.Equal(t, 5.0, result.Score)
	assert.Equal(t, 1, client.calls)
	require.Len(t, result.TestCaseResults, 2)
	assert.Equal(t, "Test not executed", result.TestCaseResults[0].Error)
}

func TestDegradedFallbackWithoutClient(t *testing.T) {
	v := NewValidator(nil)

	result := v.Validate("SELECT * FROM t", sqlQuestion())
	assert.Equal(t, 5.0, result.Score)
	assert.True(t, result.SyntaxValid)
}

func TestServiceResultPositionalAlignment(t *testing.T) {
	client := &fakeValidationClient{payload: &aiclient.ValidationPayload{
		SyntaxValid:  true,
		LogicCorrect: true,
		Score:        8,
		TestCaseResults: []aiclient.WireTestCaseResult{
			{Passed: true},
			{Passed: false, Error: "wrong order"},
		},
	}}
	v := NewValidator(client)

	result := v.Validate("SELECT * FROM t ORDER BY id", sqlQuestion())

	require.Len(t, result.TestCaseResults, 2)
	assert.Equal(t, "filters rows", result.TestCaseResults[0].TestCase)
	assert.True(t, result.TestCaseResults[0].Passed)
	assert.False(t, result.TestCaseResults[1].Passed)
	assert.Equal(t, "wrong order", result.TestCaseResults[1].Error)
}

func TestServiceResultDescriptionAlignment(t *testing.T) {
	// Count mismatch forces description matching; the unmatched declared
	// case is marked not executed.
	client := &fakeValidationClient{payload: &aiclient.ValidationPayload{
		SyntaxValid: true,
		Score:       6,
		TestCaseResults: []aiclient.WireTestCaseResult{
			{Description: "sorts output", Passed: true},
		},
	}}
	v := NewValidator(client)

	result := v.Validate("SELECT * FROM t", sqlQuestion())

	require.Len(t, result.TestCaseResults, 2)
	assert.False(t, result.TestCaseResults[0].Passed)
	assert.Equal(t, "Test not executed", result.TestCaseResults[0].Error)
	assert.True(t, result.TestCaseResults[1].Passed)
}

func TestServiceSyntaxInvalidForcesZero(t *testing.T) {
	client := &fakeValidationClient{payload: &aiclient.ValidationPayload{
		SyntaxValid:  false,
		LogicCorrect: true,
		Score:        7,
	}}
	v := NewValidator(client)

	result := v.Validate("SELECT * FROM t", sqlQuestion())
	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.LogicCorrect)
}

func TestScoreClamping(t *testing.T) {
	client := &fakeValidationClient{payload: &aiclient.ValidationPayload{SyntaxValid: true, Score: 42}}
	v := NewValidator(client)

	result := v.Validate("SELECT * FROM t", sqlQuestion())
	assert.Equal(t, 10.0, result.Score)
}
