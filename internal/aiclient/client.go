package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"prepwise-backend/internal/config"
	"prepwise-backend/internal/model"
)

// ErrServiceUnavailable covers network failures and non-2xx statuses.
// ErrMalformedResponse covers unparseable or incomplete bodies. Callers
// treat both identically: fall back locally, never retry.
var (
	ErrServiceUnavailable = errors.New("ai service unavailable")
	ErrMalformedResponse  = errors.New("ai service returned malformed response")
)

// TheoryGenRequest is the wire contract of the theory generation service.
type TheoryGenRequest struct {
	Difficulty        string   `json:"difficulty"`
	PreviousQuestions []string `json:"previousQuestions"`
	FocusArea         string   `json:"focusArea,omitempty"`
}

// PracticalGenRequest is the wire contract of the practical generation
// service.
type PracticalGenRequest struct {
	Prompt         string   `json:"prompt"`
	Module         string   `json:"module"`
	Difficulty     string   `json:"difficulty"`
	TheoryQuestion string   `json:"theoryQuestion"`
	UserTranscript string   `json:"userTranscript"`
	TechnicalTerms []string `json:"technicalTerms"`
}

// ValidationRequest is the wire contract of the code validation service.
type ValidationRequest struct {
	Code         string           `json:"code"`
	Question     string           `json:"question"`
	Module       string           `json:"module"`
	Requirements []string         `json:"requirements"`
	TestCases    []model.TestCase `json:"testCases"`
	Scenario     string           `json:"scenario"`
}

// WireTestCaseResult is one test case outcome as reported by the
// validation service. Index and Description are both optional; the
// validator realigns results positionally first, by description second.
type WireTestCaseResult struct {
	TestCase    string `json:"testCase,omitempty"`
	Description string `json:"description,omitempty"`
	Passed      bool   `json:"passed"`
	Error       string `json:"error,omitempty"`
}

// ValidationPayload is the validation service response body. The
// service may nest it under a "validation" key or send the fields at
// top level; Client.ValidateCode accepts both.
type ValidationPayload struct {
	SyntaxValid     bool                 `json:"syntaxValid"`
	LogicCorrect    bool                 `json:"logicCorrect"`
	Score           float64              `json:"score"`
	Feedback        []string             `json:"feedback"`
	Suggestions     []string             `json:"suggestions"`
	TestCaseResults []WireTestCaseResult `json:"testCaseResults"`
}

// Client calls the three external AI services. One outstanding call per
// slot, no retries, a single timeout, and polite pacing toward the
// upstream proxy via a shared rate limiter.
type Client struct {
	theoryGenURL    string
	practicalGenURL string
	validationURL   string
	apiKey          string
	client          *http.Client
	limiter         *rate.Limiter
}

func NewClient(cfg config.AIServiceConfig, apiKey string) *Client {
	return &Client{
		theoryGenURL:    cfg.TheoryGenURL,
		practicalGenURL: cfg.PracticalGenURL,
		validationURL:   cfg.ValidationURL,
		apiKey:          apiKey,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
	}
}

// GenerateTheoryQuestion calls the theory generation service.
func (c *Client) GenerateTheoryQuestion(req TheoryGenRequest) (*model.TheoryQuestion, error) {
	body, err := c.post(c.theoryGenURL, req)
	if err != nil {
		return nil, err
	}

	var question model.TheoryQuestion
	raw := ExtractJSONObject(string(body))
	if raw == "" {
		return nil, fmt.Errorf("%w: no JSON object in body", ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(raw), &question); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if question.Question == "" {
		return nil, fmt.Errorf("%w: missing question text", ErrMalformedResponse)
	}
	return &question, nil
}

// GeneratePracticalQuestion calls the practical generation service. The
// response is free text possibly containing a JSON object, often inside
// markdown code fences.
func (c *Client) GeneratePracticalQuestion(req PracticalGenRequest) (*model.PracticalQuestion, error) {
	body, err := c.post(c.practicalGenURL, req)
	if err != nil {
		return nil, err
	}

	raw := ExtractJSONObject(string(body))
	if raw == "" {
		return nil, fmt.Errorf("%w: no JSON object in body", ErrMalformedResponse)
	}

	var question model.PracticalQuestion
	if err := json.Unmarshal([]byte(raw), &question); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if question.Question == "" {
		return nil, fmt.Errorf("%w: missing question text", ErrMalformedResponse)
	}
	question.Module = model.Module(req.Module)
	return &question, nil
}

// ValidateCode calls the code validation service and normalizes the two
// accepted response shapes.
func (c *Client) ValidateCode(req ValidationRequest) (*ValidationPayload, error) {
	body, err := c.post(c.validationURL, req)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Validation *ValidationPayload `json:"validation"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Validation != nil {
		return envelope.Validation, nil
	}

	var payload ValidationPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &payload, nil
}

func (c *Client) post(url string, payload interface{}) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: no endpoint configured", ErrServiceUnavailable)
	}

	if err := c.limiter.Wait(context.Background()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	return body, nil
}
