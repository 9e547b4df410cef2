package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"prepwise-backend/internal/analysis"
	"prepwise-backend/internal/capture"
	"prepwise-backend/internal/model"
	"prepwise-backend/internal/question"
	"prepwise-backend/internal/report"
	"prepwise-backend/internal/validation"
	"prepwise-backend/utilities"
)

// EventInterviewCompleted is published with the final *model.Report
// when a session reaches Complete.
const EventInterviewCompleted = "interview_completed"

// Policy carries the configurable session rules.
type Policy struct {
	PairsPerSession int
	DefaultModule   model.Module
	CaptureMax      time.Duration
}

// Orchestrator drives the interview state machine. It advances only in
// response to discrete external events and never dead-ends on a service
// failure: every external call site has a total fallback.
type Orchestrator struct {
	store        *Store
	theoryGen    *question.TheoryGenerator
	practicalGen *question.PracticalGenerator
	validator    *validation.Validator
	policy       Policy
	bus          *utilities.EventBus
}

func NewOrchestrator(store *Store, theoryGen *question.TheoryGenerator, practicalGen *question.PracticalGenerator, validator *validation.Validator, policy Policy, bus *utilities.EventBus) *Orchestrator {
	if policy.PairsPerSession <= 0 {
		policy.PairsPerSession = 1
	}
	if policy.DefaultModule == "" {
		policy.DefaultModule = model.ModuleSQL
	}
	if bus == nil {
		bus = utilities.GlobalEventBus
	}
	return &Orchestrator{
		store:        store,
		theoryGen:    theoryGen,
		practicalGen: practicalGen,
		validator:    validator,
		policy:       policy,
		bus:          bus,
	}
}

// Start creates a session with N alternating theory/practical slots and
// generates the first theory question. The fallback bank guarantees a
// non-empty prompt for every difficulty.
func (o *Orchestrator) Start(difficulty model.Difficulty) *Session {
	slots := make([]model.QuestionSlot, 0, o.policy.PairsPerSession*2)
	for i := 0; i < o.policy.PairsPerSession; i++ {
		slots = append(slots,
			model.QuestionSlot{Type: model.QuestionTheory},
			model.QuestionSlot{Type: model.QuestionPractical},
		)
	}

	s := &Session{
		ID:         uuid.New().String(),
		Difficulty: difficulty,
		Slots:      slots,
		State:      StateIdle,
		CreatedAt:  time.Now(),
	}

	theory := o.theoryGen.Generate(difficulty, nil)
	s.Slots[0].Prompt = theory.Question
	s.usedTheoryQuestions = append(s.usedTheoryQuestions, theory.Question)
	s.State = StateTheoryPrompt

	o.store.Put(s)
	utilities.Info("session %s started (difficulty=%s, slots=%d)", s.ID, difficulty, len(slots))
	return s
}

// BeginRecording opens the live capture for the current theory slot.
func (o *Orchestrator) BeginRecording(id string) (Snapshot, error) {
	s, err := o.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateTheoryPrompt {
		return s.snapshotLocked(), ErrInvalidState
	}

	s.Capture = capture.New(o.policy.CaptureMax)
	s.State = StateCapturing
	return s.snapshotLocked(), nil
}

// RecordingEvent feeds one partial-recognition event into the capture
// buffer. The recognizer runs independently of the state machine, so
// events arriving outside Capturing are dropped rather than rejected.
func (o *Orchestrator) RecordingEvent(id, text string, final bool) error {
	s, err := o.store.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	buf := s.Capture
	s.mu.Unlock()

	if buf != nil {
		buf.AddEvent(text, final)
	}
	return nil
}

// StopRecording stops the capture and returns the merged transcript
// preview. Stopping an already stopped capture is a no-op.
func (o *Orchestrator) StopRecording(id string) (string, error) {
	s, err := o.store.Get(id)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Capture == nil {
		return "", ErrInvalidState
	}
	return s.Capture.Stop(), nil
}

// SubmitTranscript completes the current theory slot. The captured
// transcript is used unless an explicit override is supplied (textual
// fallback when speech recognition produced nothing usable). An empty
// transcript rejects the transition: the session stays in Capturing
// with a fresh capture buffer and the user must re-record.
func (o *Orchestrator) SubmitTranscript(id, override string) (Snapshot, error) {
	s, err := o.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateCapturing {
		return s.snapshotLocked(), ErrInvalidState
	}

	transcript := strings.TrimSpace(override)
	if transcript == "" && s.Capture != nil {
		transcript = strings.TrimSpace(s.Capture.Stop())
	}
	if transcript == "" {
		// Hard precondition, not a soft warning.
		s.Capture = capture.New(o.policy.CaptureMax)
		return s.snapshotLocked(), ErrEmptyTranscript
	}

	slot := &s.Slots[s.CurrentIndex]

	s.State = StateAnalyzing
	textAnalysis := analysis.Analyze(transcript, slot.Prompt, s.Difficulty)

	// The theory result is committed before practical generation runs:
	// a generation failure must not cost the candidate their answer.
	s.CompletedResults = append(s.CompletedResults, model.QuestionResult{
		Type:         model.QuestionTheory,
		QuestionText: slot.Prompt,
		Transcript:   transcript,
		Analysis:     &textAnalysis,
	})
	s.CurrentIndex++
	s.Capture = nil

	if s.CurrentIndex >= len(s.Slots) {
		o.completeLocked(s)
		return s.snapshotLocked(), nil
	}

	next := &s.Slots[s.CurrentIndex]
	if next.Type == model.QuestionPractical {
		s.State = StateGeneratingPractical
		module := question.InferModule(slot.Prompt, transcript, o.policy.DefaultModule)
		practical := o.practicalGen.Generate(question.PracticalContext{
			Module:         module,
			Difficulty:     s.Difficulty,
			TheoryQuestion: slot.Prompt,
			UserTranscript: transcript,
			TechnicalTerms: textAnalysis.TechnicalTerms,
		})
		practical.Module = module
		next.Prompt = practical.Question
		next.Practical = &practical
		s.State = StatePracticalPrompt
	} else {
		o.nextTheoryLocked(s, next)
	}

	return s.snapshotLocked(), nil
}

// SubmitCode completes the current practical slot via the two-phase
// validator, then advances to the next pair or Complete.
func (o *Orchestrator) SubmitCode(id, code string) (Snapshot, error) {
	s, err := o.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StatePracticalPrompt {
		return s.snapshotLocked(), ErrInvalidState
	}
	if strings.TrimSpace(code) == "" {
		return s.snapshotLocked(), ErrEmptyCode
	}

	slot := &s.Slots[s.CurrentIndex]
	practical := slot.Practical
	if practical == nil {
		return s.snapshotLocked(), ErrInvalidState
	}

	s.State = StateValidating
	result := o.validator.Validate(code, *practical)

	s.CompletedResults = append(s.CompletedResults, model.QuestionResult{
		Type:          model.QuestionPractical,
		QuestionText:  slot.Prompt,
		SubmittedCode: code,
		Validation:    &result,
	})
	s.CurrentIndex++

	o.advanceAfterPracticalLocked(s)
	return s.snapshotLocked(), nil
}

// Skip abandons the current practical slot without a result. The
// aggregator tolerates the resulting theory/practical imbalance.
func (o *Orchestrator) Skip(id string) (Snapshot, error) {
	s, err := o.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StatePracticalPrompt && s.State != StateGeneratingPractical {
		return s.snapshotLocked(), ErrInvalidState
	}

	utilities.Info("session %s: practical slot %d skipped", s.ID, s.CurrentIndex)
	s.CurrentIndex++
	o.advanceAfterPracticalLocked(s)
	return s.snapshotLocked(), nil
}

// Snapshot returns a consistent view of a stored session.
func (o *Orchestrator) Snapshot(id string) (Snapshot, error) {
	s, err := o.store.Get(id)
	if err != nil {
		return Snapshot{}, err
	}
	return s.Snapshot(), nil
}

// Report returns the final report once the session is complete.
func (o *Orchestrator) Report(id string) (*model.Report, error) {
	s, err := o.store.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateComplete || s.Report == nil {
		return nil, ErrInvalidState
	}
	return s.Report, nil
}

func (o *Orchestrator) advanceAfterPracticalLocked(s *Session) {
	if s.CurrentIndex >= len(s.Slots) {
		o.completeLocked(s)
		return
	}
	o.nextTheoryLocked(s, &s.Slots[s.CurrentIndex])
}

// nextTheoryLocked generates the next theory question, excluding every
// theory question text already used in this session.
func (o *Orchestrator) nextTheoryLocked(s *Session, slot *model.QuestionSlot) {
	theory := o.theoryGen.Generate(s.Difficulty, s.usedTheoryQuestions)
	slot.Prompt = theory.Question
	s.usedTheoryQuestions = append(s.usedTheoryQuestions, theory.Question)
	s.State = StateTheoryPrompt
}

func (o *Orchestrator) completeLocked(s *Session) {
	s.State = StateComplete
	rep := report.Aggregate(s.ID, s.Difficulty, s.CompletedResults)
	s.Report = &rep
	utilities.Info("session %s complete (overall=%.1f, results=%d)", s.ID, rep.Overall, len(s.CompletedResults))
	o.bus.Publish(EventInterviewCompleted, &rep)
}
