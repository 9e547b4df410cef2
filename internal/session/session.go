package session

import (
	"errors"
	"sync"
	"time"

	"prepwise-backend/internal/capture"
	"prepwise-backend/internal/model"
)

// State names the orchestrator's position in the interview flow.
type State string

const (
	StateIdle                State = "idle"
	StateTheoryPrompt        State = "theory_prompt"
	StateCapturing           State = "capturing"
	StateAnalyzing           State = "analyzing"
	StateGeneratingPractical State = "generating_practical"
	StatePracticalPrompt     State = "practical_prompt"
	StateValidating          State = "validating"
	StateComplete            State = "complete"
)

// Error taxonomy. Empty-input errors block the transition until the
// user corrects the input; invalid-state errors are contract
// violations that should not occur under correct orchestration.
var (
	ErrNotFound        = errors.New("session not found")
	ErrEmptyTranscript = errors.New("transcript is empty")
	ErrEmptyCode       = errors.New("submitted code is empty")
	ErrInvalidState    = errors.New("operation not allowed in current state")
)

// Session is the root aggregate. It lives only in memory and is mutated
// exclusively by the orchestrator's transition handlers under mu.
type Session struct {
	mu sync.Mutex

	ID               string
	Difficulty       model.Difficulty
	Slots            []model.QuestionSlot
	CurrentIndex     int
	CompletedResults []model.QuestionResult
	State            State
	Capture          *capture.Session
	Report           *model.Report
	CreatedAt        time.Time

	usedTheoryQuestions []string
}

// Snapshot is the read-only view handed to the API layer.
type Snapshot struct {
	ID           string                 `json:"id"`
	Difficulty   model.Difficulty       `json:"difficulty"`
	State        State                  `json:"state"`
	CurrentIndex int                    `json:"current_index"`
	Slots        []model.QuestionSlot   `json:"slots"`
	Results      []model.QuestionResult `json:"results"`
	CreatedAt    time.Time              `json:"created_at"`
}

func (s *Session) snapshotLocked() Snapshot {
	slots := make([]model.QuestionSlot, len(s.Slots))
	copy(slots, s.Slots)
	results := make([]model.QuestionResult, len(s.CompletedResults))
	copy(results, s.CompletedResults)

	return Snapshot{
		ID:           s.ID,
		Difficulty:   s.Difficulty,
		State:        s.State,
		CurrentIndex: s.CurrentIndex,
		Slots:        slots,
		Results:      results,
		CreatedAt:    s.CreatedAt,
	}
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Store holds live sessions. Sessions are never persisted; a restart
// loses them.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
