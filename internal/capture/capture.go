package capture

import (
	"strings"
	"sync"
	"time"
)

// Session is the live transcription buffer for one theory slot. The
// recognizer feeds it partial-recognition events from its own
// goroutine: interim text is overwritten on every event, finalized text
// is append-only. Stopping merges both into the immutable transcript.
type Session struct {
	mu        sync.Mutex
	finalized []string
	interim   string
	stopped   bool
	merged    string
	capTimer  *time.Timer
}

// New opens a capture session. maxDuration > 0 arms a safety cap that
// stops the capture on its own; 0 means capture runs until explicitly
// stopped.
func New(maxDuration time.Duration) *Session {
	s := &Session{}
	if maxDuration > 0 {
		s.capTimer = time.AfterFunc(maxDuration, func() {
			s.Stop()
		})
	}
	return s
}

// AddEvent records one recognition event. Events arriving after the
// capture has stopped are dropped.
func (s *Session) AddEvent(text string, final bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if final {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			s.finalized = append(s.finalized, trimmed)
		}
		s.interim = ""
		return
	}
	s.interim = text
}

// Stop finalizes the transcript. Idempotent: stopping an already
// stopped capture returns the same transcript and is not an error.
func (s *Session) Stop() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return s.merged
	}
	s.stopped = true
	if s.capTimer != nil {
		s.capTimer.Stop()
	}
	s.merged = s.mergeLocked()
	return s.merged
}

// Transcript previews the merged buffer without stopping the capture.
func (s *Session) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return s.merged
	}
	return s.mergeLocked()
}

func (s *Session) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// mergeLocked applies the stop-time merge rule: finalized text wins,
// with whatever interim text exists appended as the tail. A capture
// that never finalized anything still yields its interim text.
func (s *Session) mergeLocked() string {
	parts := make([]string, 0, len(s.finalized)+1)
	parts = append(parts, s.finalized...)
	if trimmed := strings.TrimSpace(s.interim); trimmed != "" {
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, " ")
}
