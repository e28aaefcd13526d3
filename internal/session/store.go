package session

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound indicates the session ID is not registered.
	ErrNotFound = errors.New("session not found")

	// ErrNotReady indicates the session exists but its transcript is
	// still being generated.
	ErrNotReady = errors.New("session not ready")
)

// Store is the in-memory session registry. Sessions live for the
// lifetime of the process; nothing is persisted.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*record
}

type record struct {
	meta       Meta
	transcript []Turn
	ready      bool
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*record)}
}

// Create registers a session with an empty transcript. The session
// reports not ready until SetTranscript is called.
func (s *Store) Create(meta Meta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[meta.ID] = &record{meta: meta}
}

// Exists reports whether the session ID is registered.
func (s *Store) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

// SetTranscript installs the generated transcript and marks the
// session ready. Unknown IDs are ignored.
func (s *Store) SetTranscript(id string, turns []Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.sessions[id]
	if !ok {
		return
	}
	rec.transcript = append([]Turn(nil), turns...)
	rec.ready = true
}

// Snapshot returns a copy of the session's meta and transcript along
// with its ready flag.
func (s *Store) Snapshot(id string) (Meta, []Turn, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.sessions[id]
	if !ok {
		return Meta{}, nil, false, ErrNotFound
	}
	turns := append([]Turn(nil), rec.transcript...)
	return rec.meta, turns, rec.ready, nil
}

// AppendTurn adds one turn to a ready session's transcript, assigning
// the next turn ID, and returns the stored turn.
func (s *Store) AppendTurn(id string, turn Turn) (Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.sessions[id]
	if !ok {
		return Turn{}, ErrNotFound
	}
	if !rec.ready {
		return Turn{}, ErrNotReady
	}
	turn.SessionID = id
	turn.TurnID = len(rec.transcript) + 1
	rec.transcript = append(rec.transcript, turn)
	return turn, nil
}
