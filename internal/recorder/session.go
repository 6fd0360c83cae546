package recorder

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

var (
	ErrAlreadyRecording = errors.New("session already in progress")
	ErrNotRecording     = errors.New("no session in progress")
	ErrSessionNotFound  = errors.New("session not found")
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session drives a Tracker and persists every applied move with the state it
// produced. The session ends by itself once the cube is solved.
type Session struct {
	db        *storage.DB
	stateFile *StateFile
	logger    *slog.Logger

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int
	tracker   *pocketcube.Tracker
	cubeOpts  []pocketcube.Option

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository

	onMove  func(pocketcube.Move, string)
	onPhase func(pocketcube.Phase)
}

// NewSession creates a session manager. stateFile may be nil. opts configure
// the session cube, e.g. its move history limit.
func NewSession(db *storage.DB, stateFile *StateFile, logger *slog.Logger, opts ...pocketcube.Option) *Session {
	return &Session{
		db:          db,
		stateFile:   stateFile,
		logger:      logger,
		state:       StateIdle,
		tracker:     pocketcube.NewTracker(opts...),
		cubeOpts:    opts,
		sessionRepo: storage.NewSessionRepository(db),
		moveRepo:    storage.NewMoveRepository(db),
	}
}

// SetMoveCallback sets a callback receiving each recorded move and the
// compact state text it produced. It runs with the session lock held.
func (s *Session) SetMoveCallback(cb func(pocketcube.Move, string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// SetPhaseCallback sets a callback for newly reached phases.
func (s *Session) SetPhaseCallback(cb func(pocketcube.Phase)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPhase = cb
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the current session ID.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// MoveCount returns the number of moves recorded so far.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// ElapsedMs returns milliseconds since the session started, 0 when not recording.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// Cube returns a copy of the session cube.
func (s *Session) Cube() *pocketcube.Cube {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Cube().Clone()
}

// Phase returns the current phase of the session cube.
func (s *Session) Phase() pocketcube.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Cube().DetectPhase()
}

// Start begins a new session from a cube scrambled by scramble.
func (s *Session) Start(scramble, notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrAlreadyRecording
	}

	tracker, err := pocketcube.NewTrackerFromAlg(scramble, s.cubeOpts...)
	if err != nil {
		return "", fmt.Errorf("invalid scramble: %w", err)
	}

	id, err := s.sessionRepo.Create(scramble, tracker.CubeString(), notes)
	if err != nil {
		return "", err
	}

	s.begin(id, time.Now(), tracker, 0)
	if s.stateFile != nil {
		if err := s.stateFile.SetActiveSession(id); err != nil {
			s.logger.Warn("failed to save active session", "error", err)
		}
	}

	s.logger.Info("session started", "session", id, "scramble", scramble, "state", tracker.CubeString())
	return id, nil
}

// Resume reloads a stored, unfinished session by replaying its scramble and moves.
func (s *Session) Resume(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return ErrAlreadyRecording
	}

	stored, err := s.sessionRepo.Get(sessionID)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if stored.Ended() {
		return fmt.Errorf("session %s already ended", sessionID)
	}

	scramble := ""
	if stored.ScrambleText != nil {
		scramble = *stored.ScrambleText
	}
	tracker, err := pocketcube.NewTrackerFromAlg(scramble, s.cubeOpts...)
	if err != nil {
		return fmt.Errorf("invalid stored scramble: %w", err)
	}

	records, err := s.moveRepo.GetBySession(sessionID)
	if err != nil {
		return err
	}
	moves, err := storage.ToMoves(records)
	if err != nil {
		return err
	}
	if err := tracker.ApplyMoves(moves); err != nil {
		return err
	}

	s.begin(sessionID, stored.StartedAt, tracker, len(moves))
	s.logger.Debug("session resumed", "session", sessionID, "moves", len(moves))
	return nil
}

func (s *Session) begin(id string, start time.Time, tracker *pocketcube.Tracker, moveIndex int) {
	s.sessionID = id
	s.startTime = start
	s.moveIndex = moveIndex
	s.tracker = tracker
	s.state = StateRecording

	tracker.SetPhaseCallback(func(p pocketcube.Phase) {
		s.logger.Info("phase reached", "session", id, "phase", p.String())
		if s.onPhase != nil {
			s.onPhase(p)
		}
	})
}

// ApplyMove applies and records one move. Solving the cube ends the session.
func (s *Session) ApplyMove(m pocketcube.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(m)
}

// ApplyNotation applies and records a whitespace-separated move sequence.
// The whole sequence is parsed first, so an unknown token records nothing.
// Moves after the one that solves the cube are dropped.
func (s *Session) ApplyNotation(alg string) error {
	moves, err := pocketcube.ParseMoves(alg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range moves {
		if s.state != StateRecording {
			break
		}
		if err := s.applyLocked(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) applyLocked(m pocketcube.Move) error {
	if s.state != StateRecording {
		return ErrNotRecording
	}

	// The tracker only takes the move once it is stored.
	next := s.tracker.Cube().Clone()
	if err := next.ApplyMove(m); err != nil {
		return err
	}
	text := next.String()
	tsMs := time.Since(s.startTime).Milliseconds()
	if _, err := s.moveRepo.Create(s.sessionID, s.moveIndex, tsMs, m, text); err != nil {
		return err
	}
	if err := s.tracker.ApplyMove(m); err != nil {
		return err
	}
	s.moveIndex++
	s.logger.Debug("move recorded", "session", s.sessionID, "move", m.Notation(), "state", text)

	if s.onMove != nil {
		s.onMove(m, text)
	}

	if s.tracker.IsSolved() {
		return s.endLocked()
	}
	return nil
}

// End closes the current session.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}
	return s.endLocked()
}

func (s *Session) endLocked() error {
	endState := s.tracker.CubeString()
	if err := s.sessionRepo.End(s.sessionID, endState); err != nil {
		return err
	}
	s.state = StateEnded

	if s.stateFile != nil {
		if err := s.stateFile.ClearActiveSession(); err != nil {
			s.logger.Warn("failed to clear active session", "error", err)
		}
	}

	s.logger.Info("session ended", "session", s.sessionID, "moves", s.moveIndex,
		"solved", s.tracker.IsSolved(), "state", endState)
	return nil
}
