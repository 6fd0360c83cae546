// Package recorder records pocket cube sessions into storage.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/pocketcube/internal/config"
)

// AppState is the small amount of state kept between CLI invocations.
type AppState struct {
	DBPath          string `json:"db_path,omitempty"`
	ActiveSessionID string `json:"active_session_id,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns <home>/.pocketcube/state.json.
func DefaultStatePath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile loads the state file at path. A missing file is an empty state.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}
	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return sf, nil
}

// NewDefaultStateFile loads the state file at the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load reads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	return nil
}

// Save writes the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// State returns a copy of the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// SetDBPath records the database path and saves.
func (sf *StateFile) SetDBPath(path string) error {
	sf.state.DBPath = path
	return sf.Save()
}

// SetActiveSession records the active session ID and saves.
func (sf *StateFile) SetActiveSession(id string) error {
	sf.state.ActiveSessionID = id
	return sf.Save()
}

// ClearActiveSession clears the active session ID and saves.
func (sf *StateFile) ClearActiveSession() error {
	sf.state.ActiveSessionID = ""
	return sf.Save()
}

// HasActiveSession reports whether a session is in progress.
func (sf *StateFile) HasActiveSession() bool {
	return sf.state.ActiveSessionID != ""
}

// ActiveSessionID returns the active session ID.
func (sf *StateFile) ActiveSessionID() string {
	return sf.state.ActiveSessionID
}

// DBPath returns the recorded database path.
func (sf *StateFile) DBPath() string {
	return sf.state.DBPath
}
