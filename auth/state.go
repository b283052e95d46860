package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"xiaoyuan-cli/fs"
	"xiaoyuan-cli/types"
)

// Current is the in-memory session snapshot. This package is its only
// writer; everything else reads it (directly or through guard snapshots).
var Current *types.ClientSession

type State string

const (
	StateBootstrapping State = "bootstrapping"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

var state State = StateBootstrapping

func GetState() State {
	return state
}

func loadSession() (*types.ClientSession, error) {
	bytes, err := os.ReadFile(fs.HomeSessionPath)

	if err != nil {
		if os.IsNotExist(err) {
			// no session
			return nil, nil
		}
		return nil, fmt.Errorf("error reading session.json: %v", err)
	}

	var session types.ClientSession
	err = json.Unmarshal(bytes, &session)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling session.json: %v", err)
	}

	return &session, nil
}

func setSession(session *types.ClientSession) error {
	Current = session

	return writeCurrentSession()
}

func writeCurrentSession() error {
	if Current == nil {
		return fmt.Errorf("error writing session: session not loaded")
	}

	bytes, err := json.Marshal(Current)
	if err != nil {
		return fmt.Errorf("error marshalling session: %v", err)
	}

	err = os.WriteFile(fs.HomeSessionPath, bytes, 0600)
	if err != nil {
		return fmt.Errorf("error writing session: %v", err)
	}

	return nil
}

// clearSession removes token and user together -- never one without the
// other.
func clearSession() {
	Current = nil

	err := os.Remove(fs.HomeSessionPath)
	if err != nil && !os.IsNotExist(err) {
		// in-memory state is already cleared; a stale file will be
		// overwritten or re-cleared on the next write
		fmt.Fprintf(os.Stderr, "error removing session file: %v\n", err)
	}
}
