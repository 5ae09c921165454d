package wsl

import (
	"github.com/wslkit/wslctl/src/common/errors"
)

// State mirrors the lifecycle states reported by wsl.exe. There is no
// local transition logic: a State is a read-only reflection, refreshed
// only by re-querying the tool.
type State string

const (
	StateStopped      State = "Stopped"
	StateRunning      State = "Running"
	StateInstalling   State = "Installing"
	StateUninstalling State = "Uninstalling"
	StateConverting   State = "Converting"
)

// knownStates is the total mapping from tool tokens to states. The
// tokens are not localized by wsl.exe, but an unknown token still fails
// loudly so upstream drift surfaces as a decode error instead of a
// silently wrong record.
var knownStates = map[string]State{
	"Stopped":      StateStopped,
	"Running":      StateRunning,
	"Installing":   StateInstalling,
	"Uninstalling": StateUninstalling,
	"Converting":   StateConverting,
}

// ParseState maps a wsl.exe state token to a State.
func ParseState(token string) (State, error) {
	if s, ok := knownStates[token]; ok {
		return s, nil
	}
	return "", errors.ErrToolOutput.WithMessagef("unknown distribution state %q", token)
}

// IsValid reports whether s is one of the known states.
func (s State) IsValid() bool {
	_, ok := knownStates[string(s)]
	return ok
}
