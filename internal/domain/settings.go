package domain

import (
	"fmt"
	"strings"
)

// APIMode selects where flight data is fetched from.
type APIMode int

const (
	// ModeDefault uses the built-in flight data service.
	ModeDefault APIMode = iota

	// ModeCustomServer uses a user-run proxy server that requires an API key.
	ModeCustomServer

	// ModeDirectEndpoint calls a user-supplied endpoint directly.
	ModeDirectEndpoint
)

// String returns the canonical name of the mode.
func (m APIMode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeCustomServer:
		return "custom-server"
	case ModeDirectEndpoint:
		return "direct-endpoint"
	default:
		return fmt.Sprintf("APIMode(%d)", int(m))
	}
}

// ParseAPIMode converts a stored preference code into an APIMode.
// Both the legacy numeric codes ("0", "1", "2") and the named codes are accepted;
// an empty value selects the default mode.
func ParseAPIMode(s string) (APIMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "default":
		return ModeDefault, nil
	case "1", "custom-server":
		return ModeCustomServer, nil
	case "2", "direct-endpoint":
		return ModeDirectEndpoint, nil
	default:
		return ModeDefault, fmt.Errorf("%w: unknown api mode %q", ErrInvalidRequest, s)
	}
}

// UnmarshalText lets APIMode be decoded straight from configuration.
func (m *APIMode) UnmarshalText(text []byte) error {
	mode, err := ParseAPIMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalText encodes the mode by name.
func (m APIMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// APISettings is the read-only view of the user's flight API preferences.
// It is resolved before a fetch starts and never changes during one.
type APISettings struct {
	Mode     APIMode
	Server   string
	Endpoint string
	Key      string
}
