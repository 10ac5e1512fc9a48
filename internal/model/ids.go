package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UserID uniquely identifies a user
type UserID string

// GameID uniquely identifies a game
type GameID string

// PlayerID uniquely identifies a roster player
type PlayerID string

// FlexID is an identifier that tolerates both string and numeric JSON
// encodings. Upstream data sources are inconsistent about which they
// emit, so every inbound identifier is normalized to its canonical
// string form at the decoding boundary.
type FlexID string

// UnmarshalJSON accepts a JSON string, number or null
func (f *FlexID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*f = FlexID(n.String())
	return nil
}

// PlayerID returns the identifier as a PlayerID
func (f FlexID) PlayerID() PlayerID {
	return PlayerID(f)
}
